// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"html/template"

	"github.com/rugix/rugix-site/pkg/blog"
	"github.com/rugix/rugix-site/pkg/docs"
	"github.com/rugix/rugix-site/pkg/navbar"
	"github.com/rugix/rugix-site/pkg/site"
)

// Page is the view model of the layout template
type Page struct {
	Kind         Kind
	Lang         string
	Route        string
	Title        string
	Description  string
	CanonicalURL string
	Favicon      string
	// Theme is the initial color mode, "light" or "dark"
	Theme        string
	Analytics    site.Analytics
	ThemeConfig  ThemeConfig
	Announcement *AnnouncementView
	Navbar       NavbarView
	Footer       FooterView
	Contents     interface{}
}

// ThemeConfig is handed to client side widgets as JSON
type ThemeConfig struct {
	ColorMode site.ColorMode `json:"colorMode"`
	Mermaid   bool           `json:"mermaid"`
	Prism     site.Prism     `json:"prism"`
	Themes    []string       `json:"themes,omitempty"`
}

type AnnouncementView struct {
	ID              string
	Content         template.HTML
	BackgroundColor string
	TextColor       string
	IsCloseable     bool
}

type NavbarView struct {
	Title string
	Logo  *site.Logo
	Left  []navbar.RenderedItem
	Right []navbar.RenderedItem
}

type FooterView struct {
	Style     string
	Columns   []FooterColumnView
	Copyright template.HTML
}

type FooterColumnView struct {
	Title string
	Links []LinkView
}

// LinkView is a resolved link
type LinkView struct {
	Label    string
	Href     string
	External bool
	Active   bool
}

// HomeView is the landing page
type HomeView struct {
	Hero      site.Hero
	Tools     site.Tools
	TrustedBy site.TrustedBy
	Stories   StoriesView
}

type StoriesView struct {
	ID      string
	Title   string
	Entries []StoryView
}

type StoryView struct {
	Title string
	Image string
	Alt   string
	Body  template.HTML
	Quote *site.Testimonial
}

// Home builds the landing page view from the site configuration
func (r *Renderer) Home() *HomeView {
	h := r.site.Home
	v := &HomeView{
		Hero:      h.Hero,
		Tools:     h.Tools,
		TrustedBy: h.TrustedBy,
		Stories:   StoriesView{ID: h.Stories.ID, Title: h.Stories.Title},
	}
	for _, s := range h.Stories.Entries {
		v.Stories.Entries = append(v.Stories.Entries, StoryView{
			Title: s.Title,
			Image: s.Image,
			Alt:   s.Alt,
			Body:  r.Sanitize(s.Body),
			Quote: s.Quote,
		})
	}
	return v
}

// SidebarView is a rendered sidebar entry
type SidebarView struct {
	Label    string
	Href     string
	Active   bool
	Expanded bool
	Items    []SidebarView
}

// DocView is a documentation page
type DocView struct {
	Title   string
	HTML    template.HTML
	Version docs.VersionInfo
	// Latest links to the page in the version served at the collection
	// root, set for pages of other versions
	Latest  *LinkView
	Sidebar []SidebarView
	Prev    *LinkView
	Next    *LinkView
	EditURL string
}

// Doc builds the view of doc d of version v with its rendered body
func (r *Renderer) Doc(v *docs.Version, d *docs.Doc, body []byte) *DocView {
	view := &DocView{
		Title:   d.Title,
		HTML:    template.HTML(body),
		Version: v.VersionInfo,
		Sidebar: r.sidebar(v.Sidebar, d.Route),
		EditURL: d.EditURL,
	}
	prev, next := v.Neighbours(d)
	if prev != nil {
		view.Prev = &LinkView{Label: prev.Title, Href: r.site.Route(prev.Route)}
	}
	if next != nil {
		view.Next = &LinkView{Label: next.Title, Href: r.site.Route(next.Route)}
	}
	if col, ok := r.versions.Collection(v.PluginID); ok && !v.IsLast {
		target := col.Last.MainDoc()
		if same, ok := col.Last.Doc(d.ID); ok {
			target = same
		}
		if target != nil {
			view.Latest = &LinkView{Label: col.Last.Label, Href: r.site.Route(target.Route)}
		}
	}
	return view
}

func (r *Renderer) sidebar(items []*docs.SidebarItem, route string) []SidebarView {
	var out []SidebarView
	for _, it := range items {
		sv := SidebarView{
			Label:    it.Label,
			Expanded: it.Contains(route),
			Items:    r.sidebar(it.Items, route),
		}
		if it.Doc != nil {
			sv.Href = r.site.Route(it.Doc.Route)
			sv.Active = it.Doc.Route == route
		}
		out = append(out, sv)
	}
	return out
}

// BlogSidebarView lists the recent posts next to blog pages
type BlogSidebarView struct {
	Title string
	Links []LinkView
}

// PostView is a single blog post
type PostView struct {
	Post    *blog.Post
	HTML    template.HTML
	Tags    []LinkView
	Sidebar BlogSidebarView
	Newer   *LinkView
	Older   *LinkView
}

// Post builds the view of post p with its rendered body
func (r *Renderer) Post(b *blog.Blog, p *blog.Post, body []byte) *PostView {
	view := &PostView{
		Post:    p,
		HTML:    template.HTML(body),
		Tags:    r.tags(p.Tags),
		Sidebar: r.blogSidebar(b, p.Route),
	}
	if p.Newer != nil {
		view.Newer = &LinkView{Label: p.Newer.Title, Href: r.site.Route(p.Newer.Route)}
	}
	if p.Older != nil {
		view.Older = &LinkView{Label: p.Older.Title, Href: r.site.Route(p.Older.Route)}
	}
	return view
}

// BlogListEntry is a post on a list page
type BlogListEntry struct {
	Post      *blog.Post
	Href      string
	Tags      []LinkView
	Excerpt   template.HTML
	Truncated bool
}

// BlogListView lists posts, on the blog index and tag pages
type BlogListView struct {
	Title       string
	Description string
	Entries     []BlogListEntry
	Sidebar     BlogSidebarView
	TagsHref    string
}

// BlogList builds a list page. excerpt returns the rendered excerpt of a
// post and whether it was truncated.
func (r *Renderer) BlogList(b *blog.Blog, title string, posts []*blog.Post, excerpt func(*blog.Post) ([]byte, bool)) *BlogListView {
	view := &BlogListView{
		Title:       title,
		Description: b.Description,
		Sidebar:     r.blogSidebar(b, ""),
		TagsHref:    r.site.Route(b.TagsRoute()),
	}
	for _, p := range posts {
		html, truncated := excerpt(p)
		view.Entries = append(view.Entries, BlogListEntry{
			Post:      p,
			Href:      r.site.Route(p.Route),
			Tags:      r.tags(p.Tags),
			Excerpt:   template.HTML(html),
			Truncated: truncated,
		})
	}
	return view
}

// TagsView is the tag overview
type TagsView struct {
	Title string
	Tags  []TagView
}

type TagView struct {
	LinkView
	Count int
}

// Tags builds the tag overview of b
func (r *Renderer) Tags(b *blog.Blog) *TagsView {
	view := &TagsView{Title: "Tags"}
	for _, t := range b.Tags {
		view.Tags = append(view.Tags, TagView{
			LinkView: LinkView{Label: t.Label, Href: r.site.Route(t.Route)},
			Count:    len(t.Posts),
		})
	}
	return view
}

func (r *Renderer) tags(tags []*blog.Tag) []LinkView {
	out := make([]LinkView, 0, len(tags))
	for _, t := range tags {
		out = append(out, LinkView{Label: t.Label, Href: r.site.Route(t.Route)})
	}
	return out
}

func (r *Renderer) blogSidebar(b *blog.Blog, route string) BlogSidebarView {
	sb := BlogSidebarView{Title: b.SidebarTitle}
	for _, p := range b.Sidebar {
		sb.Links = append(sb.Links, LinkView{Label: p.Title, Href: r.site.Route(p.Route), Active: p.Route == route})
	}
	return sb
}

// PageView is a standalone markdown page
type PageView struct {
	Title string
	HTML  template.HTML
}

// NotFoundView is the 404 page
type NotFoundView struct {
	HomeHref string
}

// NotFound builds the 404 page view
func (r *Renderer) NotFound() *NotFoundView {
	return &NotFoundView{HomeHref: r.site.Route("")}
}
