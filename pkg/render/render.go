// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rugix/rugix-site/pkg/navbar"
	"github.com/rugix/rugix-site/pkg/site"
	"github.com/rugix/rugix-site/pkg/util/urls"
)

//go:embed templates
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Assets are the static files the templates refer to
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Kind names the template a page is rendered with
type Kind string

// Page kinds
const (
	KindHome     Kind = "home"
	KindDoc      Kind = "doc"
	KindPost     Kind = "post"
	KindBlogList Kind = "blog_list"
	KindTags     Kind = "tags"
	KindPage     Kind = "page"
	KindNotFound Kind = "notfound"
)

var kinds = []Kind{KindHome, KindDoc, KindPost, KindBlogList, KindTags, KindPage, KindNotFound}

// Renderer renders site pages to HTML. It is safe for concurrent use.
type Renderer struct {
	site      *site.Site
	versions  navbar.Versions
	sanitizer *bluemonday.Policy
	templates map[Kind]*template.Template
}

// New parses the embedded templates for s. versions answers the
// navbar's questions about docs collections.
func New(s *site.Site, versions navbar.Versions) (*Renderer, error) {
	r := &Renderer{
		site:      s,
		versions:  versions,
		sanitizer: newSanitizer(),
		templates: map[Kind]*template.Template{},
	}
	base, err := template.New("site").Funcs(r.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, k := range kinds {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone templates: %w", err)
		}
		if t, err = t.ParseFS(templateFS, "templates/pages/"+string(k)+".html"); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", k, err)
		}
		r.templates[k] = t
	}
	return r, nil
}

// newSanitizer allows the markup used in announcements, footers
// and success stories
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("target").Matching(bluemonday.Paragraph).OnElements("a")
	p.AllowStyles("font-size", "font-weight").OnElements("a", "span", "div", "strong")
	return p
}

// Sanitize strips unsafe markup from config supplied HTML
func (r *Renderer) Sanitize(h string) template.HTML {
	return template.HTML(r.sanitizer.Sanitize(h))
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"url": r.site.Route,
		"date": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"isodate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"join": strings.Join,
	}
}

// Render executes the template of kind for the page at route. contents
// is the kind specific view, see the *View types.
func (r *Renderer) Render(kind Kind, route, title, description string, contents interface{}) ([]byte, error) {
	t, ok := r.templates[kind]
	if !ok {
		return nil, fmt.Errorf("unknown page kind %s", kind)
	}
	page := r.page(route, title, description)
	page.Kind = kind
	page.Contents = contents
	var b bytes.Buffer
	if err := t.ExecuteTemplate(&b, "layout", page); err != nil {
		return nil, fmt.Errorf("render /%s: %w", urls.Clean(route), err)
	}
	return b.Bytes(), nil
}

func (r *Renderer) page(route, title, description string) *Page {
	s := r.site
	p := &Page{
		Lang:        s.I18n.DefaultLocale,
		Route:       urls.Clean(route),
		Title:       s.Title,
		Description: description,
		Favicon:     s.Route(s.Favicon),
		Theme:       s.ColorMode.DefaultMode,
		Analytics:   s.Analytics,
		ThemeConfig: ThemeConfig{
			ColorMode: s.ColorMode,
			Mermaid:   s.Markdown.Mermaid,
			Prism:     s.Prism,
			Themes:    s.Themes,
		},
	}
	if title != "" && title != s.Title {
		p.Title = title + " | " + s.Title
	}
	if p.Description == "" {
		p.Description = s.Tagline
	}
	p.CanonicalURL = strings.TrimSuffix(s.URL, "/") + s.Route(p.Route)
	if a := s.Announcement; a != nil && a.Content != "" {
		p.Announcement = &AnnouncementView{
			ID:              a.ID,
			Content:         r.Sanitize(a.Content),
			BackgroundColor: a.BackgroundColor,
			TextColor:       a.TextColor,
			IsCloseable:     a.IsCloseable,
		}
	}
	left, right := navbar.Split(navbar.Build(s.Navbar.Items, p.Route, r.versions, s.BaseURL))
	p.Navbar = NavbarView{Title: s.Navbar.Title, Logo: s.Navbar.Logo, Left: left, Right: right}
	p.Footer = r.footer()
	return p
}

func (r *Renderer) footer() FooterView {
	s := r.site
	f := FooterView{Style: s.Footer.Style, Copyright: r.Sanitize(s.Footer.Copyright)}
	for _, col := range s.Footer.Links {
		c := FooterColumnView{Title: col.Title}
		for _, l := range col.Items {
			lv := LinkView{Label: l.Label, Href: s.Route(l.To)}
			if l.Href != "" {
				lv.Href = l.Href
				lv.External = urls.IsExternal(l.Href)
			}
			c.Links = append(c.Links, lv)
		}
		f.Columns = append(f.Columns, c)
	}
	return f
}
