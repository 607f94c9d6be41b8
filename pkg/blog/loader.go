// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package blog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rugix/rugix-site/pkg/markdown"
	"github.com/rugix/rugix-site/pkg/site"
	"github.com/rugix/rugix-site/pkg/util/urls"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const authorsFile = "authors.yml"

// datePrefix matches "2024-05-01-name" file and directory names
var datePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(.+)$`)

// Load reads the posts under c.Path from fsys. A missing blog
// directory yields an empty blog.
func Load(fsys fs.FS, c *site.Blog) (*Blog, error) {
	count, err := c.SidebarCount()
	if err != nil {
		return nil, err
	}
	b := &Blog{
		RouteBasePath: urls.Clean(c.RouteBasePath),
		Title:         c.BlogTitle,
		Description:   c.BlogDescription,
		SidebarTitle:  c.BlogSidebarTitle,
		bySrc:         map[string]*Post{},
	}
	if _, err := fs.Stat(fsys, c.Path); errors.Is(err, fs.ErrNotExist) {
		klog.V(4).Infof("no blog directory %s", c.Path)
		return b, nil
	}
	authors, err := readAuthors(fsys, path.Join(c.Path, authorsFile))
	if err != nil {
		return nil, err
	}
	err = fs.WalkDir(fsys, c.Path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != c.Path && strings.HasPrefix(d.Name(), "_") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdownFile(d.Name()) {
			return nil
		}
		post, err := loadPost(fsys, c, authors, p)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if post == nil {
			klog.V(4).Infof("skipping draft %s", p)
			return nil
		}
		b.Posts = append(b.Posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(b.Posts, func(i, j int) bool {
		if !b.Posts[i].Date.Equal(b.Posts[j].Date) {
			return b.Posts[i].Date.After(b.Posts[j].Date)
		}
		return b.Posts[i].Route < b.Posts[j].Route
	})
	routes := map[string]string{}
	for i, p := range b.Posts {
		if other, ok := routes[p.Route]; ok {
			return nil, fmt.Errorf("%s and %s are both served at /%s", other, p.Source, p.Route)
		}
		routes[p.Route] = p.Source
		b.bySrc[p.Source] = p
		if i > 0 {
			p.Newer = b.Posts[i-1]
			b.Posts[i-1].Older = p
		}
	}
	b.Sidebar = b.Posts
	if count >= 0 && count < len(b.Posts) {
		b.Sidebar = b.Posts[:count]
	}
	b.Tags = collectTags(b)
	klog.V(4).Infof("blog: loaded %d posts", len(b.Posts))
	return b, nil
}

func readAuthors(fsys fs.FS, p string) (map[string]*Author, error) {
	data, err := fs.ReadFile(fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	authors := map[string]*Author{}
	if err := yaml.Unmarshal(data, &authors); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", p, err)
	}
	return authors, nil
}

// loadPost returns nil for drafts
func loadPost(fsys fs.FS, c *site.Blog, authors map[string]*Author, p string) (*Post, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	rendered, err := markdown.Render(content, nil)
	if err != nil {
		return nil, err
	}
	fm := rendered.Meta
	if fm.Bool("draft") {
		return nil, nil
	}
	rel := strings.TrimPrefix(strings.TrimPrefix(p, c.Path), "/")
	name := strings.TrimSuffix(rel, path.Ext(rel))
	if isIndex(path.Base(name)) {
		name = path.Dir(name)
	}

	post := &Post{
		Source:      p,
		Title:       fm.String("title"),
		Description: fm.String("description"),
		Words:       rendered.Words,
		Meta:        fm,
		Content:     content,
	}
	if post.Title == "" {
		post.Title = rendered.Title
	}
	if post.Title == "" {
		post.Title = path.Base(name)
	}

	date, ok, err := fm.Time("date")
	if err != nil {
		return nil, err
	}
	slug := name
	if m := datePrefix.FindStringSubmatch(path.Base(name)); m != nil {
		if !ok {
			date, err = time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3])
			if err != nil {
				return nil, err
			}
			ok = true
		}
		slug = path.Join(path.Dir(name), m[1], m[2], m[3], m[4])
	}
	if !ok {
		info, err := fs.Stat(fsys, p)
		if err != nil {
			return nil, err
		}
		date = info.ModTime()
		klog.Warningf("%s has no date, using the file modification time", p)
	}
	post.Date = date

	if s := fm.String("slug"); s != "" {
		slug = s
	}
	post.Slug = urls.Clean(slug)
	post.Route = urls.Join(c.RouteBasePath, post.Slug)

	post.Authors, err = postAuthors(fm, authors)
	if err != nil {
		return nil, err
	}
	for _, t := range fm.Strings("tags") {
		post.Tags = append(post.Tags, &Tag{Label: t})
	}
	if c.ShowReadingTime {
		post.ReadingTime = ReadingTime(post.Words)
	}
	if c.EditURL != "" {
		post.EditURL = strings.TrimSuffix(c.EditURL, "/") + "/" + p
	}
	return post, nil
}

// postAuthors reads the authors front matter, which holds keys of the
// authors file, inline author maps or both
func postAuthors(fm markdown.Meta, known map[string]*Author) ([]*Author, error) {
	var out []*Author
	raw := fm["authors"]
	if s, ok := raw.(string); ok {
		raw = []interface{}{s}
	}
	list, _ := raw.([]interface{})
	for _, e := range list {
		switch v := e.(type) {
		case string:
			a, ok := known[v]
			if !ok {
				return nil, fmt.Errorf("unknown author %q", v)
			}
			out = append(out, a)
		default:
			m := stringMap(v)
			if m == nil {
				return nil, fmt.Errorf("invalid author %v", v)
			}
			out = append(out, &Author{
				Name:     m.String("name"),
				Title:    m.String("title"),
				URL:      m.String("url"),
				ImageURL: m.String("image_url"),
			})
		}
	}
	if name := fm.String("author"); name != "" {
		out = append(out, &Author{
			Name:     name,
			Title:    fm.String("author_title"),
			URL:      fm.String("author_url"),
			ImageURL: fm.String("author_image_url"),
		})
	}
	return out, nil
}

// stringMap converts the map types yaml decoders produce for interface values
func stringMap(v interface{}) markdown.Meta {
	switch m := v.(type) {
	case map[string]interface{}:
		return markdown.Meta(m)
	case map[interface{}]interface{}:
		out := markdown.Meta{}
		for k, val := range m {
			out[fmt.Sprintf("%v", k)] = val
		}
		return out
	}
	return nil
}

func collectTags(b *Blog) []*Tag {
	byLabel := map[string]*Tag{}
	for _, p := range b.Posts {
		for i, t := range p.Tags {
			key := strings.ToLower(t.Label)
			tag, ok := byLabel[key]
			if !ok {
				tag = &Tag{Label: t.Label, Route: urls.Join(b.TagsRoute(), tagSlug(t.Label))}
				byLabel[key] = tag
			}
			tag.Posts = append(tag.Posts, p)
			p.Tags[i] = tag
		}
	}
	tags := make([]*Tag, 0, len(byLabel))
	for _, t := range byLabel {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i].Label) < strings.ToLower(tags[j].Label)
	})
	return tags
}

func tagSlug(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

func isMarkdownFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

func isIndex(base string) bool {
	return strings.EqualFold(base, "index") || strings.EqualFold(base, "readme")
}
