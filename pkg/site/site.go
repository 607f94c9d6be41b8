// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	// DefaultCollectionID is the id of a docs collection that doesn't declare one
	DefaultCollectionID = "default"
	// CurrentVersion is the name of the unreleased version of a collection
	CurrentVersion = "current"
)

// Load reads and parses the site configuration file at filePath
func Load(filePath string, vars map[string]string) (*Site, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading site configuration %s failed: %w", filePath, err)
	}
	s, err := Parse(data, vars)
	if err != nil {
		return nil, fmt.Errorf("parsing site configuration %s failed: %w", filePath, err)
	}
	klog.V(4).Infof("loaded site configuration %s with %d docs collections", filePath, len(s.Docs))
	return s, nil
}

// Parse executes the configuration as a Go template with the
// year and vars, decodes it, applies defaults and validates it
func Parse(data []byte, vars map[string]string) (*Site, error) {
	expanded, err := resolveTemplate(data, vars)
	if err != nil {
		return nil, err
	}
	s := &Site{}
	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func resolveTemplate(data []byte, vars map[string]string) ([]byte, error) {
	tmpl, err := template.New("site").Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("site configuration template: %w", err)
	}
	values := map[string]interface{}{
		"Year": time.Now().Year(),
	}
	for k, v := range vars {
		values[k] = v
	}
	var b bytes.Buffer
	if err := tmpl.Execute(&b, values); err != nil {
		return nil, fmt.Errorf("site configuration template: %w", err)
	}
	return b.Bytes(), nil
}

func (s *Site) applyDefaults() {
	if s.BaseURL == "" {
		s.BaseURL = "/"
	}
	if !strings.HasSuffix(s.BaseURL, "/") {
		s.BaseURL += "/"
	}
	if s.OnBrokenLinks == "" {
		s.OnBrokenLinks = LinkPolicyWarn
	}
	if s.Markdown.OnBrokenMarkdownLinks == "" {
		s.Markdown.OnBrokenMarkdownLinks = LinkPolicyWarn
	}
	if s.I18n.DefaultLocale == "" {
		s.I18n.DefaultLocale = "en"
	}
	if len(s.I18n.Locales) == 0 {
		s.I18n.Locales = []string{s.I18n.DefaultLocale}
	}
	if s.ColorMode.DefaultMode == "" {
		s.ColorMode.DefaultMode = "light"
	}
	if s.Analytics.PlausibleDomain != "" && s.Analytics.PlausibleScript == "" {
		s.Analytics.PlausibleScript = "https://plausible.io/js/script.js"
	}
	if s.StaticDir == "" {
		s.StaticDir = "static"
	}
	if s.Pages.Path == "" {
		s.Pages.Path = "pages"
	}
	for _, c := range s.Docs {
		if c == nil {
			continue
		}
		if c.ID == "" {
			c.ID = DefaultCollectionID
		}
		if c.Path == "" {
			c.Path = "docs"
			if c.ID != DefaultCollectionID {
				c.Path = "docs-" + c.ID
			}
		}
		if c.RouteBasePath == "" {
			c.RouteBasePath = "docs"
		}
		c.RouteBasePath = strings.Trim(c.RouteBasePath, "/")
	}
	if s.Blog != nil {
		if s.Blog.Path == "" {
			s.Blog.Path = "blog"
		}
		if s.Blog.RouteBasePath == "" {
			s.Blog.RouteBasePath = "blog"
		}
		s.Blog.RouteBasePath = strings.Trim(s.Blog.RouteBasePath, "/")
		if s.Blog.BlogSidebarCount == "" {
			s.Blog.BlogSidebarCount = "5"
		}
		if s.Blog.BlogSidebarTitle == "" {
			s.Blog.BlogSidebarTitle = "Recent posts"
		}
		if s.Blog.BlogTitle == "" {
			s.Blog.BlogTitle = "Blog"
		}
	}
	for _, it := range s.Navbar.Items {
		if it == nil {
			continue
		}
		if it.Type == "" {
			it.Type = NavbarItemDefault
		}
		if it.Position == "" {
			it.Position = "left"
		}
		if (it.Type == NavbarItemDoc || it.Type == NavbarItemDocsVersionDropdown) && it.DocsPluginID == "" {
			it.DocsPluginID = DefaultCollectionID
		}
	}
}

// Validate reports every problem of the configuration at once
func (s *Site) Validate() error {
	var errs *multierror.Error
	if s.Title == "" {
		errs = multierror.Append(errs, errors.New("title is required"))
	}
	if s.URL == "" {
		errs = multierror.Append(errs, errors.New("url is required"))
	}
	if !s.OnBrokenLinks.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("onBrokenLinks: unknown policy %q", s.OnBrokenLinks))
	}
	if !s.Markdown.OnBrokenMarkdownLinks.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("markdown.onBrokenMarkdownLinks: unknown policy %q", s.Markdown.OnBrokenMarkdownLinks))
	}
	ids := map[string]struct{}{}
	routes := map[string]string{}
	for i, c := range s.Docs {
		if c == nil {
			errs = multierror.Append(errs, fmt.Errorf("docs %d: empty collection", i))
			continue
		}
		if _, ok := ids[c.ID]; ok {
			errs = multierror.Append(errs, fmt.Errorf("docs: duplicate collection id %q", c.ID))
		}
		ids[c.ID] = struct{}{}
		if other, ok := routes[c.RouteBasePath]; ok {
			errs = multierror.Append(errs, fmt.Errorf("docs: collections %q and %q share routeBasePath %q", other, c.ID, c.RouteBasePath))
		}
		routes[c.RouteBasePath] = c.ID
		if c.Path == "" || path.IsAbs(c.Path) {
			errs = multierror.Append(errs, fmt.Errorf("docs %q: path must be relative to the site directory", c.ID))
		}
	}
	if s.Blog != nil {
		if _, err := s.Blog.SidebarCount(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	for i, it := range s.Navbar.Items {
		if it == nil {
			errs = multierror.Append(errs, fmt.Errorf("navbar item %d: empty item", i))
			continue
		}
		switch it.Type {
		case NavbarItemDefault:
			if it.To == "" && it.Href == "" {
				errs = multierror.Append(errs, fmt.Errorf("navbar item %d: one of to or href is required", i))
			}
		case NavbarItemDoc:
			if it.DocID == "" {
				errs = multierror.Append(errs, fmt.Errorf("navbar item %d: docId is required", i))
			}
			if _, ok := ids[it.DocsPluginID]; !ok {
				errs = multierror.Append(errs, fmt.Errorf("navbar item %d: unknown docs collection %q", i, it.DocsPluginID))
			}
		case NavbarItemDocsVersionDropdown:
			if _, ok := ids[it.DocsPluginID]; !ok {
				errs = multierror.Append(errs, fmt.Errorf("navbar item %d: unknown docs collection %q", i, it.DocsPluginID))
			}
		default:
			errs = multierror.Append(errs, fmt.Errorf("navbar item %d: unknown type %q", i, it.Type))
		}
		if it.Position != "left" && it.Position != "right" {
			errs = multierror.Append(errs, fmt.Errorf("navbar item %d: position must be left or right", i))
		}
	}
	if s.Announcement != nil && s.Announcement.ID == "" {
		errs = multierror.Append(errs, errors.New("announcementBar: id is required"))
	}
	return errs.ErrorOrNil()
}

// Collection returns the docs collection with the given id
func (s *Site) Collection(id string) (*DocsCollection, bool) {
	for _, c := range s.Docs {
		if c != nil && c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// SidebarCount returns how many posts the blog sidebar lists.
// -1 means all posts.
func (b *Blog) SidebarCount() (int, error) {
	if strings.EqualFold(b.BlogSidebarCount, "ALL") {
		return -1, nil
	}
	n, err := strconv.Atoi(b.BlogSidebarCount)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("blog.blogSidebarCount: expected ALL or a non negative number, got %q", b.BlogSidebarCount)
	}
	return n, nil
}

// Route joins a site relative route with the base URL
func (s *Site) Route(route string) string {
	if strings.Contains(route, "://") || strings.HasPrefix(route, "#") {
		return route
	}
	return s.BaseURL + strings.TrimPrefix(route, "/")
}
