// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rugix/rugix-site/pkg/markdown"
	"github.com/rugix/rugix-site/pkg/site"
	"github.com/rugix/rugix-site/pkg/util/urls"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

const (
	versionDirPrefix = "version-"
	nextPath         = "next"
)

// Load reads collection c from fsys, which is rooted at the site directory
func Load(fsys fs.FS, c *site.DocsCollection) (*Collection, error) {
	released, err := releasedVersions(fsys, c)
	if err != nil {
		return nil, err
	}
	last := c.LastVersion
	if last == "" {
		last = site.CurrentVersion
		if len(released) > 0 {
			last = released[0]
		}
	}
	names := append([]string{site.CurrentVersion}, released...)
	col := &Collection{
		ID:            c.ID,
		RouteBasePath: urls.Clean(c.RouteBasePath),
	}
	for _, name := range names {
		v, err := loadVersion(fsys, c, name, name == last)
		if err != nil {
			return nil, fmt.Errorf("docs %s version %s: %w", c.ID, name, err)
		}
		col.Versions = append(col.Versions, v)
		if v.IsLast {
			col.Last = v
		}
	}
	if col.Last == nil {
		return nil, fmt.Errorf("docs %s: lastVersion %q does not exist", c.ID, last)
	}
	klog.V(4).Infof("docs %s: loaded %d versions, last is %s", c.ID, len(col.Versions), col.Last.Name)
	return col, nil
}

func versionsFile(c *site.DocsCollection) string {
	if c.ID == site.DefaultCollectionID {
		return "versions.json"
	}
	return c.ID + "_versions.json"
}

func versionedDir(c *site.DocsCollection) string {
	if c.ID == site.DefaultCollectionID {
		return "versioned_docs"
	}
	return c.ID + "_versioned_docs"
}

// releasedVersions lists released version names newest first, either
// from the versions file or, when missing, from the versioned docs dir
func releasedVersions(fsys fs.FS, c *site.DocsCollection) ([]string, error) {
	data, err := fs.ReadFile(fsys, versionsFile(c))
	if err == nil {
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", versionsFile(c), err)
		}
		return names, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	entries, err := fs.ReadDir(fsys, versionedDir(c))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), versionDirPrefix) {
			names = append(names, strings.TrimPrefix(e.Name(), versionDirPrefix))
		}
	}
	SortVersions(names)
	return names, nil
}

// SortVersions orders version names newest first. Semantic versions
// come first, other names follow in lexical order.
func SortVersions(names []string) {
	parsed := make(map[string]*semver.Version, len(names))
	for _, n := range names {
		if v, err := semver.NewVersion(n); err == nil {
			parsed[n] = v
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		vi, iok := parsed[names[i]]
		vj, jok := parsed[names[j]]
		switch {
		case iok && jok:
			return vi.GreaterThan(vj)
		case iok != jok:
			return iok
		}
		return names[i] < names[j]
	})
}

func loadVersion(fsys fs.FS, c *site.DocsCollection, name string, isLast bool) (*Version, error) {
	opts := c.Versions[name]
	if opts == nil {
		opts = &site.VersionOption{}
	}
	v := &Version{
		VersionInfo: VersionInfo{
			PluginID: c.ID,
			Name:     name,
			Label:    opts.Label,
			IsLast:   isLast,
			Banner:   opts.Banner,
		},
		ContentDir: c.Path,
	}
	if name != site.CurrentVersion {
		v.ContentDir = path.Join(versionedDir(c), versionDirPrefix+name)
	}
	if v.Label == "" {
		v.Label = name
		if name == site.CurrentVersion {
			v.Label = "Next"
		}
	}
	switch {
	case opts.Path != "":
		v.Path = urls.Join(c.RouteBasePath, opts.Path)
	case isLast:
		v.Path = urls.Clean(c.RouteBasePath)
	case name == site.CurrentVersion:
		v.Path = urls.Join(c.RouteBasePath, nextPath)
	default:
		v.Path = urls.Join(c.RouteBasePath, name)
	}
	if v.Banner == "" && !isLast {
		v.Banner = "unmaintained"
		if name == site.CurrentVersion {
			v.Banner = "unreleased"
		}
	}

	categories := map[string]*category{}
	err := fs.WalkDir(fsys, v.ContentDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != v.ContentDir && strings.HasPrefix(d.Name(), "_") {
			if d.IsDir() {
				return fs.SkipDir
			}
			if isCategoryFile(d.Name()) {
				cat, err := readCategory(fsys, p)
				if err != nil {
					return err
				}
				categories[path.Dir(p)] = cat
			}
			return nil
		}
		if d.IsDir() || !isMarkdownFile(d.Name()) {
			return nil
		}
		doc, err := loadDoc(fsys, c, v, p)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		v.Docs = append(v.Docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := checkDuplicates(v.Docs); err != nil {
		return nil, err
	}
	v.index()
	v.Sidebar = buildSidebar(v, categories)
	return v, nil
}

// checkDuplicates fails when two docs of a version share an id or a route
func checkDuplicates(ds []*Doc) error {
	ids := make(map[string]string, len(ds))
	routes := make(map[string]string, len(ds))
	for _, d := range ds {
		if other, ok := ids[d.ID]; ok {
			return fmt.Errorf("%s and %s share the id %q", other, d.Source, d.ID)
		}
		ids[d.ID] = d.Source
		if other, ok := routes[d.Route]; ok {
			return fmt.Errorf("%s and %s are both served at /%s", other, d.Source, d.Route)
		}
		routes[d.Route] = d.Source
	}
	return nil
}

func loadDoc(fsys fs.FS, c *site.DocsCollection, v *Version, p string) (*Doc, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	rendered, err := markdown.Render(content, nil)
	if err != nil {
		return nil, err
	}
	fm := rendered.Meta
	rel := strings.TrimPrefix(strings.TrimPrefix(p, v.ContentDir), "/")
	dir := path.Dir(rel)
	if dir == "." {
		dir = ""
	}
	base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))

	doc := &Doc{
		ID:           path.Join(dir, base),
		Source:       p,
		Title:        fm.String("title"),
		SidebarLabel: fm.String("sidebar_label"),
		Description:  fm.String("description"),
		Meta:         fm,
		Content:      content,
	}
	if id := fm.String("id"); id != "" {
		doc.ID = path.Join(dir, id)
	}
	if pos, ok := fm.Int("sidebar_position"); ok {
		doc.Position = ptr.To(pos)
	}
	if doc.Title == "" {
		doc.Title = rendered.Title
	}
	if doc.Title == "" {
		doc.Title = prettify(base)
	}

	switch slug := fm.String("slug"); {
	case strings.HasPrefix(slug, "/"):
		doc.Slug = urls.Clean(slug)
	case slug != "":
		doc.Slug = urls.Join(dir, slug)
	case isIndexName(base):
		doc.Slug = urls.Clean(dir)
	default:
		doc.Slug = urls.Join(dir, path.Base(doc.ID))
	}
	doc.Route = urls.Join(v.Path, doc.Slug)
	if c.EditURL != "" {
		doc.EditURL = strings.TrimSuffix(c.EditURL, "/") + "/" + p
	}
	return doc, nil
}

func isMarkdownFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

func isIndexName(base string) bool {
	return strings.EqualFold(base, "index") || strings.EqualFold(base, "readme")
}

// prettify turns a file name into a title, "getting-started" -> "Getting started"
func prettify(name string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
