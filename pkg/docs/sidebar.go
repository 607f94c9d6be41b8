// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package docs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SidebarItem is a doc link or a category of a version sidebar
type SidebarItem struct {
	Label string
	// Doc is nil for categories without an index doc
	Doc      *Doc
	Items    []*SidebarItem
	position *int
	key      string
}

// IsCategory reports whether the item groups other items
func (s *SidebarItem) IsCategory() bool {
	return len(s.Items) > 0
}

// Contains reports whether route is the item's doc or one of its descendants
func (s *SidebarItem) Contains(route string) bool {
	if s.Doc != nil && s.Doc.Route == route {
		return true
	}
	for _, it := range s.Items {
		if it.Contains(route) {
			return true
		}
	}
	return false
}

type category struct {
	Label    string `yaml:"label"`
	Position *int   `yaml:"position"`
}

func isCategoryFile(name string) bool {
	switch name {
	case "_category_.json", "_category_.yml", "_category_.yaml":
		return true
	}
	return false
}

// readCategory reads _category_ metadata. JSON is a subset of YAML
// so both formats go through the same decoder.
func readCategory(fsys fs.FS, p string) (*category, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	c := &category{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("invalid category file %s: %w", p, err)
	}
	return c, nil
}

// buildSidebar arranges the docs of v along their directory tree.
// Items are ordered by position, then by name.
func buildSidebar(v *Version, categories map[string]*category) []*SidebarItem {
	root := &SidebarItem{}
	dirs := map[string]*SidebarItem{"": root}
	var dirItem func(dir string) *SidebarItem
	dirItem = func(dir string) *SidebarItem {
		if it, ok := dirs[dir]; ok {
			return it
		}
		parent := path.Dir(dir)
		if parent == "." {
			parent = ""
		}
		it := &SidebarItem{Label: prettify(path.Base(dir)), key: path.Base(dir)}
		if c, ok := categories[path.Join(v.ContentDir, dir)]; ok {
			if c.Label != "" {
				it.Label = c.Label
			}
			it.position = c.Position
		}
		p := dirItem(parent)
		p.Items = append(p.Items, it)
		dirs[dir] = it
		return it
	}

	for _, d := range v.Docs {
		rel := strings.TrimPrefix(strings.TrimPrefix(d.Source, v.ContentDir), "/")
		dir := path.Dir(rel)
		if dir == "." {
			dir = ""
		}
		base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
		if dir != "" && isIndexName(base) {
			// the index doc of a directory is the category link
			cat := dirItem(dir)
			cat.Doc = d
			if d.Position != nil && cat.position == nil {
				cat.position = d.Position
			}
			continue
		}
		label := d.SidebarLabel
		if label == "" {
			label = d.Title
		}
		parent := dirItem(dir)
		parent.Items = append(parent.Items, &SidebarItem{Label: label, Doc: d, position: d.Position, key: base})
	}
	sortItems(root.Items)
	return root.Items
}

func sortItems(items []*SidebarItem) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].position, items[j].position
		switch {
		case pi != nil && pj != nil && *pi != *pj:
			return *pi < *pj
		case (pi == nil) != (pj == nil):
			return pi != nil
		}
		return items[i].key < items[j].key
	})
	for _, it := range items {
		sortItems(it.Items)
	}
}

func flatten(items []*SidebarItem) []*SidebarItem {
	var out []*SidebarItem
	for _, it := range items {
		out = append(out, it)
		out = append(out, flatten(it.Items)...)
	}
	return out
}
