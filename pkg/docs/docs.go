// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package docs

import (
	"github.com/rugix/rugix-site/pkg/markdown"
	"github.com/rugix/rugix-site/pkg/util/urls"
)

// VersionInfo describes the active version of a collection for the
// page being rendered
type VersionInfo struct {
	// PluginID is the id of the collection the version belongs to
	PluginID string
	// Name is "current" or the released version name, e.g. "0.8"
	Name string
	// Label is shown in the version dropdown
	Label string
	// Path is the route of the version root, e.g. "docs/ctrl"
	Path string
	// IsLast marks the version served at the collection root
	IsLast bool
	// Banner is "", "unreleased" or "unmaintained"
	Banner string
}

// Doc is a single documentation page
type Doc struct {
	// ID is the path of the source relative to the version
	// content dir without extension, optionally renamed by front matter
	ID string
	// Source is the file path in the site file system
	Source string
	// Slug is the route relative to the version root
	Slug         string
	Route        string
	Title        string
	SidebarLabel string
	Description  string
	EditURL      string
	Position     *int
	Meta         markdown.Meta
	Content      []byte
}

// Version is a version of a collection with its documents
type Version struct {
	VersionInfo
	// ContentDir is the directory of the sources in the site file system
	ContentDir string
	Docs       []*Doc
	Sidebar    []*SidebarItem

	byID    map[string]*Doc
	byRoute map[string]*Doc
	bySrc   map[string]*Doc
}

// Doc returns the doc with the given id
func (v *Version) Doc(id string) (*Doc, bool) {
	d, ok := v.byID[id]
	return d, ok
}

// DocBySource returns the doc loaded from the given file path
func (v *Version) DocBySource(source string) (*Doc, bool) {
	d, ok := v.bySrc[source]
	return d, ok
}

// DocByRoute returns the doc served at route
func (v *Version) DocByRoute(route string) (*Doc, bool) {
	d, ok := v.byRoute[urls.Clean(route)]
	return d, ok
}

// MainDoc is the doc served at the version root or, if there is none,
// the first doc of the sidebar
func (v *Version) MainDoc() *Doc {
	if d, ok := v.byRoute[v.Path]; ok {
		return d
	}
	for _, it := range flatten(v.Sidebar) {
		if it.Doc != nil {
			return it.Doc
		}
	}
	if len(v.Docs) > 0 {
		return v.Docs[0]
	}
	return nil
}

func (v *Version) index() {
	v.byID = make(map[string]*Doc, len(v.Docs))
	v.byRoute = make(map[string]*Doc, len(v.Docs))
	v.bySrc = make(map[string]*Doc, len(v.Docs))
	for _, d := range v.Docs {
		v.byID[d.ID] = d
		v.byRoute[d.Route] = d
		v.bySrc[d.Source] = d
	}
}

// Collection is an independently versioned set of documentation pages
type Collection struct {
	ID            string
	RouteBasePath string
	// Versions in dropdown order: current first, then released
	// versions newest first
	Versions []*Version
	// Last is the version served at RouteBasePath
	Last *Version
}

// Version returns the version with the given name
func (c *Collection) Version(name string) (*Version, bool) {
	for _, v := range c.Versions {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Neighbours returns the docs before and after d in sidebar order
func (v *Version) Neighbours(d *Doc) (prev, next *Doc) {
	var ordered []*Doc
	for _, it := range flatten(v.Sidebar) {
		if it.Doc != nil {
			ordered = append(ordered, it.Doc)
		}
	}
	for i, o := range ordered {
		if o != d {
			continue
		}
		if i > 0 {
			prev = ordered[i-1]
		}
		if i < len(ordered)-1 {
			next = ordered[i+1]
		}
		break
	}
	return prev, next
}
