// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navbar

import (
	"strings"

	"github.com/rugix/rugix-site/pkg/site"
	"github.com/rugix/rugix-site/pkg/util/urls"
	"k8s.io/klog/v2"
)

// Kind of a rendered navbar item
type Kind string

const (
	// KindLink is a single link
	KindLink Kind = "link"
	// KindDropdown is a menu of links
	KindDropdown Kind = "dropdown"
)

// RenderedItem is the view model of a navbar item for templates
type RenderedItem struct {
	Kind      Kind
	Label     string
	Href      string
	External  bool
	Position  string
	ClassName string
	AriaLabel string
	Active    bool
	Items     []RenderedItem
}

// Build renders the navbar items for the page at pagePath. Version
// dropdowns without an active version are left out.
func Build(items []*site.NavbarItem, pagePath string, versions Versions, baseURL string) []RenderedItem {
	rendered := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		switch it.Type {
		case site.NavbarItemDocsVersionDropdown:
			switch o := DocsVersionDropdown(*it, pagePath, versions).(type) {
			case Delegate:
				rendered = append(rendered, DefaultVersionDropdown(o.Props, pagePath, versions, baseURL))
			case Suppressed:
				klog.V(6).Infof("version dropdown of %s suppressed on /%s", it.DocsPluginID, urls.Clean(pagePath))
			}
		case site.NavbarItemDoc:
			rendered = append(rendered, docLink(it, pagePath, versions, baseURL))
		default:
			rendered = append(rendered, plainLink(it, pagePath, baseURL))
		}
	}
	return rendered
}

// Split separates items by position
func Split(items []RenderedItem) (left, right []RenderedItem) {
	for _, it := range items {
		if it.Position == "right" {
			right = append(right, it)
			continue
		}
		left = append(left, it)
	}
	return left, right
}

func docLink(it *site.NavbarItem, pagePath string, versions Versions, baseURL string) RenderedItem {
	r := RenderedItem{
		Kind:      KindLink,
		Label:     it.Label,
		Position:  it.Position,
		ClassName: it.ClassName,
		AriaLabel: it.AriaLabel,
	}
	col, ok := versions.Collection(it.DocsPluginID)
	if !ok {
		return r
	}
	version := col.Last
	if active, ok := versions.ActiveVersion(it.DocsPluginID, pagePath); ok {
		r.Active = true
		if v, ok := col.Version(active.Name); ok {
			version = v
		}
	}
	doc, ok := version.Doc(it.DocID)
	if !ok {
		doc, ok = col.Last.Doc(it.DocID)
	}
	if !ok {
		r.Href = link(baseURL, version.Path)
		return r
	}
	r.Href = link(baseURL, doc.Route)
	if r.Label == "" {
		r.Label = doc.Title
	}
	return r
}

func plainLink(it *site.NavbarItem, pagePath string, baseURL string) RenderedItem {
	r := RenderedItem{
		Kind:      KindLink,
		Label:     it.Label,
		Position:  it.Position,
		ClassName: it.ClassName,
		AriaLabel: it.AriaLabel,
	}
	if it.Href != "" {
		r.Href = it.Href
		r.External = urls.IsExternal(it.Href)
		return r
	}
	r.Href = link(baseURL, it.To)
	r.Active = isActive(it.To, pagePath)
	return r
}

// isActive matches the item route exactly or as a parent of the page,
// the root only matches itself
func isActive(itemPath, currentPath string) bool {
	itemPath, currentPath = urls.Clean(itemPath), urls.Clean(currentPath)
	if itemPath == "" {
		return currentPath == ""
	}
	return urls.HasPrefix(currentPath, itemPath)
}

func link(baseURL, route string) string {
	if baseURL == "" {
		baseURL = "/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + urls.Clean(route)
}
