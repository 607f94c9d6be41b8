// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navbar

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"github.com/rugix/rugix-site/pkg/docs"
	"github.com/rugix/rugix-site/pkg/site"
)

// ActiveVersions reports the active version of a docs collection for a page
//
//counterfeiter:generate . ActiveVersions
type ActiveVersions interface {
	ActiveVersion(pluginID, pagePath string) (docs.VersionInfo, bool)
}

// Versions is what the default version dropdown needs to list
// the versions of a collection
type Versions interface {
	ActiveVersions
	Collection(pluginID string) (*docs.Collection, bool)
	ActiveDoc(pluginID, pagePath string) (*docs.Doc, bool)
}

// Outcome is the decision of the version dropdown guard,
// either Suppressed or Delegate
type Outcome interface {
	outcome()
}

// Suppressed renders nothing
type Suppressed struct{}

// Delegate renders the default version dropdown with Props
type Delegate struct {
	Props site.NavbarItem
}

func (Suppressed) outcome() {}
func (Delegate) outcome()   {}

// DocsVersionDropdown decides whether the version dropdown configured by
// props is shown on the page at pagePath. It is shown only when the
// collection props.DocsPluginID has an active version for that page;
// props are forwarded untouched.
func DocsVersionDropdown(props site.NavbarItem, pagePath string, active ActiveVersions) Outcome {
	if _, ok := active.ActiveVersion(props.DocsPluginID, pagePath); !ok {
		return Suppressed{}
	}
	return Delegate{Props: props}
}

// DefaultVersionDropdown is the standard version dropdown. Each entry links
// to the current doc in that version if it exists there, otherwise to the
// version's main doc.
func DefaultVersionDropdown(props site.NavbarItem, pagePath string, versions Versions, baseURL string) RenderedItem {
	item := RenderedItem{
		Kind:      KindDropdown,
		Position:  props.Position,
		ClassName: props.ClassName,
		AriaLabel: props.AriaLabel,
	}
	col, ok := versions.Collection(props.DocsPluginID)
	if !ok {
		return item
	}
	current := col.Last.VersionInfo
	active, isActive := versions.ActiveVersion(props.DocsPluginID, pagePath)
	if isActive {
		current = active
	}
	item.Label = current.Label
	item.Active = isActive && !props.DropdownActiveClassDisabled
	activeDoc, _ := versions.ActiveDoc(props.DocsPluginID, pagePath)

	for _, v := range col.Versions {
		target := v.MainDoc()
		if activeDoc != nil {
			if same, ok := v.Doc(activeDoc.ID); ok {
				target = same
			}
		}
		route := v.Path
		if target != nil {
			route = target.Route
		}
		item.Items = append(item.Items, RenderedItem{
			Kind:   KindLink,
			Label:  v.Label,
			Href:   link(baseURL, route),
			Active: v.Name == current.Name,
		})
	}
	return item
}
