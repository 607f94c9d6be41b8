// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package docs

import (
	"github.com/rugix/rugix-site/pkg/util/urls"
)

// Registry answers which collection version a page belongs to.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	collections []*Collection
	byID        map[string]*Collection
}

// NewRegistry creates a Registry over the given collections
func NewRegistry(collections ...*Collection) *Registry {
	r := &Registry{
		collections: collections,
		byID:        make(map[string]*Collection, len(collections)),
	}
	for _, c := range collections {
		r.byID[c.ID] = c
	}
	return r
}

// Collections returns the registered collections in registration order
func (r *Registry) Collections() []*Collection {
	return r.collections
}

// Collection returns the collection with the given id
func (r *Registry) Collection(pluginID string) (*Collection, bool) {
	c, ok := r.byID[pluginID]
	return c, ok
}

// ActiveVersion returns the version of collection pluginID the page at
// pagePath belongs to. A page belongs to the version whose path is the
// longest prefix of pagePath across all collections, so pages of a
// collection nested below another collection's route are not claimed
// by the outer one.
func (r *Registry) ActiveVersion(pluginID, pagePath string) (VersionInfo, bool) {
	v := r.owner(pagePath)
	if v == nil || v.PluginID != pluginID {
		return VersionInfo{}, false
	}
	return v.VersionInfo, true
}

// ActiveDoc returns the doc of collection pluginID served at pagePath
func (r *Registry) ActiveDoc(pluginID, pagePath string) (*Doc, bool) {
	v := r.owner(pagePath)
	if v == nil || v.PluginID != pluginID {
		return nil, false
	}
	return v.DocByRoute(pagePath)
}

func (r *Registry) owner(pagePath string) *Version {
	var (
		best    *Version
		bestLen = -1
	)
	for _, c := range r.collections {
		for _, v := range c.Versions {
			if !urls.HasPrefix(pagePath, v.Path) {
				continue
			}
			if l := len(v.Path); l > bestLen {
				best, bestLen = v, l
			}
		}
	}
	return best
}
