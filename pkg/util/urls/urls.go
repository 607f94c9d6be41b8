// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package urls

import (
	"net/url"
	"path"
	"strings"
)

const (
	// PathSeparator is the URL paths separator character
	PathSeparator = '/'
)

// Clean normalizes a site route to its canonical form without
// leading or trailing separators. The root route is "".
func Clean(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	route = path.Clean("/" + route)
	return strings.Trim(route, string(PathSeparator))
}

// HasPrefix reports whether route lies at or below prefix,
// comparing whole path segments only ("docs/ctrl" is below "docs",
// "docsx" is not)
func HasPrefix(route, prefix string) bool {
	route, prefix = Clean(route), Clean(prefix)
	if prefix == "" || route == prefix {
		return true
	}
	return strings.HasPrefix(route, prefix+string(PathSeparator))
}

// Join joins route segments into a clean route
func Join(segments ...string) string {
	return Clean(path.Join(segments...))
}

// IsExternal reports whether link leaves the site (has a scheme or host)
func IsExternal(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return u.Scheme != "" || u.Host != ""
}

// Ext returns the resource name extension used by URL path.
// The extension is the suffix beginning at the final dot
// in the final element of path; it is empty if there is
// no dot.
func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != PathSeparator; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return ""
}
