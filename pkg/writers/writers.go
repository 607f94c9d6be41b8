// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

// IndexFile is the file name a page route is written to
const IndexFile = "index.html"

// Writer writes blobs with name to a given path. Implementations
// are safe for concurrent use.
type Writer interface {
	Write(name, path string, content []byte) error
}

// WritePage writes the page served at route to w
func WritePage(w Writer, route string, content []byte) error {
	return w.Write(IndexFile, route, content)
}
