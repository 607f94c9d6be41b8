// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package build

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/rugix/rugix-site/pkg/markdown"
	"github.com/rugix/rugix-site/pkg/util/urls"
)

// page is a standalone markdown page such as /fleet-management
type page struct {
	source      string
	route       string
	title       string
	description string
	content     []byte
}

// loadPages reads the markdown files under dir. A file is served at its
// path without extension, index files at their directory.
func loadPages(fsys fs.FS, dir string) ([]*page, error) {
	var pages []*page
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if errors.Is(err, fs.ErrNotExist) && p == dir {
			return fs.SkipDir
		}
		if err != nil {
			return err
		}
		if p != dir && strings.HasPrefix(d.Name(), "_") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdown(p) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		doc, err := markdown.Render(content, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, dir), "/")
		name := strings.TrimSuffix(rel, path.Ext(rel))
		if base := path.Base(name); strings.EqualFold(base, "index") || strings.EqualFold(base, "readme") {
			name = path.Dir(name)
		}
		pg := &page{
			source:      p,
			route:       urls.Clean(name),
			title:       doc.Meta.String("title"),
			description: doc.Meta.String("description"),
			content:     content,
		}
		if slug := doc.Meta.String("slug"); slug != "" {
			pg.route = urls.Clean(slug)
		}
		if pg.title == "" {
			pg.title = doc.Title
		}
		pages = append(pages, pg)
		return nil
	})
	return pages, err
}

func isMarkdown(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".md" || ext == ".mdx"
}
