// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package build

import (
	"html/template"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/rugix/rugix-site/pkg/linkcheck"
	"github.com/rugix/rugix-site/pkg/markdown"
)

// markdown renders the markdown content of source. Relative links to
// other markdown sources become site links; unknown targets are handled
// according to the broken markdown links policy.
func (b *Builder) markdown(source string, content []byte) ([]byte, error) {
	doc, err := markdown.Render(content, b.resolver(source))
	if err != nil {
		return nil, err
	}
	if len(doc.BrokenLinks) > 0 {
		broken := make([]linkcheck.Broken, 0, len(doc.BrokenLinks))
		for _, l := range doc.BrokenLinks {
			broken = append(broken, linkcheck.Broken{Page: source, Link: l})
		}
		b.mux.Lock()
		b.brokenMarkdown = append(b.brokenMarkdown, broken...)
		b.mux.Unlock()
		if err := linkcheck.Apply(b.site.Markdown.OnBrokenMarkdownLinks, "markdown link", broken); err != nil {
			return nil, err
		}
	}
	return doc.HTML, nil
}

func (b *Builder) resolver(source string) markdown.ResolveLink {
	return func(dest string) (string, bool) {
		u, err := url.Parse(dest)
		if err != nil {
			return "", false
		}
		target := path.Join(path.Dir(source), u.Path)
		if path.IsAbs(u.Path) {
			target = path.Clean(u.Path[1:])
		}
		route, ok := b.sources[target]
		if !markdown.IsMarkdownLink(dest) {
			route, ok = b.assetRoute(target)
		}
		if !ok {
			return "", false
		}
		link := b.site.Route(route)
		if u.Fragment != "" {
			link += "#" + u.Fragment
		}
		return link, true
	}
}

// assetRoute is the route a file next to the docs of a version is
// copied to, see copyStatic
func (b *Builder) assetRoute(target string) (string, bool) {
	for _, col := range b.registry.Collections() {
		for _, v := range col.Versions {
			rel, ok := strings.CutPrefix(target, v.ContentDir+"/")
			if !ok {
				continue
			}
			if info, err := fs.Stat(b.fsys, target); err == nil && !info.IsDir() {
				return path.Join(v.Path, rel), true
			}
		}
	}
	return "", false
}

func toHTML(body []byte) template.HTML {
	return template.HTML(body)
}
