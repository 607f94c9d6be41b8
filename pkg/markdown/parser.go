// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

var (
	// parser extension for GitHub Flavored Markdown & Frontmatter support
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	// goldmark.Markdown with GFM extensions, heading ids and raw HTML passthrough
	gm = goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
)

// ResolveLink maps a relative link to a markdown file or image onto a
// site route. The second result is false when the target is unknown.
type ResolveLink func(dest string) (string, bool)

// Document is a rendered markdown source
type Document struct {
	// Meta is the front matter
	Meta Meta
	// Title is the text of the first level one heading, if any
	Title string
	// HTML is the rendered body
	HTML []byte
	// Words is the number of words in the body text
	Words int
	// BrokenLinks are markdown links the resolver didn't know
	BrokenLinks []string
}

// Parse markdown content and returns AST node or error
func Parse(source []byte) (ast.Node, Meta, error) {
	reader := text.NewReader(source)
	context := parser.NewContext()
	doc := gm.Parser().Parse(reader, parser.WithContext(context))
	fmb, err := meta.TryGet(context)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid front matter: %w", err)
	}
	if doc.Kind() == ast.KindDocument {
		doc.(*ast.Document).SetMeta(fmb)
	}
	return doc, Meta(fmb), nil
}

// Render parses source and renders it to HTML. Links to markdown
// files are rewritten with resolve, which may be nil.
func Render(source []byte, resolve ResolveLink) (*Document, error) {
	node, fm, err := Parse(source)
	if err != nil {
		return nil, err
	}
	d := &Document{Meta: fm}
	err = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 && d.Title == "" {
				d.Title = plainText(v, source)
			}
		case *ast.Text:
			d.Words += len(strings.Fields(string(v.Segment.Value(source))))
		case *ast.Link:
			dest := string(v.Destination)
			if resolve == nil || !IsMarkdownLink(dest) {
				return ast.WalkContinue, nil
			}
			route, ok := resolve(dest)
			if !ok {
				d.BrokenLinks = append(d.BrokenLinks, dest)
				return ast.WalkContinue, nil
			}
			v.Destination = []byte(route)
		case *ast.Image:
			dest := string(v.Destination)
			if resolve == nil || !isRelative(dest) {
				return ast.WalkContinue, nil
			}
			// unknown images are left to the link checker
			if route, ok := resolve(dest); ok {
				v.Destination = []byte(route)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := gm.Renderer().Render(&b, source, node); err != nil {
		return nil, fmt.Errorf("rendering markdown failed: %w", err)
	}
	d.HTML = b.Bytes()
	return d, nil
}

// IsMarkdownLink reports whether dest is a relative link to a .md or .mdx file
func IsMarkdownLink(dest string) bool {
	u, err := url.Parse(dest)
	if err != nil || u.IsAbs() || u.Host != "" || u.Path == "" {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	return ext == ".md" || ext == ".mdx"
}

func isRelative(dest string) bool {
	u, err := url.Parse(dest)
	return err == nil && !u.IsAbs() && u.Host == "" && u.Path != "" && !path.IsAbs(u.Path)
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch t := c.(type) {
			case *ast.Text:
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() {
					b.WriteByte(' ')
				}
			case *ast.String:
				b.Write(t.Value)
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
