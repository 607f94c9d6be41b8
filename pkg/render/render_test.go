// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package render_test

import (
	"fmt"
	"io/fs"
	"testing/fstest"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rugix/rugix-site/pkg/blog"
	"github.com/rugix/rugix-site/pkg/docs"
	"github.com/rugix/rugix-site/pkg/render"
	"github.com/rugix/rugix-site/pkg/site"
)

const siteConfig = `title: Rugix
tagline: Robust Linux-powered products.
url: https://rugix.org/
favicon: /img/logo.svg
colorMode:
  defaultMode: dark
  disableSwitch: true
analytics:
  plausibleDomain: rugix.org
announcementBar:
  id: 2026-embedded-world
  content: '<a target="_blank" href="/blog/releases/1.0"><strong>Rugix 1.0.0 is out!</strong></a><script>alert(1)</script>'
  backgroundColor: "#6ee7b7"
  isCloseable: true
navbar:
  title: Rugix
  items:
    - type: doc
      docsPluginId: ctrl
      docId: index
      label: Rugix Ctrl
    - to: /blog
      label: Blog
    - type: docsVersionDropdown
      docsPluginId: ctrl
      position: right
      dropdownActiveClassDisabled: true
footer:
  links:
    - title: Community
      items:
        - label: GitHub
          href: https://github.com/rugix/rugix
        - label: Blog
          to: /blog
  copyright: 'Copyright © {{ .Year }} Silitics GmbH<img src=x onerror=alert(1)>'
docs:
  - id: ctrl
    routeBasePath: docs/ctrl
home:
  hero:
    title: Over-the-Air Updates for Embedded Linux
    strapline: Deploy updates with confidence. Never brick a device.
    ctaLabel: From Zero to OTA Update in 30 Minutes
    ctaShortLabel: Get Started
    ctaTo: /docs/getting-started
  tools:
    title: Two Tools. One Goal.
    cards:
      - title: Rugix Ctrl
        tagline: On-device update engine.
        to: /docs/ctrl
  stories:
    id: user-success-stories
    title: Success Stories
    entries:
      - title: Umbrel
        image: /img/umbrel-pro.jpg
        alt: Umbrel Pro device
        body: '<a href="https://umbrel.com/">Umbrel</a> chose Rugix.<iframe src="https://evil"></iframe>'
blog:
  blogSidebarTitle: All Posts
`

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

var _ = Describe("Renderer", func() {
	var (
		s        *site.Site
		registry *docs.Registry
		r        *render.Renderer
		col      *docs.Collection
	)

	BeforeEach(func() {
		var err error
		s, err = site.Parse([]byte(siteConfig), nil)
		Expect(err).NotTo(HaveOccurred())
		fsys := fstest.MapFS{
			"docs-ctrl/index.md":                       file("# Rugix Ctrl\n"),
			"docs-ctrl/updates.md":                     file("# Updates\n"),
			"ctrl_versions.json":                       file(`["0.8"]`),
			"ctrl_versioned_docs/version-0.8/index.md": file("# Rugix Ctrl 0.8\n"),
		}
		col, err = docs.Load(fsys, s.Docs[0])
		Expect(err).NotTo(HaveOccurred())
		registry = docs.NewRegistry(col)
		r, err = render.New(s, registry)
		Expect(err).NotTo(HaveOccurred())
	})

	renderPage := func(kind render.Kind, route, title string, contents interface{}) string {
		out, err := r.Render(kind, route, title, "", contents)
		Expect(err).NotTo(HaveOccurred())
		return string(out)
	}

	Describe("layout", func() {
		var out string

		BeforeEach(func() {
			out = renderPage(render.KindHome, "", "", r.Home())
		})

		It("sets language, color mode and metadata", func() {
			Expect(out).To(ContainSubstring(`<html lang="en" data-theme="dark" data-theme-locked="true">`))
			Expect(out).To(ContainSubstring(`<title>Rugix</title>`))
			Expect(out).To(ContainSubstring(`<meta name="description" content="Robust Linux-powered products.">`))
			Expect(out).To(ContainSubstring(`<link rel="canonical" href="https://rugix.org/">`))
			Expect(out).To(ContainSubstring(`<link rel="icon" href="/img/logo.svg">`))
		})

		It("includes the analytics script and theme configuration", func() {
			Expect(out).To(ContainSubstring(`data-domain="rugix.org" src="https://plausible.io/js/script.js"`))
			Expect(out).To(ContainSubstring(`"mermaid":false`))
			Expect(out).To(ContainSubstring(`"disableSwitch":true`))
		})

		It("sanitises the announcement", func() {
			Expect(out).To(ContainSubstring(`data-announcement-id="2026-embedded-world" data-closeable="true"`))
			Expect(out).To(ContainSubstring(`<strong>Rugix 1.0.0 is out!</strong>`))
			Expect(out).To(ContainSubstring(`target="_blank"`))
			Expect(out).NotTo(ContainSubstring(`<script>alert(1)</script>`))
		})

		It("renders the footer with a sanitised copyright", func() {
			Expect(out).To(ContainSubstring(fmt.Sprintf("Copyright © %d Silitics GmbH", time.Now().Year())))
			Expect(out).NotTo(ContainSubstring("onerror"))
			Expect(out).To(ContainSubstring(`<a class="footer__link-item" href="https://github.com/rugix/rugix" target="_blank" rel="noopener noreferrer">GitHub</a>`))
			Expect(out).To(ContainSubstring(`<a class="footer__link-item" href="/blog">Blog</a>`))
		})

		It("renders the landing page", func() {
			Expect(out).To(ContainSubstring("<h1>Over-the-Air Updates for Embedded Linux</h1>"))
			Expect(out).To(ContainSubstring(`href="/docs/getting-started"`))
			Expect(out).To(ContainSubstring(`<span class="cta-short">Get Started</span>`))
			Expect(out).To(ContainSubstring(`<section id="user-success-stories" class="stories">`))
			Expect(out).To(ContainSubstring(`alt="Umbrel Pro device"`))
			Expect(out).To(ContainSubstring(`chose Rugix.`))
			Expect(out).NotTo(ContainSubstring("<iframe"))
		})

		It("hides the version dropdown outside of the collection", func() {
			Expect(out).NotTo(ContainSubstring("dropdown__menu"))
		})
	})

	Describe("docs pages", func() {
		It("shows the version dropdown and the sidebar", func() {
			d, ok := col.Last.Doc("index")
			Expect(ok).To(BeTrue())
			out := renderPage(render.KindDoc, d.Route, d.Title, r.Doc(col.Last, d, []byte("<p>Body</p>")))
			Expect(out).To(ContainSubstring(`<title>Rugix Ctrl 0.8 | Rugix</title>`))
			Expect(out).To(ContainSubstring(`<ul class="dropdown__menu">`))
			Expect(out).To(ContainSubstring(`<a class="dropdown__link" href="/docs/ctrl/next">Next</a>`))
			Expect(out).To(ContainSubstring(`<a class="dropdown__link dropdown__link--active" href="/docs/ctrl">0.8</a>`))
			Expect(out).To(ContainSubstring(`navbar__link navbar__link--active" href="/docs/ctrl">Rugix Ctrl</a>`))
			Expect(out).To(ContainSubstring("<p>Body</p>"))
			Expect(out).NotTo(ContainSubstring("version-banner"))
		})

		It("shows a banner on unreleased versions", func() {
			next, ok := col.Version(site.CurrentVersion)
			Expect(ok).To(BeTrue())
			d, ok := next.Doc("updates")
			Expect(ok).To(BeTrue())
			view := r.Doc(next, d, nil)
			Expect(view.Latest).NotTo(BeNil())
			Expect(view.Latest.Href).To(Equal("/docs/ctrl"))
			Expect(view.Prev).NotTo(BeNil())
			out := renderPage(render.KindDoc, d.Route, d.Title, view)
			Expect(out).To(ContainSubstring("This is unreleased documentation for Next."))
			Expect(out).To(ContainSubstring(`<a class="menu__link menu__link--active" href="/docs/ctrl/next/updates" aria-current="page">Updates</a>`))
		})
	})

	Describe("blog pages", func() {
		var b *blog.Blog

		BeforeEach(func() {
			fsys := fstest.MapFS{
				"blog/releases/1.0.md": file("---\ntitle: Rugix 1.0\ndate: 2026-02-10\ntags: [release]\nauthors:\n  - name: Maximilian Köhl\n---\n\nRugix 1.0 is out.\n"),
				"blog/releases/0.8.md": file("---\ntitle: Rugix 0.8\ndate: 2025-03-01\n---\n\nOld.\n"),
			}
			var err error
			s.Blog.ShowReadingTime = true
			b, err = blog.Load(fsys, s.Blog)
			Expect(err).NotTo(HaveOccurred())
		})

		It("renders a post", func() {
			p := b.Posts[0]
			out := renderPage(render.KindPost, p.Route, p.Title, r.Post(b, p, []byte("<p>Rugix 1.0 is out.</p>")))
			Expect(out).To(ContainSubstring(`<time datetime="2026-02-10">February 10, 2026</time> · 1 min read`))
			Expect(out).To(ContainSubstring("<span>Maximilian Köhl</span>"))
			Expect(out).To(ContainSubstring(`<a class="tag" href="/blog/tags/release">release</a>`))
			Expect(out).To(ContainSubstring(`<div class="blog-sidebar__title">All Posts</div>`))
			Expect(out).To(ContainSubstring(`<a class="active" href="/blog/releases/1.0">Rugix 1.0</a>`))
			Expect(out).To(ContainSubstring(`href="/blog/releases/0.8"><div class="pagination-nav__sublabel">Older post</div>`))
			Expect(out).To(ContainSubstring(`navbar__link navbar__link--active" href="/blog">Blog</a>`))
		})

		It("renders the index with excerpts", func() {
			view := r.BlogList(b, "Blog", b.Posts, func(p *blog.Post) ([]byte, bool) {
				return []byte("<p>excerpt of " + p.Title + "</p>"), p.Title == "Rugix 1.0"
			})
			out := renderPage(render.KindBlogList, b.RouteBasePath, "Blog", view)
			Expect(out).To(ContainSubstring(`<h2><a href="/blog/releases/1.0">Rugix 1.0</a></h2>`))
			Expect(out).To(ContainSubstring("<p>excerpt of Rugix 0.8</p>"))
			Expect(out).To(ContainSubstring(`aria-label="Read more about Rugix 1.0"`))
			Expect(out).NotTo(ContainSubstring(`aria-label="Read more about Rugix 0.8"`))
			Expect(out).To(ContainSubstring(`<a class="blog-list__tags" href="/blog/tags">View all tags</a>`))
		})

		It("renders the tag overview", func() {
			out := renderPage(render.KindTags, b.TagsRoute(), "Tags", r.Tags(b))
			Expect(out).To(ContainSubstring(`<a class="tag" href="/blog/tags/release">release <span class="tag__count">1</span></a>`))
		})
	})

	It("renders the 404 page", func() {
		out := renderPage(render.KindNotFound, "404", "Page Not Found", r.NotFound())
		Expect(out).To(ContainSubstring(`<a href="/">Back to the home page</a>`))
	})

	It("rejects unknown kinds", func() {
		_, err := r.Render(render.Kind("gallery"), "", "", "", nil)
		Expect(err).To(MatchError(ContainSubstring("unknown page kind gallery")))
	})

	It("ships the stylesheet the layout links", func() {
		css, err := fs.ReadFile(render.Assets(), "css/site.css")
		Expect(err).NotTo(HaveOccurred())
		Expect(css).NotTo(BeEmpty())
	})
})
