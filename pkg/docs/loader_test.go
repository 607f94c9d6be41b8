// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package docs_test

import (
	"testing/fstest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rugix/rugix-site/pkg/docs"
	"github.com/rugix/rugix-site/pkg/site"
	"k8s.io/utils/ptr"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

var _ = Describe("Load", func() {
	var (
		fsys fstest.MapFS
		conf *site.DocsCollection
	)

	BeforeEach(func() {
		fsys = fstest.MapFS{
			"docs-ctrl/index.md":                                 file("---\ntitle: Rugix Ctrl\n---\nOn-device update engine.\n"),
			"docs-ctrl/getting-started.md":                       file("---\nsidebar_position: 1\n---\n# Getting Started\n\nInstall it.\n"),
			"docs-ctrl/advanced/_category_.json":                 file(`{"label": "Advanced Topics", "position": 2}`),
			"docs-ctrl/advanced/delta-updates.md":                file("# Delta Updates\n"),
			"docs-ctrl/advanced/state-management.md":             file("---\nslug: state\nsidebar_label: State\n---\n# State Management\n"),
			"docs-ctrl/_partials/shared.md":                      file("shared"),
			"docs-ctrl/assets/diagram.svg":                       file("<svg/>"),
			"ctrl_versions.json":                                 file(`["0.8", "0.7"]`),
			"ctrl_versioned_docs/version-0.8/index.md":           file("# Rugix Ctrl 0.8\n"),
			"ctrl_versioned_docs/version-0.8/getting-started.md": file("# Getting Started\n"),
			"ctrl_versioned_docs/version-0.7/index.md":           file("# Rugix Ctrl 0.7\n"),
		}
		conf = &site.DocsCollection{
			ID:            "ctrl",
			Path:          "docs-ctrl",
			RouteBasePath: "docs/ctrl",
			EditURL:       "https://github.com/rugix/rugix-docs/tree/main/",
		}
	})

	It("serves the newest released version at the collection root", func() {
		c, err := docs.Load(fsys, conf)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Last.Name).To(Equal("0.8"))
		Expect(c.Last.Path).To(Equal("docs/ctrl"))

		names := []string{}
		for _, v := range c.Versions {
			names = append(names, v.Name)
		}
		Expect(names).To(Equal([]string{"current", "0.8", "0.7"}))

		current, ok := c.Version("current")
		Expect(ok).To(BeTrue())
		Expect(current.Path).To(Equal("docs/ctrl/next"))
		Expect(current.Label).To(Equal("Next"))
		Expect(current.Banner).To(Equal("unreleased"))

		old, _ := c.Version("0.7")
		Expect(old.Path).To(Equal("docs/ctrl/0.7"))
		Expect(old.Banner).To(Equal("unmaintained"))
	})

	It("serves current at the root when lastVersion is current", func() {
		conf.LastVersion = site.CurrentVersion
		conf.Versions = map[string]*site.VersionOption{
			site.CurrentVersion: {Label: "Latest"},
		}
		c, err := docs.Load(fsys, conf)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Last.Name).To(Equal(site.CurrentVersion))
		Expect(c.Last.Label).To(Equal("Latest"))
		Expect(c.Last.Path).To(Equal("docs/ctrl"))
		Expect(c.Last.Banner).To(BeEmpty())
	})

	It("derives ids, routes, titles and edit urls", func() {
		conf.LastVersion = site.CurrentVersion
		c, err := docs.Load(fsys, conf)
		Expect(err).NotTo(HaveOccurred())
		v := c.Last
		Expect(v.Docs).To(HaveLen(4))

		idx, ok := v.Doc("index")
		Expect(ok).To(BeTrue())
		Expect(idx.Route).To(Equal("docs/ctrl"))
		Expect(idx.Title).To(Equal("Rugix Ctrl"))
		Expect(v.MainDoc()).To(BeIdenticalTo(idx))

		gs, ok := v.Doc("getting-started")
		Expect(ok).To(BeTrue())
		Expect(gs.Route).To(Equal("docs/ctrl/getting-started"))
		Expect(gs.Position).To(Equal(ptr.To(1)))
		Expect(gs.Title).To(Equal("Getting Started"))
		Expect(gs.EditURL).To(Equal("https://github.com/rugix/rugix-docs/tree/main/docs-ctrl/getting-started.md"))

		state, ok := v.Doc("advanced/state-management")
		Expect(ok).To(BeTrue())
		Expect(state.Route).To(Equal("docs/ctrl/advanced/state"))

		byRoute, ok := v.DocByRoute("/docs/ctrl/advanced/state/")
		Expect(ok).To(BeTrue())
		Expect(byRoute).To(BeIdenticalTo(state))
	})

	It("builds an ordered sidebar with categories", func() {
		conf.LastVersion = site.CurrentVersion
		c, err := docs.Load(fsys, conf)
		Expect(err).NotTo(HaveOccurred())
		sb := c.Last.Sidebar
		Expect(sb).To(HaveLen(3))
		Expect(sb[0].Label).To(Equal("Getting Started"))
		Expect(sb[1].Label).To(Equal("Advanced Topics"))
		Expect(sb[1].IsCategory()).To(BeTrue())
		Expect(sb[1].Items).To(HaveLen(2))
		Expect(sb[1].Items[0].Label).To(Equal("Delta Updates"))
		Expect(sb[1].Items[1].Label).To(Equal("State"))
		Expect(sb[1].Contains("docs/ctrl/advanced/state")).To(BeTrue())
		Expect(sb[2].Label).To(Equal("Rugix Ctrl"))
	})

	It("links neighbouring docs in sidebar order", func() {
		conf.LastVersion = site.CurrentVersion
		c, err := docs.Load(fsys, conf)
		Expect(err).NotTo(HaveOccurred())
		start, _ := c.Last.Doc("getting-started")
		delta, _ := c.Last.Doc("advanced/delta-updates")
		state, _ := c.Last.Doc("advanced/state-management")

		prev, next := c.Last.Neighbours(start)
		Expect(prev).To(BeNil())
		Expect(next).To(BeIdenticalTo(delta))
		prev, next = c.Last.Neighbours(state)
		Expect(prev).To(BeIdenticalTo(delta))
		Expect(next.ID).To(Equal("index"))
	})

	It("discovers versioned directories when the versions file is missing", func() {
		delete(fsys, "ctrl_versions.json")
		fsys["ctrl_versioned_docs/version-0.10/index.md"] = file("# 0.10\n")
		c, err := docs.Load(fsys, conf)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Last.Name).To(Equal("0.10"))
	})

	It("fails when lastVersion is unknown", func() {
		conf.LastVersion = "9.9"
		_, err := docs.Load(fsys, conf)
		Expect(err).To(MatchError(ContainSubstring(`lastVersion "9.9" does not exist`)))
	})

	It("fails when two docs share a route", func() {
		fsys["docs-ctrl/other.md"] = file("---\nslug: getting-started\n---\n")
		conf.LastVersion = site.CurrentVersion
		_, err := docs.Load(fsys, conf)
		Expect(err).To(MatchError(ContainSubstring("are both served at /docs/ctrl/getting-started")))
	})

	It("fails when two docs share an id", func() {
		fsys["docs-ctrl/other.md"] = file("---\nid: getting-started\nslug: other\n---\n# Other\n")
		conf.LastVersion = site.CurrentVersion
		_, err := docs.Load(fsys, conf)
		Expect(err).To(MatchError(ContainSubstring(`docs-ctrl/getting-started.md and docs-ctrl/other.md share the id "getting-started"`)))
	})
})

var _ = Describe("SortVersions", func() {
	DescribeTable("orders newest first",
		func(in []string, want []string) {
			docs.SortVersions(in)
			Expect(in).To(Equal(want))
		},
		Entry("semver", []string{"0.7", "0.10", "0.8.1"}, []string{"0.10", "0.8.1", "0.7"}),
		Entry("prerelease", []string{"1.0.0-rc1", "1.0.0", "0.9"}, []string{"1.0.0", "1.0.0-rc1", "0.9"}),
		Entry("non semver last", []string{"legacy", "1.0", "alpha"}, []string{"1.0", "alpha", "legacy"}),
	)
})
