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
)

var _ = Describe("Registry", func() {
	var registry *docs.Registry

	BeforeEach(func() {
		fsys := fstest.MapFS{
			"docs/getting-started.md":                  file("# Getting Started\n"),
			"docs-ctrl/index.md":                       file("# Ctrl\n"),
			"docs-ctrl/intro.md":                       file("# Intro\n"),
			"ctrl_versions.json":                       file(`["1.0"]`),
			"ctrl_versioned_docs/version-1.0/index.md": file("# Ctrl 1.0\n"),
			"ctrl_versioned_docs/version-1.0/intro.md": file("# Intro 1.0\n"),
			"docs-bakery/index.md":                     file("# Bakery\n"),
		}
		var collections []*docs.Collection
		for _, c := range []*site.DocsCollection{
			{ID: "default", Path: "docs", RouteBasePath: "docs", LastVersion: "current"},
			{ID: "ctrl", Path: "docs-ctrl", RouteBasePath: "docs/ctrl"},
			{ID: "bakery", Path: "docs-bakery", RouteBasePath: "docs/bakery"},
		} {
			col, err := docs.Load(fsys, c)
			Expect(err).NotTo(HaveOccurred())
			collections = append(collections, col)
		}
		registry = docs.NewRegistry(collections...)
	})

	DescribeTable("ActiveVersion",
		func(pluginID, page string, wantOK bool, wantName string) {
			v, ok := registry.ActiveVersion(pluginID, page)
			Expect(ok).To(Equal(wantOK))
			if wantOK {
				Expect(v.PluginID).To(Equal(pluginID))
				Expect(v.Name).To(Equal(wantName))
			}
		},
		Entry("ctrl root", "ctrl", "/docs/ctrl", true, "1.0"),
		Entry("ctrl doc", "ctrl", "/docs/ctrl/intro/", true, "1.0"),
		Entry("ctrl next", "ctrl", "/docs/ctrl/next/intro", true, "current"),
		Entry("bakery root", "bakery", "/docs/bakery", true, "current"),
		Entry("ctrl page is not bakery", "bakery", "/docs/ctrl/intro", false, ""),
		Entry("nested collection is not claimed by default", "default", "/docs/ctrl/intro", false, ""),
		Entry("default doc", "default", "/docs/getting-started", true, "current"),
		Entry("blog page", "ctrl", "/blog/releases/1.0", false, ""),
		Entry("home page", "default", "/", false, ""),
		Entry("segment boundary", "ctrl", "/docs/ctrlx", false, ""),
		Entry("unknown collection", "nope", "/docs/ctrl", false, ""),
	)

	It("resolves the active doc", func() {
		d, ok := registry.ActiveDoc("ctrl", "/docs/ctrl/next/intro")
		Expect(ok).To(BeTrue())
		Expect(d.Title).To(Equal("Intro"))

		_, ok = registry.ActiveDoc("default", "/docs/ctrl/next/intro")
		Expect(ok).To(BeFalse())
	})

	It("answers the same way on every call", func() {
		first, ok1 := registry.ActiveVersion("ctrl", "/docs/ctrl/intro")
		second, ok2 := registry.ActiveVersion("ctrl", "/docs/ctrl/intro")
		Expect(ok1).To(Equal(ok2))
		Expect(first).To(Equal(second))
	})
})
