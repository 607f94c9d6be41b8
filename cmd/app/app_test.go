// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rugix/rugix-site/cmd/app"
	"github.com/rugix/rugix-site/pkg/version"
)

const siteConfig = `title: Rugix
url: https://rugix.org/
navbar:
  items:
    - type: docsVersionDropdown
      docsPluginId: ctrl
      position: right
docs:
  - id: ctrl
    routeBasePath: docs/ctrl
`

var _ = Describe("rugix-site", func() {
	var (
		base    string
		siteDir string
		dest    string
		out     *bytes.Buffer
	)

	writeFile := func(name, content string) {
		p := filepath.Join(siteDir, name)
		Expect(os.MkdirAll(filepath.Dir(p), os.ModePerm)).To(Succeed())
		Expect(os.WriteFile(p, []byte(content), 0644)).To(Succeed())
	}

	run := func(args ...string) error {
		cmd := app.NewCommand(context.Background())
		cmd.SetArgs(args)
		cmd.SetOut(out)
		cmd.SetErr(out)
		return cmd.Execute()
	}

	BeforeEach(func() {
		base = filepath.Join(os.TempDir(), "rugix-site-"+uuid.New().String())
		siteDir = filepath.Join(base, "website")
		dest = filepath.Join(base, "build")
		out = &bytes.Buffer{}
		writeFile("site.yaml", siteConfig)
		writeFile("docs-ctrl/index.md", "# Rugix Ctrl\n")
	})

	AfterEach(func() {
		Expect(os.Unsetenv(app.EnvPrefix + "_DESTINATION")).To(Succeed())
		Expect(os.RemoveAll(base)).To(Succeed())
	})

	It("builds the site", func() {
		Expect(run("--site-dir", siteDir, "--destination", dest)).To(Succeed())
		Expect(filepath.Join(dest, "index.html")).To(BeAnExistingFile())
		Expect(filepath.Join(dest, "404.html")).To(BeAnExistingFile())
		page, err := os.ReadFile(filepath.Join(dest, "docs", "ctrl", "index.html"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(page)).To(ContainSubstring("Rugix Ctrl"))
		Expect(string(page)).To(ContainSubstring(`<ul class="dropdown__menu">`))
	})

	It("builds the bundled website", func() {
		Expect(run("--site-dir", filepath.Join("..", "..", "website"), "--destination", dest)).To(Succeed())
		for _, f := range []string{
			"index.html",
			"docs/getting-started/index.html",
			"docs/ctrl/index.html",
			"docs/ctrl/next/index.html",
			"docs/ctrl/next/advanced/delta-updates/index.html",
			"docs/ctrl/next/assets/update-flow.svg",
			"docs/bakery/projects/index.html",
			"blog/releases/1.0/index.html",
			"blog/2025/06/01/delta-updates/index.html",
			"blog/tags/rugix-ctrl/index.html",
			"cyber-resilience-act/index.html",
			"img/stories/umbrel-pro.svg",
		} {
			Expect(filepath.Join(dest, filepath.FromSlash(f))).To(BeAnExistingFile())
		}
		page, err := os.ReadFile(filepath.Join(dest, "docs", "ctrl", "index.html"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(page)).To(ContainSubstring(`<a class="dropdown__link" href="/docs/ctrl/next">Next</a>`))
		page, err = os.ReadFile(filepath.Join(dest, "fleet-management", "index.html"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(page)).NotTo(ContainSubstring(`dropdown__menu`))
	})

	It("lists the files of a dry run without writing them", func() {
		Expect(run("--site-dir", siteDir, "--destination", dest, "--dry-run")).To(Succeed())
		Expect(dest).NotTo(BeADirectory())
		Expect(out.String()).To(ContainSubstring("index.html"))
		Expect(out.String()).To(ContainSubstring("files"))
	})

	It("applies the base URL override", func() {
		Expect(run("--site-dir", siteDir, "--destination", dest, "--base-url", "rugix")).To(Succeed())
		page, err := os.ReadFile(filepath.Join(dest, "index.html"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(page)).To(ContainSubstring(`href="/rugix/css/site.css"`))
	})

	It("reads defaults from a configuration file", func() {
		cfg := filepath.Join(siteDir, "rugix-site.yaml")
		writeFile("rugix-site.yaml", "destination: "+dest+"\nsite-dir: "+siteDir+"\n")
		Expect(run("--config", cfg)).To(Succeed())
		Expect(filepath.Join(dest, "index.html")).To(BeAnExistingFile())
	})

	It("reads options from the environment", func() {
		Expect(os.Setenv(app.EnvPrefix+"_DESTINATION", dest)).To(Succeed())
		Expect(run("--site-dir", siteDir)).To(Succeed())
		Expect(filepath.Join(dest, "index.html")).To(BeAnExistingFile())
	})

	It("passes variables to the site configuration", func() {
		writeFile("site.yaml", "title: {{ .Name }}\nurl: https://rugix.org/\n")
		Expect(run("--site-dir", siteDir, "--destination", dest, "--variables", "Name=Rugix Site")).To(Succeed())
		page, err := os.ReadFile(filepath.Join(dest, "index.html"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(page)).To(ContainSubstring("<title>Rugix Site</title>"))
	})

	It("fails without site configuration", func() {
		Expect(os.Remove(filepath.Join(siteDir, "site.yaml"))).To(Succeed())
		Expect(run("--site-dir", siteDir, "--destination", dest)).To(MatchError(ContainSubstring("reading site configuration")))
	})

	It("prints the version", func() {
		Expect(run("version")).To(Succeed())
		Expect(out.String()).To(Equal(version.Version + "\n"))
	})

	It("generates completion scripts", func() {
		Expect(run("completion", "bash")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("rugix-site"))
		Expect(run("completion", "tcsh")).To(HaveOccurred())
	})
})
