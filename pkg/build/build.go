// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rugix/rugix-site/pkg/blog"
	"github.com/rugix/rugix-site/pkg/docs"
	"github.com/rugix/rugix-site/pkg/linkcheck"
	"github.com/rugix/rugix-site/pkg/markdown"
	"github.com/rugix/rugix-site/pkg/metrics"
	"github.com/rugix/rugix-site/pkg/render"
	"github.com/rugix/rugix-site/pkg/site"
	"github.com/rugix/rugix-site/pkg/writers"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// NotFoundFile is the page served for unknown routes
const NotFoundFile = "404.html"

// Options configure a build
type Options struct {
	// Workers bounds the number of pages rendered in parallel
	Workers int
}

// Result summarises a finished build
type Result struct {
	Pages       int
	StaticFiles int
	BrokenLinks []linkcheck.Broken
	// BrokenMarkdownLinks are relative markdown links without target
	BrokenMarkdownLinks []linkcheck.Broken
}

// Builder renders a site from the files in fsys
type Builder struct {
	site    *site.Site
	fsys    fs.FS
	writer  writers.Writer
	workers int

	registry *docs.Registry
	blog     *blog.Blog
	pages    []*page
	sources  map[string]string

	mux            sync.Mutex
	brokenMarkdown []linkcheck.Broken
}

// New creates a Builder. fsys is rooted at the site directory.
func New(s *site.Site, fsys fs.FS, w writers.Writer, opts Options) *Builder {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Builder{
		site:    s,
		fsys:    fsys,
		writer:  w,
		workers: workers,
		sources: map[string]string{},
	}
}

// job renders and returns the page served at route
type job struct {
	kind  render.Kind
	route string
	// file overrides the index file name, used for the 404 page
	file   string
	render func() ([]byte, error)
}

// Build loads the content, renders every page with a bounded number of
// workers, copies static files and checks links
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	if err := b.load(); err != nil {
		return nil, err
	}
	r, err := render.New(b.site, b.registry)
	if err != nil {
		return nil, err
	}
	jobs, routes, err := b.jobs(r)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	static, err := b.collectStatic()
	if err != nil {
		return nil, err
	}
	for _, f := range static {
		if owner, ok := routes[f.target]; ok {
			return nil, fmt.Errorf("%s and %s are both served at /%s", owner, f.source, f.target)
		}
		routes[f.target] = f.source
	}
	if err := b.writeStatic(static); err != nil {
		return nil, err
	}
	res.StaticFiles = len(static)

	targets := []string{NotFoundFile}
	for _, f := range static {
		targets = append(targets, f.target)
	}
	for _, j := range jobs {
		targets = append(targets, j.route)
	}
	checker := linkcheck.NewChecker(b.site.BaseURL, targets)

	klog.Infof("rendering %d pages with %d workers", len(jobs), b.workers)
	var written int32
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for _, j := range jobs {
		j := j
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out, err := j.render()
			if err != nil {
				return err
			}
			if j.file != "" {
				err = b.writer.Write(j.file, j.route, out)
			} else {
				err = writers.WritePage(b.writer, j.route, out)
			}
			if err != nil {
				return fmt.Errorf("writing /%s failed: %w", j.route, err)
			}
			atomic.AddInt32(&written, 1)
			metrics.PageRendered(string(j.kind))
			klog.V(6).Infof("rendered /%s", j.route)
			return checker.Check(j.route, out)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Pages = int(written)
	res.BrokenLinks = checker.Broken()
	b.mux.Lock()
	res.BrokenMarkdownLinks = append([]linkcheck.Broken(nil), b.brokenMarkdown...)
	b.mux.Unlock()
	metrics.BuildFinished(time.Since(start), len(res.BrokenLinks))
	if err := linkcheck.Apply(b.site.OnBrokenLinks, "link", res.BrokenLinks); err != nil {
		return res, err
	}
	klog.Infof("built %d pages and %d static files", res.Pages, res.StaticFiles)
	return res, nil
}

// load reads docs collections, the blog and markdown pages
func (b *Builder) load() error {
	var collections []*docs.Collection
	for _, c := range b.site.Docs {
		col, err := docs.Load(b.fsys, c)
		if err != nil {
			return err
		}
		collections = append(collections, col)
		for _, v := range col.Versions {
			for _, d := range v.Docs {
				b.sources[d.Source] = d.Route
			}
		}
	}
	b.registry = docs.NewRegistry(collections...)
	if err := b.checkNavbar(); err != nil {
		return err
	}
	if b.site.Blog != nil {
		bl, err := blog.Load(b.fsys, b.site.Blog)
		if err != nil {
			return err
		}
		b.blog = bl
		for _, p := range bl.Posts {
			b.sources[p.Source] = p.Route
		}
	}
	pages, err := loadPages(b.fsys, b.site.Pages.Path)
	if err != nil {
		return err
	}
	b.pages = pages
	for _, p := range pages {
		b.sources[p.source] = p.route
	}
	return nil
}

// checkNavbar fails when a doc item points to a doc that does not exist
func (b *Builder) checkNavbar() error {
	for _, it := range b.site.Navbar.Items {
		if it.Type != site.NavbarItemDoc {
			continue
		}
		col, ok := b.registry.Collection(it.DocsPluginID)
		if !ok {
			return fmt.Errorf("navbar: unknown docs collection %q", it.DocsPluginID)
		}
		if _, ok := col.Last.Doc(it.DocID); !ok {
			return fmt.Errorf("navbar: doc %q not found in docs collection %q", it.DocID, it.DocsPluginID)
		}
	}
	return nil
}

// jobs returns the page jobs and the files they write keyed by path,
// mapped to the source they are rendered from
func (b *Builder) jobs(r *render.Renderer) ([]*job, map[string]string, error) {
	var jobs []*job
	routes := map[string]string{}
	add := func(owner string, j *job) error {
		key := path.Join(j.route, writers.IndexFile)
		if j.file != "" {
			key = path.Join(j.route, j.file)
		}
		if other, ok := routes[key]; ok {
			return fmt.Errorf("%s and %s are both served at /%s", other, owner, j.route)
		}
		routes[key] = owner
		jobs = append(jobs, j)
		return nil
	}

	if err := add("home", &job{kind: render.KindHome, route: "", render: func() ([]byte, error) {
		return r.Render(render.KindHome, "", "", b.site.Tagline, r.Home())
	}}); err != nil {
		return nil, nil, err
	}
	if err := add("404", &job{kind: render.KindNotFound, route: "", file: NotFoundFile, render: func() ([]byte, error) {
		return r.Render(render.KindNotFound, "404", "Page Not Found", "", r.NotFound())
	}}); err != nil {
		return nil, nil, err
	}

	for _, col := range b.registry.Collections() {
		for _, v := range col.Versions {
			for _, d := range v.Docs {
				v, d := v, d
				if err := add(d.Source, &job{kind: render.KindDoc, route: d.Route, render: func() ([]byte, error) {
					body, err := b.markdown(d.Source, d.Content)
					if err != nil {
						return nil, err
					}
					return r.Render(render.KindDoc, d.Route, d.Title, d.Description, r.Doc(v, d, body))
				}}); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	if bl := b.blog; bl != nil {
		if err := add("blog", &job{kind: render.KindBlogList, route: bl.RouteBasePath, render: func() ([]byte, error) {
			return r.Render(render.KindBlogList, bl.RouteBasePath, bl.Title, bl.Description, r.BlogList(bl, bl.Title, bl.Posts, b.excerpt))
		}}); err != nil {
			return nil, nil, err
		}
		for _, p := range bl.Posts {
			p := p
			if err := add(p.Source, &job{kind: render.KindPost, route: p.Route, render: func() ([]byte, error) {
				body, err := b.markdown(p.Source, p.Content)
				if err != nil {
					return nil, err
				}
				return r.Render(render.KindPost, p.Route, p.Title, p.Description, r.Post(bl, p, body))
			}}); err != nil {
				return nil, nil, err
			}
		}
		if err := add("blog tags", &job{kind: render.KindTags, route: bl.TagsRoute(), render: func() ([]byte, error) {
			return r.Render(render.KindTags, bl.TagsRoute(), "Tags", "", r.Tags(bl))
		}}); err != nil {
			return nil, nil, err
		}
		for _, t := range bl.Tags {
			t := t
			title := fmt.Sprintf("%d posts tagged with %q", len(t.Posts), t.Label)
			if len(t.Posts) == 1 {
				title = fmt.Sprintf("One post tagged with %q", t.Label)
			}
			if err := add("tag "+t.Label, &job{kind: render.KindBlogList, route: t.Route, render: func() ([]byte, error) {
				return r.Render(render.KindBlogList, t.Route, title, "", r.BlogList(bl, title, t.Posts, b.excerpt))
			}}); err != nil {
				return nil, nil, err
			}
		}
	}

	for _, p := range b.pages {
		p := p
		if err := add(p.source, &job{kind: render.KindPage, route: p.route, render: func() ([]byte, error) {
			body, err := b.markdown(p.source, p.content)
			if err != nil {
				return nil, err
			}
			return r.Render(render.KindPage, p.route, p.title, p.description, &render.PageView{Title: p.title, HTML: toHTML(body)})
		}}); err != nil {
			return nil, nil, err
		}
	}
	return jobs, routes, nil
}

// excerpt renders the part of p above the truncate marker. Broken links
// are reported once, by the render of the full post.
func (b *Builder) excerpt(p *blog.Post) ([]byte, bool) {
	src, truncated := p.Excerpt()
	doc, err := markdown.Render(src, b.resolver(p.Source))
	if err != nil {
		klog.Warningf("rendering excerpt of %s failed: %v", p.Source, err)
		return nil, truncated
	}
	return doc.HTML, truncated
}

// staticFile is a file copied verbatim into the site
type staticFile struct {
	fsys fs.FS
	// source names the file in error messages
	source string
	path   string
	target string
}

// collectStatic lists the embedded assets, the files of the site's static
// directory and the files next to docs, which are served below their
// version route
func (b *Builder) collectStatic() ([]staticFile, error) {
	var files []staticFile
	collect := func(fsys fs.FS, origin, root, dest string) error {
		return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || isMarkdown(p) {
				return nil
			}
			rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
			if root == "." {
				rel = p
			}
			files = append(files, staticFile{
				fsys:   fsys,
				source: path.Join(origin, p),
				path:   p,
				target: path.Join(dest, rel),
			})
			return nil
		})
	}
	if err := collect(render.Assets(), "assets", ".", ""); err != nil {
		return nil, err
	}
	if _, err := fs.Stat(b.fsys, b.site.StaticDir); err == nil {
		if err := collect(b.fsys, "", b.site.StaticDir, ""); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	for _, col := range b.registry.Collections() {
		for _, v := range col.Versions {
			if err := collect(b.fsys, "", v.ContentDir, v.Path); err != nil {
				return nil, err
			}
		}
	}
	return files, nil
}

func (b *Builder) writeStatic(files []staticFile) error {
	for _, f := range files {
		data, err := fs.ReadFile(f.fsys, f.path)
		if err != nil {
			return err
		}
		if err := b.writer.Write(path.Base(f.target), path.Dir(f.target), data); err != nil {
			return fmt.Errorf("writing %s failed: %w", f.target, err)
		}
	}
	return nil
}
