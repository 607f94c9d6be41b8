// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rugix/rugix-site/pkg/metrics"
	"github.com/rugix/rugix-site/pkg/util/urls"
	"github.com/rugix/rugix-site/pkg/writers"
	"k8s.io/klog/v2"
)

// NotFoundFile is served with status 404 for unknown paths
const NotFoundFile = "404.html"

// ShutdownTimeout bounds the graceful shutdown of Serve
var ShutdownTimeout = 5 * time.Second

// Config holds the options of the preview server
type Config struct {
	Addr string
	// BaseURL is the path prefix the site is served under
	BaseURL string
	// Root holds the built site
	Root fs.FS
	// Metrics exposes the gathered metrics at /metrics when set
	Metrics prometheus.Gatherer
}

// New creates the preview server for a built site
func New(cfg Config) *http.Server {
	base := "/" + strings.Trim(cfg.BaseURL, "/")
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(requestLogger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		router.Handle("/metrics", metrics.Handler(cfg.Metrics))
	}
	site := metrics.InstrumentHandler(&siteHandler{root: cfg.Root, base: base})
	if base != "/" {
		router.Get("/", http.RedirectHandler(base+"/", http.StatusFound).ServeHTTP)
		router.Handle(base, site)
		router.Handle(base+"/*", site)
	} else {
		router.Handle("/*", site)
	}

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Serve runs srv until ctx is done and shuts it down gracefully
func Serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		klog.Infof("serving site on http://%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		klog.V(4).Infof("%s %s %d %dB %s [%s]", r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), chimw.GetReqID(r.Context()))
	})
}

// siteHandler serves pages from their index files and falls back to
// the 404 page
type siteHandler struct {
	root fs.FS
	base string
}

func (h *siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, h.base)
	name, ok := h.resolve(urls.Clean(rel))
	if !ok {
		h.notFound(w, r)
		return
	}
	data, err := fs.ReadFile(h.root, name)
	if err != nil {
		klog.Errorf("reading %s failed: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, path.Base(name), time.Time{}, bytes.NewReader(data))
}

// resolve maps a route onto a file, directories onto their index file
func (h *siteHandler) resolve(route string) (string, bool) {
	candidates := []string{path.Join(route, writers.IndexFile)}
	if route != "" {
		candidates = []string{route, path.Join(route, writers.IndexFile), route + ".html"}
	}
	for _, c := range candidates {
		if !fs.ValidPath(c) {
			return "", false
		}
		if info, err := fs.Stat(h.root, c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}

func (h *siteHandler) notFound(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.root, NotFoundFile)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(data)
}
