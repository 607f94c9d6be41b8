// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rugix/rugix-site/pkg/build"
	"github.com/rugix/rugix-site/pkg/metrics"
	"github.com/rugix/rugix-site/pkg/server"
	"github.com/rugix/rugix-site/pkg/site"
	"github.com/rugix/rugix-site/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// newOptions reads the options from vip and resolves their paths
func newOptions(vip *viper.Viper) (*options, error) {
	o := &options{}
	if err := vip.Unmarshal(o); err != nil {
		return nil, err
	}
	var err error
	if o.SiteDir, err = expandPath(o.SiteDir); err != nil {
		return nil, err
	}
	if o.Destination, err = expandPath(o.Destination); err != nil {
		return nil, err
	}
	if o.SiteConfig, err = expandPath(o.SiteConfig); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(o.SiteConfig) {
		o.SiteConfig = filepath.Join(o.SiteDir, o.SiteConfig)
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o, nil
}

func expandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expanding %s failed: %w", p, err)
	}
	return filepath.Clean(expanded), nil
}

func loadSite(o *options) (*site.Site, error) {
	s, err := site.Load(o.SiteConfig, o.Variables)
	if err != nil {
		return nil, err
	}
	if o.BaseURL != "" {
		s.BaseURL = "/"
		if base := strings.Trim(o.BaseURL, "/"); base != "" {
			s.BaseURL = "/" + base + "/"
		}
	}
	return s, nil
}

// execBuild builds the site into o.Destination. With o.DryRun the
// written files are listed on out instead.
func execBuild(ctx context.Context, o *options, out io.Writer) (*build.Result, error) {
	s, err := loadSite(o)
	if err != nil {
		return nil, err
	}
	return buildSite(ctx, o, s, out)
}

func buildSite(ctx context.Context, o *options, s *site.Site, out io.Writer) (*build.Result, error) {
	klog.Infof("Site: %s", o.SiteDir)
	klog.Infof("Output dir: %s", o.Destination)
	var (
		w   writers.Writer
		dry writers.DryRunWriter
	)
	if o.DryRun {
		dry = writers.NewDryRunWritersFactory(out)
		w = dry.GetWriter(o.Destination)
	} else {
		w = &writers.FSWriter{Root: o.Destination}
	}
	res, err := build.New(s, os.DirFS(o.SiteDir), w, build.Options{Workers: o.Workers}).Build(ctx)
	if dry != nil && res != nil {
		dry.Flush()
	}
	return res, err
}

// execServe builds the site and serves the result until ctx is done
func execServe(ctx context.Context, o *options) error {
	s, err := loadSite(o)
	if err != nil {
		return err
	}
	o.DryRun = false
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(reg)
	if _, err := buildSite(ctx, o, s, io.Discard); err != nil {
		return err
	}
	srv := server.New(server.Config{
		Addr:    o.Addr,
		BaseURL: s.BaseURL,
		Root:    os.DirFS(o.Destination),
		Metrics: reg,
	})
	return server.Serve(ctx, srv)
}
