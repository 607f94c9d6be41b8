// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options are the flag values after merging the configuration file
// and environment
type options struct {
	SiteDir     string            `mapstructure:"site-dir"`
	SiteConfig  string            `mapstructure:"site-config"`
	Destination string            `mapstructure:"destination"`
	Variables   map[string]string `mapstructure:"variables"`
	BaseURL     string            `mapstructure:"base-url"`
	Workers     int               `mapstructure:"workers"`
	DryRun      bool              `mapstructure:"dry-run"`
	Addr        string            `mapstructure:"addr"`
}
