// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"runtime"

	"github.com/spf13/cobra"
)

func configurePersistentFlags(command *cobra.Command) {
	command.PersistentFlags().String("config", "",
		"Configuration file with default values for the flags.")
	_ = vip.BindPFlag("config", command.PersistentFlags().Lookup("config"))

	command.PersistentFlags().StringP("site-dir", "s", ".",
		"Directory holding the site content and configuration.")
	_ = vip.BindPFlag("site-dir", command.PersistentFlags().Lookup("site-dir"))

	command.PersistentFlags().StringP("site-config", "c", "site.yaml",
		"Site configuration file, relative to the site directory.")
	_ = vip.BindPFlag("site-config", command.PersistentFlags().Lookup("site-config"))

	command.PersistentFlags().StringP("destination", "d", "build",
		"Directory the built site is written to.")
	_ = vip.BindPFlag("destination", command.PersistentFlags().Lookup("destination"))

	command.PersistentFlags().StringToString("variables", map[string]string{},
		"Variables applied to the site configuration, which is a Go template.")
	_ = vip.BindPFlag("variables", command.PersistentFlags().Lookup("variables"))

	command.PersistentFlags().String("base-url", "",
		"Overrides the base URL of the site configuration.")
	_ = vip.BindPFlag("base-url", command.PersistentFlags().Lookup("base-url"))

	command.PersistentFlags().Int("workers", runtime.NumCPU(),
		"Number of pages rendered in parallel.")
	_ = vip.BindPFlag("workers", command.PersistentFlags().Lookup("workers"))
}

func configureBuildFlags(command *cobra.Command) {
	command.Flags().Bool("dry-run", false,
		"Renders the site but prints the file hierarchy instead of writing files.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))
}

func configureServeFlags(command *cobra.Command) {
	command.Flags().String("addr", "localhost:3000",
		"Address the site is served on.")
	_ = vip.BindPFlag("addr", command.Flags().Lookup("addr"))
}
