// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

const (
	genDocsMarkdown genDocsFormat = iota
	genDocsManPages
)

type genDocsCmdFlags struct {
	format string
	output string
}

type genDocsFormat int

func newGenDocsFormat(formatString string) (genDocsFormat, error) {
	switch formatString {
	case "md":
		return genDocsMarkdown, nil
	case "man":
		return genDocsManPages, nil
	}
	return 0, fmt.Errorf("unknown format '%s'. Must be one of %v", formatString, []string{"md", "man"})
}

// NewGenCmdDocs generates the command reference documentation
func NewGenCmdDocs() *cobra.Command {
	flags := &genDocsCmdFlags{}
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := newGenDocsFormat(flags.format)
			if err != nil {
				return err
			}
			output := filepath.Clean(flags.output)
			if err := os.MkdirAll(output, os.ModePerm); err != nil {
				klog.Error(err)
				return err
			}
			c := cmd.Root()
			c.DisableAutoGenTag = true
			if format == genDocsManPages {
				header := &doc.GenManHeader{
					Title:   "RUGIX-SITE",
					Manual:  "Rugix Site Command Reference",
					Section: "1",
				}
				return doc.GenManTree(c, header, output)
			}
			return doc.GenMarkdownTree(c, output)
		},
	}
	command.Flags().StringVarP(&flags.format, "format", "f", "md",
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&flags.output, "output", "o", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("output")
	return command
}
