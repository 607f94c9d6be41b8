// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"strings"
	"sync"

	"github.com/rugix/rugix-site/cmd/gendocs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes the environment variables overriding flags,
// e.g. RUGIX_SITE_DESTINATION
const EnvPrefix = "RUGIX_SITE"

var (
	vip          *viper.Viper
	klogInitOnce sync.Once
)

// NewCommand creates the root command. Running it builds the site.
func NewCommand(ctx context.Context) *cobra.Command {
	vip = viper.New()
	cmd := &cobra.Command{
		Use:   "rugix-site",
		Short: "Build the Rugix website",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfigFile(vip)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o, err := newOptions(vip)
			if err != nil {
				return err
			}
			_, err = execBuild(ctx, o, cmd.OutOrStdout())
			return err
		},
	}
	configurePersistentFlags(cmd)
	configureBuildFlags(cmd)

	cmd.AddCommand(newServeCmd(ctx))
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klogInitOnce.Do(func() {
		klog.InitFlags(nil)
	})
	AddFlags(cmd)

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	return cmd
}

func newServeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o, err := newOptions(vip)
			if err != nil {
				return err
			}
			return execServe(ctx, o)
		},
	}
	configureServeFlags(cmd)
	return cmd
}

// readConfigFile merges the file given with --config into vip
func readConfigFile(vip *viper.Viper) error {
	cfgFile := vip.GetString("config")
	if cfgFile == "" {
		return nil
	}
	path, err := expandPath(cfgFile)
	if err != nil {
		return err
	}
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		return err
	}
	klog.V(4).Infof("using configuration file %s", vip.ConfigFileUsed())
	return nil
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
