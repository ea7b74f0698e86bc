/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenpipe.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenpipe/cmd/export"
	"bennypowers.dev/tokenpipe/cmd/importer"
	"bennypowers.dev/tokenpipe/cmd/list"
	"bennypowers.dev/tokenpipe/cmd/mcpserver"
	"bennypowers.dev/tokenpipe/cmd/options"
	"bennypowers.dev/tokenpipe/cmd/validate"
	"bennypowers.dev/tokenpipe/cmd/value"
	"bennypowers.dev/tokenpipe/cmd/version"
	"bennypowers.dev/tokenpipe/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenpipe",
	Short: "Normalize design tokens and export them as CSS, DTCG JSON, Tailwind or SCSS",
	Long: `tokenpipe reads design tokens from JSON, YAML or CSS files, normalizes
their colors, dimensions and shadows, and generates stylesheets and theme files.

Project settings live in .config/tokenpipe.yaml. Flags take precedence over
TOKENPIPE_* environment variables, which take precedence over the config file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().String("root", ".", "Project directory containing .config/tokenpipe.yaml")

	viper.SetEnvPrefix(options.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))

	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(importer.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(mcpserver.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(value.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
