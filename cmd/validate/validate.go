/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenpipe.
package validate

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenpipe/config"
	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/parser"
	"bennypowers.dev/tokenpipe/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long:  `Validate design token files for missing names, duplicates, malformed CSS variables, unreadable colors and unsupported units.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	root, err := filepath.Abs(viper.GetString("root"))
	if err != nil {
		return fmt.Errorf("failed to resolve root path: %w", err)
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.FilePaths()
	}
	files, err := config.ExpandPaths(filesystem, root, patterns)
	if err != nil {
		return fmt.Errorf("error expanding files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	problems := Files(filesystem, files, cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet)
	if problems > 0 {
		return fmt.Errorf("found %d problem(s)", problems)
	}
	return nil
}

// Files validates each file and reports to out (progress) and errOut
// (problems). It returns the number of problems found.
func Files(filesystem fs.FileSystem, files []string, out, errOut io.Writer, quiet bool) int {
	problems := 0
	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		tokens, err := parser.ForPath(file).ParseFile(filesystem, file)
		if err != nil {
			fmt.Fprintln(errOut, errStyle.Render(err.Error()))
			problems++
			continue
		}

		errs := validator.ValidateWithPath(tokens, file)
		for _, e := range errs {
			fmt.Fprintln(errOut, errStyle.Render(e.Error()))
		}
		problems += len(errs)

		if len(errs) == 0 && !quiet {
			fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("  %d tokens OK", len(tokens))))
		}
	}
	return problems
}
