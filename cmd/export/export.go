/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for tokenpipe.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"bennypowers.dev/tokenpipe/cmd/options"
	"bennypowers.dev/tokenpipe/config"
	exportlib "bennypowers.dev/tokenpipe/export"
	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/load"
	"bennypowers.dev/tokenpipe/token"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Generate CSS, DTCG JSON, Tailwind or SCSS from token files",
	Long: `Generate stylesheets and theme files from design tokens.

Output Formats:
  css        CSS custom properties under :root (default)
  json       DTCG JSON (alias: dtcg)
  tailwind   Tailwind theme, 3.x config module or 4.x @theme CSS (alias: tw)
  scss       SCSS variables or a SCSS map (alias: sass)

Examples:
  # CSS to stdout
  tokenpipe export tokens.json

  # Tailwind 4 theme with category comments
  tokenpipe export -f tailwind --tailwind-version 4.x --include-comments -o theme.css tokens/*.json

  # Several outputs at once
  tokenpipe export --outputs css:dist/tokens.css --outputs scss:dist/_tokens.scss tokens.json

  # Use files and outputs from .config/tokenpipe.yaml
  tokenpipe export`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(exportlib.ValidFormats(), ", "))
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringArray("outputs", nil, "Multiple outputs as format:path pairs (repeatable)")
	options.AddExportFlags(Cmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	outputsFlag, _ := cmd.Flags().GetStringArray("outputs")

	var cliOutputs []config.OutputSpec
	for _, spec := range outputsFlag {
		out, err := config.ParseOutputSpec(spec)
		if err != nil {
			return err
		}
		cliOutputs = append(cliOutputs, out)
	}
	if len(cliOutputs) > 0 && (output != "" || formatFlag != "") {
		return fmt.Errorf("--outputs cannot be combined with --output or --format")
	}

	filesystem := fs.NewOSFileSystem()
	result, err := load.Load(cmd.Context(), load.Options{
		Root:  viper.GetString("root"),
		FS:    filesystem,
		Files: args,
	})
	if err != nil {
		return err
	}

	opts, err := options.Resolve(cmd.Flags(), result.Config.Export)
	if err != nil {
		return err
	}

	outputs := cliOutputs
	if len(outputs) == 0 && formatFlag == "" && output == "" {
		outputs = result.Config.Outputs
	}

	if len(outputs) == 0 {
		format := exportlib.FormatCSS
		if formatFlag != "" {
			if format, err = exportlib.ParseFormat(formatFlag); err != nil {
				return err
			}
		}
		content, err := exportlib.Generate(format, result.Tokens, opts)
		if err != nil {
			return err
		}
		if output == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		}
		outputs = []config.OutputSpec{{Format: format, Path: output}}
	}

	written, err := Write(filesystem, result.Root, result.Tokens, outputs, opts)
	for _, path := range written {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	}
	return err
}

// Write generates every output and writes it below root. Failed outputs
// do not stop the others; their errors are combined.
func Write(filesystem fs.FileSystem, root string, tokens []*token.Token, outputs []config.OutputSpec, opts exportlib.Options) ([]string, error) {
	var (
		written []string
		errs    error
	)
	for _, out := range outputs {
		path := out.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		content, err := exportlib.Generate(out.Format, tokens, opts)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", out, err))
			continue
		}
		if err := filesystem.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", out, err))
			continue
		}
		if err := filesystem.WriteFile(path, []byte(content), 0o644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", out, err))
			continue
		}
		logger.Debug("generated %s output with %d tokens", out.Format, len(tokens))
		written = append(written, path)
	}
	return written, errs
}
