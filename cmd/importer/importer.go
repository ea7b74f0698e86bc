/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package importer provides the import command for tokenpipe.
package importer

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenpipe/export"
	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/parser"
	"bennypowers.dev/tokenpipe/token"
)

// Cmd is the import cobra command.
var Cmd = &cobra.Command{
	Use:   "import <stylesheet.css>",
	Short: "Import tokens from CSS custom properties",
	Long: `Read the custom properties of a stylesheet and write them as token records.

Comments such as /* Brand Colors */ set the category of the declarations
that follow them. The first declaration of a variable wins.

Examples:
  # Token records to stdout
  tokenpipe import tokens.css

  # DTCG JSON to a file
  tokenpipe import --dtcg -o tokens.json tokens.css`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().Bool("dtcg", false, "Write DTCG JSON instead of token records")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	dtcg, _ := cmd.Flags().GetBool("dtcg")

	filesystem := fs.NewOSFileSystem()
	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(viper.GetString("root"), path)
	}

	tokens, err := parser.NewCSSParser().ParseFile(filesystem, path)
	if err != nil {
		return err
	}

	data, err := Encode(tokens, dtcg)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := filesystem.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d tokens to %s\n", len(tokens), output)
	return nil
}

// Encode renders imported tokens as an indented JSON array of token
// records, or as DTCG JSON.
func Encode(tokens []*token.Token, dtcg bool) ([]byte, error) {
	if dtcg {
		s, err := export.Generate(export.FormatJSON, tokens, export.Options{PrettyPrint: true})
		return []byte(s), err
	}
	if tokens == nil {
		tokens = []*token.Token{}
	}
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tokens: %w", err)
	}
	return append(data, '\n'), nil
}
