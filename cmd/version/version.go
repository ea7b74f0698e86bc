/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version implements the version command.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenpipe/internal/version"
)

// Cmd prints the tokenpipe version and, with --format json, its build info.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		return Print(cmd.OutOrStdout(), format)
	},
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// Print writes build info to w as a one-line summary or as JSON.
func Print(w io.Writer, format string) error {
	info := version.Info()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("failed to encode version info: %w", err)
		}
		return nil
	case "text":
		line := "tokenpipe " + version.Get()
		if info.GoVersion != "" {
			line += " (" + info.GoVersion + ")"
		}
		_, err := fmt.Fprintln(w, line)
		return err
	default:
		return fmt.Errorf("unknown version format %q", format)
	}
}
