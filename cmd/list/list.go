/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenpipe.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/load"
	"bennypowers.dev/tokenpipe/normalize"
	"bennypowers.dev/tokenpipe/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens from design token files",
	Long:  `List all tokens with their inferred type and CSS value. Color tokens show a swatch.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type ("+strings.Join(typeNames(), ", ")+")")
	Cmd.Flags().String("category", "", "Filter by category")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func typeNames() []string {
	var names []string
	for _, t := range token.Types() {
		names = append(names, string(t))
	}
	return names
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	format, _ := cmd.Flags().GetString("format")

	if typeFilter != "" {
		if _, ok := token.ParseType(typeFilter); !ok {
			return fmt.Errorf("unknown token type %q", typeFilter)
		}
	}

	result, err := load.Load(cmd.Context(), load.Options{
		Root:  viper.GetString("root"),
		FS:    fs.NewOSFileSystem(),
		Files: args,
	})
	if err != nil {
		return err
	}

	rows := Rows(filterTokens(result.Tokens, token.Type(typeFilter), category))

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), rows)
	case "table":
		return outputTable(cmd.OutOrStdout(), rows)
	default:
		return fmt.Errorf("unknown list format %q", format)
	}
}

func filterTokens(tokens []*token.Token, typ token.Type, category string) []*token.Token {
	filtered := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if typ != "" && tok.Type() != typ {
			continue
		}
		if category != "" && !strings.EqualFold(tok.Category, category) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// Row is one listed token.
type Row struct {
	Variable    string     `json:"cssVariable"`
	Type        token.Type `json:"type"`
	Value       string     `json:"value"`
	Hex         string     `json:"hex,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Rows renders tokens in natural order of their CSS variable names, so
// that "spacing-2" lists before "spacing-10".
func Rows(tokens []*token.Token) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		variable := tok.CSSVariableName()
		if variable == "" {
			continue
		}
		value, ok := formatter.TokenCSSValue(tok)
		if !ok {
			value = "invalid value"
		}
		row := Row{
			Variable:    variable,
			Type:        tok.Type(),
			Value:       value,
			Description: tok.Description,
		}
		if row.Type == token.TypeColor {
			row.Hex = normalize.ExtractColorValue(tok.Value)
		}
		rows = append(rows, row)
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		switch {
		case natural.Less(a.Variable, b.Variable):
			return -1
		case natural.Less(b.Variable, a.Variable):
			return 1
		}
		return 0
	})
	return rows
}

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	typeStyle = lipgloss.NewStyle().Faint(true)
)

// Swatch renders a two-cell block in the given color.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func outputTable(w io.Writer, rows []Row) error {
	nameWidth := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(r.Variable))
	}
	for _, r := range rows {
		swatch := "  "
		if r.Hex != "" {
			swatch = Swatch(r.Hex)
		}
		name := nameStyle.Width(nameWidth).Render(r.Variable)
		typ := typeStyle.Width(10).Render(string(r.Type))
		if _, err := fmt.Fprintf(w, "%s %s  %s %s\n", swatch, name, typ, r.Value); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
