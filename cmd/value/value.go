/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value provides the value command, which shows how tokenpipe
// reads and rewrites a single color, dimension or shadow value.
package value

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/tokenpipe/color"
	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/normalize"
	"bennypowers.dev/tokenpipe/shadow"
)

// Cmd is the value cobra command.
var Cmd = &cobra.Command{
	Use:   "value",
	Short: "Inspect how a single token value is read",
	Long: `Parse a color, dimension or shadow the way the exporters do and print
its normalized forms. Values may be CSS text or JSON objects.

Examples:
  tokenpipe value color "rgba(59, 130, 246, 0.5)"
  tokenpipe value dimension '{"value": 1.5, "unit": "rem"}'
  tokenpipe value dimension --min 0 --max 8 12px
  tokenpipe value shadow "inset 0 1px 2px #0003, 0 4px 8px black"`,
}

var colorCmd = &cobra.Command{
	Use:   "color <value>",
	Short: "Show a color as hex, rgb() and hsl()",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := Color(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

var dimensionCmd = &cobra.Command{
	Use:   "dimension <value>",
	Short: "Show a dimension with its unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, _ := cmd.Flags().GetString("unit")
		var lo, hi *float64
		if cmd.Flags().Changed("min") {
			v, _ := cmd.Flags().GetFloat64("min")
			lo = &v
		}
		if cmd.Flags().Changed("max") {
			v, _ := cmd.Flags().GetFloat64("max")
			hi = &v
		}
		out, err := Dimension(args[0], unit, lo, hi)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

var shadowCmd = &cobra.Command{
	Use:   "shadow <value>",
	Short: "Show each layer of a box-shadow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := Shadow(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	dimensionCmd.Flags().String("unit", dimension.DefaultUnit, "Unit for values that carry none")
	dimensionCmd.Flags().Float64("min", 0, "Lower bound for the numeric value")
	dimensionCmd.Flags().Float64("max", 0, "Upper bound for the numeric value")

	Cmd.AddCommand(colorCmd)
	Cmd.AddCommand(dimensionCmd)
	Cmd.AddCommand(shadowCmd)
}

// decode reads input as JSON (comments allowed) when it looks like an
// object or array, and as a CSS string otherwise.
func decode(input string) (any, error) {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, "{") && !strings.HasPrefix(s, "[") {
		return s, nil
	}
	var v any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(s)), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON value: %w", err)
	}
	return v, nil
}

var labelStyle = lipgloss.NewStyle().Faint(true).Width(8)

func line(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteByte('\n')
}

// Color renders the hex, rgb and hsl forms of a color value.
func Color(input string) (string, error) {
	raw, err := decode(input)
	if err != nil {
		return "", err
	}

	alpha := 1.0
	if s, ok := raw.(string); ok {
		_, a, err := color.Parse(s)
		if err != nil {
			return "", err
		}
		alpha = a
	}
	hex := normalize.ExtractColorValue(raw)

	var b strings.Builder
	line(&b, "swatch", lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    "))
	line(&b, "hex", hex)
	line(&b, "rgb", color.FormatRGB(color.HexToRGB(hex), alpha))
	line(&b, "hsl", color.FormatHSL(color.HexToHSL(hex)))
	if alpha < color.AlphaThreshold {
		line(&b, "alpha", fmt.Sprintf("%g", alpha))
	}
	return b.String(), nil
}

// Dimension renders a dimension value after applying the default unit and
// optional bounds.
func Dimension(input, defaultUnit string, lo, hi *float64) (string, error) {
	raw, err := decode(input)
	if err != nil {
		return "", err
	}
	d := normalize.ExtractDimensionValue(raw, defaultUnit)
	if lo != nil || hi != nil {
		d.Value = dimension.ClampValue(d.Value, lo, hi)
	}

	var b strings.Builder
	line(&b, "css", d.String())
	line(&b, "value", fmt.Sprintf("%g", d.Value))
	line(&b, "unit", d.Unit)
	return b.String(), nil
}

// Shadow renders each layer of a shadow value and the combined CSS.
func Shadow(input string) (string, error) {
	raw, err := decode(input)
	if err != nil {
		return "", err
	}
	layers := normalize.ExtractShadowList(raw)

	var b strings.Builder
	for i, s := range layers {
		line(&b, fmt.Sprintf("layer %d", i+1), shadow.Serialize(s))
	}
	line(&b, "css", shadow.SerializeList(layers))
	return b.String(), nil
}
