/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export serializes token sets to CSS, DTCG JSON, Tailwind and SCSS.
//
// Generators are pure functions of their inputs. They never modify the
// token slice and never fail on bad values: a value that cannot be rendered
// is written as JSON text or replaced by a comment, and generation
// continues. The only error is an unknown format id.
package export

import (
	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/export/formatter/css"
	"bennypowers.dev/tokenpipe/export/formatter/dtcg"
	"bennypowers.dev/tokenpipe/export/formatter/scss"
	"bennypowers.dev/tokenpipe/export/formatter/tailwind"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/token"
)

// Options configures every generator. Each generator reads only the fields
// that apply to it.
type Options struct {
	// Minify strips whitespace and comments from CSS output.
	Minify bool `json:"minify,omitempty" yaml:"minify,omitempty" mapstructure:"minify"`

	// IncludeComments adds a comment before each category.
	IncludeComments bool `json:"includeComments,omitempty" yaml:"includeComments,omitempty" mapstructure:"include-comments"`

	// ScopeClass adds a .<ScopeClass> rule duplicating the :root declarations.
	ScopeClass string `json:"scopeClass,omitempty" yaml:"scopeClass,omitempty" mapstructure:"scope-class"`

	// PrettyPrint indents JSON output by two spaces.
	PrettyPrint bool `json:"prettyPrint,omitempty" yaml:"prettyPrint,omitempty" mapstructure:"pretty-print"`

	// IncludeFigmaMetadata adds Figma variable IDs to JSON $extensions.
	IncludeFigmaMetadata bool `json:"includeFigmaMetadata,omitempty" yaml:"includeFigmaMetadata,omitempty" mapstructure:"include-figma-metadata"`

	// TailwindVersion is "3.x" (default) or "4.x".
	TailwindVersion string `json:"tailwindVersion,omitempty" yaml:"tailwindVersion,omitempty" mapstructure:"tailwind-version"`

	// UseMap emits SCSS as a single map.
	UseMap bool `json:"useMap,omitempty" yaml:"useMap,omitempty" mapstructure:"use-map"`

	// MapName names the SCSS map ("tokens" by default).
	MapName string `json:"mapName,omitempty" yaml:"mapName,omitempty" mapstructure:"map-name"`

	// Header is written at the top of the output as a comment (as the root
	// $description in JSON).
	Header string `json:"header,omitempty" yaml:"header,omitempty" mapstructure:"header"`
}

func (o Options) formatterOptions() formatter.Options {
	return formatter.Options{
		IncludeComments: o.IncludeComments,
		Header:          o.Header,
	}
}

func tailwindFormatter(opts Options) *tailwind.Formatter {
	return tailwind.NewWithOptions(tailwind.Options{Version: tailwind.Version(opts.TailwindVersion)})
}

// Formatter returns the formatter for format configured by opts.
func Formatter(format Format, opts Options) (formatter.Formatter, error) {
	switch format {
	case FormatCSS:
		return css.NewWithOptions(css.Options{Minify: opts.Minify, ScopeClass: opts.ScopeClass}), nil
	case FormatJSON:
		return dtcg.NewWithOptions(dtcg.Options{
			PrettyPrint:          opts.PrettyPrint,
			IncludeFigmaMetadata: opts.IncludeFigmaMetadata,
		}), nil
	case FormatTailwind:
		return tailwindFormatter(opts), nil
	case FormatSCSS:
		return scss.NewWithOptions(scss.Options{UseMap: opts.UseMap, MapName: opts.MapName}), nil
	default:
		_, err := ParseFormat(string(format))
		return nil, err
	}
}

// Generate renders tokens in format.
func Generate(format Format, tokens []*token.Token, opts Options) (string, error) {
	f, err := Formatter(format, opts)
	if err != nil {
		return "", err
	}
	out, err := f.Format(tokens, opts.formatterOptions())
	if err != nil {
		// Formatters only fail on internal errors (templates, encoders).
		logger.Warn("%s export failed: %v", format, err)
		return "", err
	}
	return string(out), nil
}

// GenerateExport dispatches on a format id: "css", "json", "tailwind" or
// "scss" (aliases "dtcg", "tw" and "sass" are accepted). It returns an error
// wrapping ErrUnknownFormat for any other id.
func GenerateExport(format string, tokens []*token.Token, opts Options) (string, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	return Generate(f, tokens, opts)
}

// GenerateCSS renders tokens as CSS custom properties.
func GenerateCSS(tokens []*token.Token, opts Options) string {
	return generateString(FormatCSS, tokens, opts)
}

// GenerateJSON renders tokens as DTCG JSON.
func GenerateJSON(tokens []*token.Token, opts Options) string {
	return generateString(FormatJSON, tokens, opts)
}

// GenerateTailwind renders tokens as a Tailwind theme.
func GenerateTailwind(tokens []*token.Token, opts Options) string {
	return generateString(FormatTailwind, tokens, opts)
}

// GenerateSCSS renders tokens as SCSS variables.
func GenerateSCSS(tokens []*token.Token, opts Options) string {
	return generateString(FormatSCSS, tokens, opts)
}

func generateString(format Format, tokens []*token.Token, opts Options) string {
	out, err := Generate(format, tokens, opts)
	if err != nil {
		return ""
	}
	return out
}
