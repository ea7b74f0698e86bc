/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss provides SCSS variable formatting for design tokens.
package scss

import (
	"strings"

	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/shadow"
	"bennypowers.dev/tokenpipe/token"
)

// DefaultMapName names the map emitted in map mode.
const DefaultMapName = "tokens"

// EmptyComment marks a document generated from no tokens.
const EmptyComment = "// No tokens to export"

// Options configures the SCSS formatter.
type Options struct {
	// UseMap emits a single map instead of one variable per token.
	UseMap bool

	// MapName names the map; DefaultMapName when empty.
	MapName string
}

// Formatter outputs SCSS variables with kebab-case names.
type Formatter struct {
	opts Options
}

// New creates a new SCSS formatter.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new SCSS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	opts.MapName = strings.TrimPrefix(strings.TrimSpace(opts.MapName), "$")
	if opts.MapName == "" {
		opts.MapName = DefaultMapName
	}
	return &Formatter{opts: opts}
}

// Format converts tokens to SCSS.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.SCSSComments))

	groups := formatter.Groups(tokens)
	if len(groups) == 0 {
		sb.WriteString(EmptyComment + "\n")
		if f.opts.UseMap {
			sb.WriteString("$" + f.opts.MapName + ": ();\n")
		}
		return []byte(sb.String()), nil
	}

	if f.opts.UseMap {
		f.writeMap(&sb, groups, opts.IncludeComments)
	} else {
		writeVariables(&sb, groups, opts.IncludeComments)
	}
	return []byte(sb.String()), nil
}

func writeVariables(sb *strings.Builder, groups []*token.Group, comments bool) {
	for i, g := range groups {
		if comments {
			if i > 0 {
				sb.WriteString("\n")
			}
			writeSectionComment(sb, "", g.Category)
		}
		for _, tok := range g.Tokens {
			value, ok := formatter.TokenCSSValue(tok)
			if !ok {
				sb.WriteString("// $" + tok.Key() + ": invalid value\n")
				continue
			}
			sb.WriteString("$" + tok.Key() + ": " + value + ";\n")
		}
	}
}

func (f *Formatter) writeMap(sb *strings.Builder, groups []*token.Group, comments bool) {
	sb.WriteString("$" + f.opts.MapName + ": (\n")
	for i, g := range groups {
		if comments {
			if i > 0 {
				sb.WriteString("\n")
			}
			writeSectionComment(sb, "  ", g.Category)
		}
		for _, tok := range g.Tokens {
			value, ok := formatter.TokenCSSValue(tok)
			if !ok {
				sb.WriteString("  // \"" + tok.Key() + "\": invalid value\n")
				continue
			}
			sb.WriteString("  \"" + tok.Key() + "\": " + MapValue(value) + ",\n")
		}
	}
	sb.WriteString(");\n")
}

func writeSectionComment(sb *strings.Builder, indent, category string) {
	if title := formatter.ToTitleCase(category); title != "" {
		sb.WriteString(indent + "// " + title + "\n")
	}
}

// MapValue wraps comma-separated lists in parentheses so they stay a single
// map value.
func MapValue(value string) string {
	if len(shadow.SplitTopLevel(value)) > 1 {
		return "(" + value + ")"
	}
	return value
}
