/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"strings"

	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/token"
)

// EmptyComment marks a document generated from no tokens.
const EmptyComment = "/* No tokens to export */"

// Options configures the CSS formatter.
type Options struct {
	// Minify strips comments and whitespace: ":root{--a:b;--c:d}".
	Minify bool

	// ScopeClass, when set, adds a ".<ScopeClass>" rule carrying the same
	// declarations as :root.
	ScopeClass string
}

// Formatter outputs CSS custom properties.
type Formatter struct {
	opts Options
}

// New creates a new CSS formatter with default options.
func New() *Formatter {
	return &Formatter{}
}

// NewWithOptions creates a new CSS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	opts.ScopeClass = strings.TrimPrefix(strings.TrimSpace(opts.ScopeClass), ".")
	return &Formatter{opts: opts}
}

type declaration struct {
	name  string
	value string
	ok    bool
}

type section struct {
	title        string
	declarations []declaration
}

// Format converts tokens to a CSS document.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	sections := buildSections(tokens)
	selectors := []string{":root"}
	if f.opts.ScopeClass != "" {
		selectors = append(selectors, "."+f.opts.ScopeClass)
	}

	if f.opts.Minify {
		return []byte(minified(sections, selectors)), nil
	}

	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))
	if len(sections) == 0 {
		sb.WriteString(EmptyComment + "\n")
	}
	for i, sel := range selectors {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeRule(&sb, sel, sections, opts.IncludeComments)
	}
	return []byte(sb.String()), nil
}

func buildSections(tokens []*token.Token) []section {
	groups := formatter.Groups(tokens)
	sections := make([]section, 0, len(groups))
	for _, g := range groups {
		s := section{title: formatter.ToTitleCase(g.Category)}
		for _, tok := range g.Tokens {
			value, ok := formatter.TokenCSSValue(tok)
			if !ok {
				value = formatter.Placeholder(tok)
			}
			s.declarations = append(s.declarations, declaration{
				name:  tok.CSSVariableName(),
				value: value,
				ok:    ok,
			})
		}
		sections = append(sections, s)
	}
	return sections
}

func writeRule(sb *strings.Builder, selector string, sections []section, comments bool) {
	sb.WriteString(selector + " {\n")
	for i, s := range sections {
		if comments {
			if i > 0 {
				sb.WriteString("\n")
			}
			if s.title != "" {
				sb.WriteString("  /* " + s.title + " */\n")
			}
		}
		for _, d := range s.declarations {
			if !d.ok {
				sb.WriteString("  /* " + d.value + " */\n")
				continue
			}
			sb.WriteString("  " + d.name + ": " + d.value + ";\n")
		}
	}
	sb.WriteString("}\n")
}

func minified(sections []section, selectors []string) string {
	var decls []string
	for _, s := range sections {
		for _, d := range s.declarations {
			if d.ok {
				decls = append(decls, d.name+":"+strings.Join(strings.Fields(d.value), " "))
			}
		}
	}
	body := strings.Join(decls, ";")
	var sb strings.Builder
	if len(sections) == 0 {
		sb.WriteString(EmptyComment)
	}
	for _, sel := range selectors {
		sb.WriteString(sel + "{" + body + "}")
	}
	return sb.String()
}
