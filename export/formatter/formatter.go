/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for export formatters.
package formatter

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenpipe/token"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts tokens to the target format.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures behavior shared by every formatter.
type Options struct {
	// IncludeComments adds per-category section comments.
	IncludeComments bool

	// Header is written at the top of the output as a comment,
	// in the comment style of the format.
	Header string
}

// CommentStyle specifies the comment syntax of an output format.
type CommentStyle int

const (
	// CStyleComments uses /* */ block comments (CSS, JavaScript).
	CStyleComments CommentStyle = iota
	// SCSSComments uses // line comments.
	SCSSComments
)

// FormatHeader renders header as a comment block followed by a blank line.
// An empty header renders as "".
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if strings.TrimSpace(header) == "" {
		return ""
	}
	lines := strings.Split(header, "\n")

	var sb strings.Builder
	switch style {
	case SCSSComments:
		for _, line := range lines {
			sb.WriteString(strings.TrimRight("// "+line, " "))
			sb.WriteString("\n")
		}
	default:
		if len(lines) == 1 {
			sb.WriteString("/* " + lines[0] + " */\n")
			break
		}
		sb.WriteString("/*\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(" * "+line, " "))
			sb.WriteString("\n")
		}
		sb.WriteString(" */\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Groups returns the tokens that carry a CSS variable name, grouped by
// category in order of first appearance and ordered by SortOrder within
// each group. The input slice is not modified.
func Groups(tokens []*token.Token) []*token.Group {
	named := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok != nil && tok.CSSVariableName() != "" {
			named = append(named, tok)
		}
	}
	return token.GroupByCategory(named)
}

// Ordered returns Groups flattened into a single slice.
func Ordered(tokens []*token.Token) []*token.Token {
	var out []*token.Token
	for _, g := range Groups(tokens) {
		out = append(out, g.Tokens...)
	}
	return out
}

// StripCategoryPrefix removes a leading "<category>-" from name, so that a
// token "color-primary" in category "color" becomes "primary".
func StripCategoryPrefix(name, category string) string {
	n := ToKebabCase(name)
	c := ToKebabCase(category)
	if c != "" && strings.HasPrefix(n, c+"-") && len(n) > len(c)+1 {
		return n[len(c)+1:]
	}
	return n
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

var titleCaser = cases.Title(language.Und)

// ToTitleCase converts a string to Title Case: "border-radius" becomes
// "Border Radius".
func ToTitleCase(s string) string {
	return titleCaser.String(strings.Join(SplitIntoWords(s), " "))
}

// SplitIntoWords splits a string on hyphens, underscores, dots, spaces and
// camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '-' || r == '_' || r == '.' || r == ' ' || r == '/' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		} else if unicode.IsUpper(r) && i > 0 {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		} else {
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
