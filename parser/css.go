/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/token"
)

// CSSParser imports tokens from custom property declarations in a
// stylesheet, typically one previously written by the CSS exporter.
//
// A comment such as /* Brand Colors */ sets the category of the
// declarations after it. Without one, the category is the first segment
// of the variable name.
type CSSParser struct{}

// NewCSSParser creates a new stylesheet token parser.
func NewCSSParser() *CSSParser {
	return &CSSParser{}
}

// ParseFile parses a stylesheet from the filesystem.
func (p *CSSParser) ParseFile(filesystem fs.FileSystem, path string) ([]*token.Token, error) {
	return readFile(filesystem, path, p.Parse)
}

// Parse parses stylesheet data.
func (p *CSSParser) Parse(data []byte) ([]*token.Token, error) {
	l := css.NewLexer(parse.NewInputBytes(data))

	var (
		result   []*token.Token
		seen     = map[string]struct{}{}
		category string
	)

	for {
		tt, text := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to parse CSS: %w", err)
			}
			return result, nil

		case css.CommentToken:
			if c, ok := commentCategory(string(text)); ok {
				category = c
			}

		case css.CustomPropertyNameToken, css.IdentToken:
			name := string(text)
			if !strings.HasPrefix(name, "--") || !skipTo(l, css.ColonToken) {
				continue
			}
			value, ok := readValue(l)
			if !ok || value == "" {
				continue
			}
			// The first declaration wins; later ones are usually scoped
			// theme overrides of the same variable.
			if _, ok := seen[name]; ok {
				logger.Debug("skipping redeclared %s", name)
				continue
			}
			seen[name] = struct{}{}
			result = append(result, declaration(name, value, category, len(result)))
		}
	}
}

func commentCategory(comment string) (string, bool) {
	text := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(comment, "/*"), "*/"))
	if text == "" || strings.Contains(text, ":") {
		return "", false
	}
	c := slug.Make(text)
	return c, c != ""
}

// skipTo advances past whitespace and comments to the wanted token.
func skipTo(l *css.Lexer, want css.TokenType) bool {
	for {
		tt, _ := l.Next()
		switch tt {
		case want:
			return true
		case css.WhitespaceToken, css.CommentToken:
			continue
		default:
			return false
		}
	}
}

// readValue collects a declaration value up to the terminating ';' or '}'
// outside of any parentheses.
func readValue(l *css.Lexer) (string, bool) {
	var b strings.Builder
	depth := 0
	for {
		tt, text := l.Next()
		switch tt {
		case css.ErrorToken:
			return collapse(b.String()), true
		case css.CommentToken:
			continue
		case css.SemicolonToken, css.RightBraceToken:
			if depth == 0 {
				return collapse(b.String()), true
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth = max(depth-1, 0)
		case css.LeftBraceToken:
			return "", false
		}
		b.Write(text)
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func scalar(value string) any {
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func declaration(variable, value, category string, order int) *token.Token {
	bare := strings.TrimPrefix(variable, "--")
	name := bare
	if category == "" {
		category, name, _ = strings.Cut(bare, "-")
		if name == "" {
			name = category
		}
	} else if rest, ok := strings.CutPrefix(bare, category+"-"); ok && rest != "" {
		name = rest
	}
	return &token.Token{
		Category:    category,
		Name:        name,
		Value:       scalar(value),
		CSSVariable: variable,
		SortOrder:   order,
	}
}
