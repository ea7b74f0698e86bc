/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads token sets from JSON, JSONC, YAML and CSS sources.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/token"
)

// ErrInvalidRoot is returned when a token document's root is neither a token
// array, a {"tokens": [...]} object, nor a DTCG group.
var ErrInvalidRoot = errors.New("invalid token document root")

// Parser parses design token sources.
type Parser interface {
	// Parse parses token data and returns tokens in document order.
	Parse(data []byte) ([]*token.Token, error)

	// ParseFile parses a token file and returns tokens in document order.
	ParseFile(filesystem fs.FileSystem, path string) ([]*token.Token, error)
}

// ForPath returns the parser for a file: CSS for .css files, otherwise the
// JSON/YAML parser.
func ForPath(path string) Parser {
	if strings.EqualFold(filepath.Ext(path), ".css") {
		return NewCSSParser()
	}
	return NewJSONParser()
}

// ParseFiles parses each file with the parser for its extension and returns
// the concatenated tokens. Sort orders are offset so that tokens from later
// files sort after earlier ones within a shared category.
func ParseFiles(filesystem fs.FileSystem, paths []string) ([]*token.Token, error) {
	var all []*token.Token
	offset := 0
	for _, path := range paths {
		tokens, err := ForPath(path).ParseFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		maxOrder := 0
		for _, tok := range tokens {
			tok.SortOrder += offset
			maxOrder = max(maxOrder, tok.SortOrder+1)
		}
		offset = max(offset, maxOrder)
		all = append(all, tokens...)
	}
	return all, nil
}

func readFile(filesystem fs.FileSystem, path string, parse func([]byte) ([]*token.Token, error)) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return tokens, nil
}
