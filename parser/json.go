/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/internal/num"
	"bennypowers.dev/tokenpipe/token"
)

// FigmaExtension is the $extensions key carrying Figma metadata.
const FigmaExtension = "com.figma"

// JSONParser parses token documents written in JSON, JSONC or YAML.
//
// Three document shapes are accepted:
//   - an array of token records
//   - an object whose "tokens" member is an array of token records
//   - a DTCG group tree, where any object carrying $value is a token
type JSONParser struct{}

// NewJSONParser creates a new JSON/YAML token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ParseFile parses a token file from the filesystem.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string) ([]*token.Token, error) {
	return readFile(filesystem, path, p.Parse)
}

// Parse parses token data.
func (p *JSONParser) Parse(data []byte) ([]*token.Token, error) {
	root, err := decode(data)
	if err != nil {
		return nil, err
	}

	switch r := root.(type) {
	case []any:
		return records(r)
	case *object:
		if list, ok := r.get("tokens"); ok {
			if arr, ok := list.([]any); ok {
				return records(arr)
			}
		}
		var result []*token.Token
		extractTokens(r, nil, &result)
		return result, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidRoot, root)
	}
}

func records(items []any) ([]*token.Token, error) {
	result := make([]*token.Token, 0, len(items))
	for i, item := range items {
		obj, ok := item.(*object)
		if !ok {
			return nil, fmt.Errorf("token %d: expected an object, got %T", i, item)
		}
		result = append(result, record(obj, i))
	}
	return result, nil
}

// record reads a flat token record. Both snake_case and camelCase field
// names are accepted.
func record(obj *object, index int) *token.Token {
	t := &token.Token{
		Category:        stringField(obj, "category"),
		Subcategory:     stringField(obj, "subcategory"),
		Name:            stringField(obj, "name"),
		CSSVariable:     stringField(obj, "css_variable", "cssVariable"),
		Description:     stringField(obj, "description"),
		FigmaVariableID: stringField(obj, "figma_variable_id", "figmaVariableId"),
		SortOrder:       index,
	}
	if v, ok := obj.get("value"); ok {
		t.Value = plain(v)
	}
	for _, key := range []string{"sort_order", "sortOrder"} {
		if f, ok := num.Float(obj.values[key]); ok {
			t.SortOrder = int(f)
			break
		}
	}
	return t
}

func stringField(obj *object, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj.get(key); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// extractTokens walks a DTCG group tree in document order. The first group
// level becomes the category, deeper groups join into the subcategory, and
// the token's own key is its name.
func extractTokens(group *object, path []string, result *[]*token.Token) {
	for _, key := range group.keys {
		if strings.HasPrefix(key, "$") {
			continue
		}
		child, ok := group.values[key].(*object)
		if !ok {
			continue
		}

		if value, ok := child.get("$value"); ok {
			*result = append(*result, dtcgToken(key, path, child, value, len(*result)))
			continue
		}

		childPath := make([]string, len(path), len(path)+1)
		copy(childPath, path)
		extractTokens(child, append(childPath, key), result)
	}
}

func dtcgToken(name string, path []string, node *object, value any, order int) *token.Token {
	t := &token.Token{
		Name:        name,
		Value:       plain(value),
		Description: stringField(node, "$description"),
		SortOrder:   order,
	}
	t.CSSVariable = pathVariable(append(append([]string{}, path...), name))
	switch len(path) {
	case 0:
		t.Category = name
	case 1:
		t.Category = path[0]
	default:
		t.Category = path[0]
		t.Subcategory = strings.Join(path[1:], "-")
	}

	if ext, ok := node.values["$extensions"].(*object); ok {
		if figma, ok := ext.values[FigmaExtension].(*object); ok {
			t.FigmaVariableID = stringField(figma, "variableId")
		}
	}
	return t
}

// pathVariable keeps every group level in the variable name so that
// same-named tokens in sibling groups stay distinct.
func pathVariable(segments []string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = slug.Make(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "--" + strings.Join(parts, "-")
}
