/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token record and its typed values.
package token

import (
	"strings"

	"github.com/gosimple/slug"
)

// Token is a named design value paired with a CSS custom property name, as
// supplied by editors, importers and storage.
type Token struct {
	// Category groups the token (e.g. "color", "spacing", "typography").
	Category string `json:"category" yaml:"category"`

	// Subcategory optionally nests the token within its category.
	// Empty means null.
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`

	// Name is unique within a theme, compared case-insensitively.
	Name string `json:"name" yaml:"name"`

	// Value is the raw value: a string, number, array, or an object such as
	// {"hex": "#FF0000"} or {"value": 16, "unit": "px"}.
	Value any `json:"value" yaml:"value"`

	// CSSVariable is the --kebab-case custom property name.
	CSSVariable string `json:"css_variable" yaml:"css_variable"`

	// SortOrder orders tokens within their category.
	SortOrder int `json:"sort_order" yaml:"sort_order"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// FigmaVariableID links the token to a Figma variable, when synced.
	FigmaVariableID string `json:"figma_variable_id,omitempty" yaml:"figma_variable_id,omitempty"`
}

// CSSVariableName returns the CSS custom property name for this token.
// When CSSVariable is unset it is derived from category and name,
// e.g. "--color-primary".
func (t *Token) CSSVariableName() string {
	if v := strings.TrimSpace(t.CSSVariable); v != "" {
		if !strings.HasPrefix(v, "--") {
			return "--" + v
		}
		return v
	}
	parts := make([]string, 0, 2)
	for _, s := range []string{t.Category, t.Name} {
		if s = slug.Make(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "--" + strings.Join(parts, "-")
}

// Key returns the CSS variable name without its leading dashes,
// e.g. "color-primary".
func (t *Token) Key() string {
	return strings.TrimPrefix(t.CSSVariableName(), "--")
}

// Type returns the inferred type of the token's value.
func (t *Token) Type() Type {
	return InferType(t.Value, t.Category, t.Name)
}

// Clone returns a shallow copy of the token. Map and slice values are copied
// one level deep so callers can rewrite them without touching the original.
func (t *Token) Clone() *Token {
	c := *t
	switch v := t.Value.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		c.Value = m
	case []any:
		c.Value = append([]any(nil), v...)
	}
	return &c
}
