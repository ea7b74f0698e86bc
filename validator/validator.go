/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token sets for problems that would produce
// broken or ambiguous exports.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/multierr"

	"bennypowers.dev/tokenpipe/color"
	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/token"
)

// ValidationError describes one problem with one token.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path identifies the token, e.g. "color.primary" or "#3".
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

var variablePattern = regexp.MustCompile(`^--[A-Za-z_][A-Za-z0-9_-]*$`)

// Validate checks tokens and returns every problem found, in token order.
func Validate(tokens []*token.Token) []ValidationError {
	return ValidateWithPath(tokens, "")
}

// ValidateWithPath validates tokens and includes filePath in errors.
func ValidateWithPath(tokens []*token.Token, filePath string) []ValidationError {
	var errs []ValidationError
	add := func(path, msg, suggestion string) {
		errs = append(errs, ValidationError{FilePath: filePath, Path: path, Message: msg, Suggestion: suggestion})
	}

	names := map[string]string{}
	variables := map[string]string{}

	for i, t := range tokens {
		if t == nil {
			add(fmt.Sprintf("#%d", i), "token is null", "")
			continue
		}
		path := tokenPath(t, i)

		if strings.TrimSpace(t.Name) == "" {
			add(path, "token has no name", "give every token a name")
		} else {
			key := strings.ToLower(t.Category + "." + t.Subcategory + "." + t.Name)
			if first, ok := names[key]; ok {
				add(path, fmt.Sprintf("duplicate token name %q", t.Name), "first defined at "+first)
			} else {
				names[key] = path
			}
		}

		if t.CSSVariable != "" && !variablePattern.MatchString(strings.TrimSpace(t.CSSVariable)) {
			add(path, fmt.Sprintf("malformed CSS variable %q", t.CSSVariable), `use the form "--category-name"`)
		}
		if v := t.CSSVariableName(); v != "" {
			if first, ok := variables[v]; ok {
				add(path, fmt.Sprintf("CSS variable %s is already used", v), "first defined at "+first)
			} else {
				variables[v] = path
			}
		}

		switch t.Type() {
		case token.TypeColor:
			if !validColor(t.Value) {
				add(path, fmt.Sprintf("%v is not a readable color", t.Value), `use a hex color like "#3B82F6"`)
			}
		case token.TypeDimension:
			if unit, ok := dimensionUnit(t.Value); ok && !dimension.IsUnit(unit) {
				add(path, fmt.Sprintf("unsupported unit %q", unit), "use one of "+strings.Join(dimension.Units, ", "))
			}
		}
	}
	return errs
}

// Err combines validation errors into a single error, or nil.
func Err(errs []ValidationError) error {
	var err error
	for i := range errs {
		err = multierr.Append(err, &errs[i])
	}
	return err
}

func tokenPath(t *token.Token, index int) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{t.Category, t.Subcategory, t.Name} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("#%d", index)
	}
	return strings.Join(parts, ".")
}

func validColor(value any) bool {
	switch v := value.(type) {
	case token.ColorValue:
		return color.IsValidHex(v.Hex)
	case string:
		_, _, err := color.Parse(v)
		return err == nil
	case map[string]any:
		if inner, ok := v["$value"]; ok {
			return validColor(inner)
		}
		if inner, ok := v["hex"]; ok {
			s, ok := inner.(string)
			return ok && color.IsValidHex(s)
		}
		_, hasR := v["r"]
		_, hasG := v["g"]
		_, hasB := v["b"]
		return hasR && hasG && hasB
	}
	return false
}

// dimensionUnit returns the unit a dimension value spells out, if any.
func dimensionUnit(value any) (string, bool) {
	switch v := value.(type) {
	case map[string]any:
		if inner, ok := v["$value"]; ok {
			return dimensionUnit(inner)
		}
		u, ok := v["unit"].(string)
		return u, ok && u != ""
	case string:
		s := strings.TrimSpace(v)
		i := strings.IndexFunc(s, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
		})
		if i <= 0 {
			return "", false
		}
		return strings.TrimSpace(s[i:]), true
	}
	return "", false
}
