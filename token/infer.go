/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"
	"unicode"

	"bennypowers.dev/tokenpipe/color"
	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/internal/num"
	"bennypowers.dev/tokenpipe/shadow"
)

// categoryRules are checked in order; the first keyword found anywhere in the
// category decides the type.
var categoryRules = []struct {
	keywords []string
	typ      Type
}{
	{[]string{"color"}, TypeColor},
	{[]string{"shadow", "elevation"}, TypeShadow},
	{[]string{"spacing", "space", "gap", "margin", "padding", "size", "width", "height", "radius"}, TypeDimension},
}

// typographyNameKeywords mark typography tokens whose category ("typography",
// "font", ...) says nothing about the value.
var typographyNameKeywords = []string{"font-size", "font-weight", "line-height", "letter-spacing"}

// InferType decides which type a token holds. The category wins over the
// name, and the name wins over the shape of the value, so a token in the
// "shadow" category is a shadow whatever its value looks like. Values that
// match nothing are strings.
func InferType(value any, category, name string) Type {
	if t, ok := typeFromCategory(category); ok {
		return t
	}
	if typeFromName(name) {
		return TypeDimension
	}
	return TypeOfValue(value)
}

func typeFromCategory(category string) (Type, bool) {
	c := strings.ToLower(category)
	if c == "" {
		return "", false
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(c, kw) {
				return rule.typ, true
			}
		}
	}
	return "", false
}

func typeFromName(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	kebab := kebab(name)
	for _, kw := range typographyNameKeywords {
		if strings.Contains(lower, kw) || strings.Contains(kebab, kw) {
			return true
		}
	}
	return false
}

// TypeOfValue infers a type from the shape of a value alone.
func TypeOfValue(value any) Type {
	switch v := value.(type) {
	case nil:
		return TypeString
	case Value:
		return v.Type()
	case dimension.Dimension, *dimension.Dimension:
		return TypeDimension
	case shadow.Shadow, *shadow.Shadow:
		return TypeShadow
	case string:
		s := strings.TrimSpace(v)
		if color.IsColorString(s) {
			return TypeColor
		}
		if dimension.HasUnit(s) {
			return TypeDimension
		}
		return TypeString
	case map[string]any:
		return typeOfObject(v)
	case []any:
		if len(v) > 0 && allShadows(v) {
			return TypeShadow
		}
		return TypeString
	}
	if num.IsNumber(value) {
		return TypeNumber
	}
	return TypeString
}

func typeOfObject(obj map[string]any) Type {
	if inner, ok := obj["$value"]; ok {
		return TypeOfValue(inner)
	}
	if _, ok := obj["hex"]; ok {
		return TypeColor
	}
	if shadow.LooksLikeShadow(obj) {
		return TypeShadow
	}
	_, hasValue := obj["value"]
	_, hasUnit := obj["unit"]
	if hasValue && hasUnit {
		return TypeDimension
	}
	_, hasR := obj["r"]
	_, hasG := obj["g"]
	_, hasB := obj["b"]
	if hasR && hasG && hasB {
		return TypeColor
	}
	return TypeString
}

func allShadows(items []any) bool {
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok || !shadow.LooksLikeShadow(obj) {
			return false
		}
	}
	return true
}

// kebab turns "fontSize" or "font_size" into "font-size".
func kebab(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == '.' || r == ' ':
			sb.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
