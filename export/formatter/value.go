/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/tokenpipe/color"
	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/internal/num"
	"bennypowers.dev/tokenpipe/shadow"
	"bennypowers.dev/tokenpipe/token"
)

// ErrUnsupportedValue is returned when a value has no CSS rendering.
var ErrUnsupportedValue = errors.New("unsupported token value")

// CSSValue renders a raw or canonical token value as CSS text.
func CSSValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: null", ErrUnsupportedValue)
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case token.ColorValue:
		return val.Hex, nil
	case token.DimensionValue:
		return val.String(), nil
	case token.ShadowValue:
		return shadow.Serialize(val.Shadow), nil
	case token.NumberValue:
		return num.Format(val.Value), nil
	case token.StringValue:
		return val.Value, nil
	case dimension.Dimension:
		return val.String(), nil
	case shadow.Shadow:
		return shadow.Serialize(val), nil
	case []shadow.Shadow:
		return shadow.SerializeList(val), nil
	case map[string]any:
		return objectCSSValue(val)
	case []any:
		return listCSSValue(val)
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return listCSSValue(items)
	}
	if num.IsNumber(v) {
		f, _ := num.Float(v)
		return num.Format(f), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func objectCSSValue(obj map[string]any) (string, error) {
	if inner, ok := obj["$value"]; ok {
		return CSSValue(inner)
	}
	if hex, ok := obj["hex"]; ok {
		s, isString := hex.(string)
		if !isString || strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("%w: hex is %T", ErrUnsupportedValue, hex)
		}
		return strings.TrimSpace(s), nil
	}
	if rgb, alpha, ok := rgbaObject(obj); ok {
		return color.FormatRGB(rgb, alpha), nil
	}
	if shadow.LooksLikeShadow(obj) {
		return shadow.Serialize(shadow.ParseValue(obj)), nil
	}
	raw, hasValue := obj["value"]
	unit, hasUnit := obj["unit"].(string)
	if hasValue && hasUnit {
		f, ok := num.Float(raw)
		if !ok {
			return "", fmt.Errorf("%w: dimension value %v", ErrUnsupportedValue, raw)
		}
		return num.Format(f) + unit, nil
	}
	return "", fmt.Errorf("%w: object without a known shape", ErrUnsupportedValue)
}

func rgbaObject(obj map[string]any) (color.RGB, float64, bool) {
	r, okR := num.Float(obj["r"])
	g, okG := num.Float(obj["g"])
	b, okB := num.Float(obj["b"])
	if !okR || !okG || !okB {
		return color.RGB{}, 1, false
	}
	alpha := 1.0
	if a, ok := num.Float(obj["a"]); ok {
		alpha = a
	}
	return color.HexToRGB(color.RGBToHex(r, g, b)), alpha, true
}

func listCSSValue(items []any) (string, error) {
	if len(items) > 0 && allShadowObjects(items) {
		list := make([]shadow.Shadow, len(items))
		for i, item := range items {
			list[i] = shadow.ParseValue(item)
		}
		return shadow.SerializeList(list), nil
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			parts = append(parts, quoteFamily(s))
			continue
		}
		s, err := CSSValue(item)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

func allShadowObjects(items []any) bool {
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok || !shadow.LooksLikeShadow(obj) {
			return false
		}
	}
	return true
}

// quoteFamily quotes multi-word list entries such as font family names.
func quoteFamily(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, " \t") || strings.ContainsAny(s, `"'(`) {
		return s
	}
	return `"` + s + `"`
}

// TokenCSSValue renders the token's value as CSS. Values with no CSS form
// are rendered as JSON text. ok is false when the value is missing or cannot
// be rendered at all; callers then emit a placeholder comment instead of a
// declaration. Generation never stops for a bad value.
func TokenCSSValue(tok *token.Token) (value string, ok bool) {
	if tok.Value == nil {
		logger.Debug("%s: no value", tok.CSSVariableName())
		return "", false
	}
	s, err := CSSValue(tok.Value)
	if err == nil {
		return s, true
	}
	logger.Debug("%s: %v; rendering as JSON", tok.CSSVariableName(), err)
	data, jerr := json.Marshal(tok.Value)
	if jerr != nil {
		logger.Debug("%s: %v", tok.CSSVariableName(), jerr)
		return "", false
	}
	return string(data), true
}

// Placeholder is the comment text emitted in place of a token whose value
// could not be rendered.
func Placeholder(tok *token.Token) string {
	return tok.CSSVariableName() + ": invalid value"
}
