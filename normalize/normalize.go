/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize converts raw token values to and from their canonical
// forms. Build functions rewrite only the fields they own, so metadata that
// callers attach to a value object (alpha, $type, notes) survives an edit.
package normalize

import (
	"encoding/json"
	"strings"

	"bennypowers.dev/tokenpipe/color"
	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/internal/num"
	"bennypowers.dev/tokenpipe/shadow"
	"bennypowers.dev/tokenpipe/token"
)

// dtcgValueKey is the wrapper key of a DTCG-style value object.
const dtcgValueKey = "$value"

// ExtractColorValue returns the "#RRGGBB" form of a color value. It unwraps
// {hex: ...} and {$value: ...} objects, reads {r, g, b} objects and converts
// rgb(), hsl() and named colors. Unrecoverable values yield "#000000".
func ExtractColorValue(value any) string {
	switch v := value.(type) {
	case token.ColorValue:
		return color.NormalizeHex(v.Hex)
	case *token.ColorValue:
		if v == nil {
			return color.Black
		}
		return color.NormalizeHex(v.Hex)
	case string:
		hex, _, err := color.Parse(v)
		if err != nil {
			return color.Black
		}
		return hex
	case map[string]any:
		if inner, ok := v[dtcgValueKey]; ok {
			return ExtractColorValue(inner)
		}
		if inner, ok := v["hex"]; ok {
			return ExtractColorValue(inner)
		}
		if rgb, ok := rgbObject(v); ok {
			return rgb.Hex()
		}
	}
	return color.Black
}

// BuildColorValue stores newHex into original. An object carrying a hex key
// is copied with only hex replaced; a DTCG wrapper is rebuilt around its inner
// value. Anything else becomes the bare normalized hex string.
func BuildColorValue(newHex string, original any) any {
	hex := color.NormalizeHex(newHex)
	obj, ok := original.(map[string]any)
	if !ok {
		return hex
	}
	if inner, ok := obj[dtcgValueKey]; ok {
		out := copyMap(obj)
		out[dtcgValueKey] = BuildColorValue(hex, inner)
		return out
	}
	if _, ok := obj["hex"]; ok {
		out := copyMap(obj)
		out["hex"] = hex
		return out
	}
	return hex
}

// ExtractDimensionValue reads a dimension from value, unwrapping DTCG
// wrappers. See dimension.ParseValue for the accepted shapes.
func ExtractDimensionValue(value any, defaultUnit string) dimension.Dimension {
	switch v := value.(type) {
	case token.DimensionValue:
		return dimension.ParseValue(v.Dimension, defaultUnit)
	case map[string]any:
		if inner, ok := v[dtcgValueKey]; ok {
			return ExtractDimensionValue(inner, defaultUnit)
		}
	}
	return dimension.ParseValue(value, defaultUnit)
}

// BuildDimensionValue stores d into original. Objects keep their other keys
// and have value and unit replaced; strings are rebuilt as "16px".
func BuildDimensionValue(d dimension.Dimension, original any) any {
	if d.Unit == "" {
		d.Unit = dimension.DefaultUnit
	}
	switch v := original.(type) {
	case string:
		return d.String()
	case map[string]any:
		if inner, ok := v[dtcgValueKey]; ok {
			out := copyMap(v)
			out[dtcgValueKey] = BuildDimensionValue(d, inner)
			return out
		}
		out := copyMap(v)
		out["value"] = d.Value
		out["unit"] = d.Unit
		return out
	}
	return map[string]any{"value": d.Value, "unit": d.Unit}
}

// ExtractShadowValue reads a single shadow from value. For shadow lists the
// first entry is returned.
func ExtractShadowValue(value any) shadow.Shadow {
	switch v := value.(type) {
	case token.ShadowValue:
		return shadow.ParseValue(v.Shadow)
	case map[string]any:
		if inner, ok := v[dtcgValueKey]; ok {
			return ExtractShadowValue(inner)
		}
	case []any:
		if len(v) > 0 {
			return ExtractShadowValue(v[0])
		}
	}
	return shadow.ParseValue(value)
}

// ExtractShadowList reads every shadow in value: a comma-separated CSS list,
// an array of shadow objects, or a single shadow.
func ExtractShadowList(value any) []shadow.Shadow {
	switch v := value.(type) {
	case string:
		if list := shadow.ParseList(v); len(list) > 0 {
			return list
		}
	case []any:
		list := make([]shadow.Shadow, 0, len(v))
		for _, item := range v {
			list = append(list, ExtractShadowValue(item))
		}
		return list
	case map[string]any:
		if inner, ok := v[dtcgValueKey]; ok {
			return ExtractShadowList(inner)
		}
	}
	return []shadow.Shadow{ExtractShadowValue(value)}
}

// BuildShadowValue stores s into original. Object originals keep unknown keys
// and are written through whichever key spelling they already use
// (offsetX or x, blurRadius or blur); offsets that were dimension strings stay
// strings. String originals become a CSS box-shadow.
func BuildShadowValue(s shadow.Shadow, original any) any {
	switch v := original.(type) {
	case string:
		return shadow.Serialize(s)
	case map[string]any:
		if inner, ok := v[dtcgValueKey]; ok {
			out := copyMap(v)
			out[dtcgValueKey] = BuildShadowValue(s, inner)
			return out
		}
		return writeShadow(s, v)
	}
	return writeShadow(s, nil)
}

func writeShadow(s shadow.Shadow, original map[string]any) map[string]any {
	s = shadow.ParseValue(s)
	out := copyMap(original)
	fields := []struct {
		name  string
		value float64
		unit  string
	}{
		{"x", s.X, s.XUnit},
		{"y", s.Y, s.YUnit},
		{"blur", s.Blur, s.BlurUnit},
		{"spread", s.Spread, s.SpreadUnit},
	}
	for _, f := range fields {
		key := f.name
		var prev any
		for _, alias := range shadow.ObjectKeys(f.name) {
			if v, ok := original[alias]; ok {
				key, prev = alias, v
				break
			}
		}
		if _, wasString := prev.(string); wasString {
			out[key] = num.Format(f.value) + f.unit
			continue
		}
		out[key] = f.value
		unitKey := f.name + "Unit"
		if _, had := original[unitKey]; had || f.unit != dimension.DefaultUnit {
			out[unitKey] = f.unit
		}
	}
	out["color"] = s.Color
	if _, had := original["inset"]; had || s.Inset {
		out["inset"] = s.Inset
	}
	return out
}

// Canonicalize converts a raw value into the canonical value for type t.
// It never fails; unreadable input degrades to the type's default.
func Canonicalize(value any, t token.Type) token.Value {
	switch t {
	case token.TypeColor:
		return canonicalColor(value)
	case token.TypeDimension:
		return token.DimensionValue{Dimension: ExtractDimensionValue(value, dimension.DefaultUnit)}
	case token.TypeShadow:
		return token.ShadowValue{Shadow: ExtractShadowValue(value)}
	case token.TypeNumber:
		if v, ok := value.(token.NumberValue); ok {
			return v
		}
		if f, ok := num.Float(value); ok {
			return token.NumberValue{Value: f}
		}
		return token.NumberValue{Value: ExtractDimensionValue(value, "").Value}
	default:
		return token.StringValue{Value: Stringify(value)}
	}
}

func canonicalColor(value any) token.ColorValue {
	cv := token.ColorValue{Hex: ExtractColorValue(value)}
	switch v := value.(type) {
	case token.ColorValue:
		cv.Alpha = v.Alpha
	case string:
		if _, alpha, err := color.Parse(v); err == nil && alpha < color.AlphaThreshold {
			cv.Alpha = &alpha
		}
	case map[string]any:
		if inner, ok := v[dtcgValueKey]; ok {
			return canonicalColor(inner)
		}
		for _, key := range []string{"alpha", "a"} {
			if a, ok := num.Float(v[key]); ok {
				cv.Alpha = &a
				break
			}
		}
	}
	return cv
}

// Normalize infers the token's type and returns its canonical value.
func Normalize(t *token.Token) token.Value {
	if t == nil {
		return token.StringValue{}
	}
	return Canonicalize(t.Value, t.Type())
}

// NormalizeToken returns a copy of t whose raw value has been rewritten in
// its normalized raw form: colors as uppercase hex, dimensions with explicit
// units, shadows with every field populated. The CSS variable name is filled
// in when missing. t itself is not modified.
func NormalizeToken(t *token.Token) *token.Token {
	if t == nil {
		return nil
	}
	out := t.Clone()
	out.CSSVariable = t.CSSVariableName()
	switch t.Type() {
	case token.TypeColor:
		out.Value = BuildColorValue(ExtractColorValue(t.Value), t.Value)
	case token.TypeDimension:
		out.Value = BuildDimensionValue(ExtractDimensionValue(t.Value, ""), t.Value)
	case token.TypeShadow:
		out.Value = buildShadowRaw(t.Value)
	case token.TypeNumber:
		if f, ok := num.Float(t.Value); ok {
			out.Value = f
		}
	}
	return out
}

func buildShadowRaw(value any) any {
	switch v := value.(type) {
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = BuildShadowValue(ExtractShadowValue(item), item)
		}
		return list
	case string:
		return shadow.SerializeList(ExtractShadowList(v))
	}
	return BuildShadowValue(ExtractShadowValue(value), value)
}

// Stringify renders a raw value as plain text. Strings pass through, string
// lists are comma-joined, and other structures are rendered as JSON.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case token.StringValue:
		return v.Value
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return marshal(value)
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", ")
	}
	if num.IsNumber(value) {
		f, _ := num.Float(value)
		return num.Format(f)
	}
	return marshal(value)
}

func marshal(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

func rgbObject(obj map[string]any) (color.RGB, bool) {
	r, okR := num.Float(obj["r"])
	g, okG := num.Float(obj["g"])
	b, okB := num.Float(obj["b"])
	if !okR || !okG || !okB {
		return color.RGB{}, false
	}
	return color.HexToRGB(color.RGBToHex(r, g, b)), true
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+4)
	for k, v := range m {
		out[k] = v
	}
	return out
}
