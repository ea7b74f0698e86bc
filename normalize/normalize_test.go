/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/normalize"
	"bennypowers.dev/tokenpipe/shadow"
	"bennypowers.dev/tokenpipe/token"
)

func TestExtractColorValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"bare hex", "#ff0000", "#FF0000"},
		{"shorthand", "#f00", "#FF0000"},
		{"hex object", map[string]any{"hex": "#3b82f6", "alpha": 0.5}, "#3B82F6"},
		{"dtcg wrapper", map[string]any{"$value": "#00ff00"}, "#00FF00"},
		{"nested wrapper", map[string]any{"$value": map[string]any{"$value": map[string]any{"hex": "#abc"}}}, "#AABBCC"},
		{"rgb string", "rgb(255, 0, 0)", "#FF0000"},
		{"hsl string", "hsl(0, 100%, 50%)", "#FF0000"},
		{"named", "white", "#FFFFFF"},
		{"rgb object", map[string]any{"r": 0, "g": 0, "b": 255}, "#0000FF"},
		{"canonical", token.ColorValue{Hex: "#123456"}, "#123456"},
		{"garbage", "not a color", "#000000"},
		{"number", 42, "#000000"},
		{"nil", nil, "#000000"},
		{"empty object", map[string]any{}, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.ExtractColorValue(tt.value))
		})
	}
}

func TestBuildColorValue(t *testing.T) {
	t.Run("preserves sibling keys", func(t *testing.T) {
		original := map[string]any{"hex": "#FF0000", "alpha": 0.5, "note": "brand"}
		got := normalize.BuildColorValue("#00f", original)

		assert.Equal(t, map[string]any{"hex": "#0000FF", "alpha": 0.5, "note": "brand"}, got)
		assert.Equal(t, "#FF0000", original["hex"], "original must not change")
	})

	t.Run("bare string", func(t *testing.T) {
		assert.Equal(t, "#00FF00", normalize.BuildColorValue("00ff00", "#FF0000"))
	})

	t.Run("object without hex", func(t *testing.T) {
		assert.Equal(t, "#00FF00", normalize.BuildColorValue("#0F0", map[string]any{"r": 1, "g": 2, "b": 3}))
	})

	t.Run("dtcg wrapper keeps its type", func(t *testing.T) {
		original := map[string]any{"$type": "color", "$value": map[string]any{"hex": "#000", "alpha": 1.0}}
		got := normalize.BuildColorValue("#FFF", original)
		assert.Equal(t, map[string]any{
			"$type":  "color",
			"$value": map[string]any{"hex": "#FFFFFF", "alpha": 1.0},
		}, got)
	})

	t.Run("extract after build", func(t *testing.T) {
		original := map[string]any{"hex": "#000000", "alpha": 0.2}
		assert.Equal(t, "#ABCDEF", normalize.ExtractColorValue(normalize.BuildColorValue("#abcdef", original)))
	})
}

func TestDimensionValues(t *testing.T) {
	assert.Equal(t, dimension.Dimension{Value: 16, Unit: "px"}, normalize.ExtractDimensionValue("16px", ""))
	assert.Equal(t, dimension.Dimension{Value: 1.5, Unit: "rem"}, normalize.ExtractDimensionValue(map[string]any{"$value": "1.5rem"}, ""))
	assert.Equal(t, dimension.Dimension{Value: 0, Unit: "rem"}, normalize.ExtractDimensionValue(nil, "rem"))

	d := dimension.Dimension{Value: 24, Unit: "rem"}
	original := map[string]any{"value": 16, "unit": "px", "min": 0}
	assert.Equal(t, map[string]any{"value": 24.0, "unit": "rem", "min": 0}, normalize.BuildDimensionValue(d, original))
	assert.Equal(t, 16, original["value"])

	assert.Equal(t, "24rem", normalize.BuildDimensionValue(d, "16px"))
	assert.Equal(t, map[string]any{"value": 24.0, "unit": "rem"}, normalize.BuildDimensionValue(d, 16))
	assert.Equal(t, map[string]any{"value": 2.0, "unit": "px"}, normalize.BuildDimensionValue(dimension.Dimension{Value: 2}, nil))
}

func TestShadowValues(t *testing.T) {
	t.Run("extract aliases", func(t *testing.T) {
		s := normalize.ExtractShadowValue(map[string]any{"offsetX": "2px", "offsetY": 3, "blurRadius": "1rem"})
		assert.Equal(t, 2.0, s.X)
		assert.Equal(t, 3.0, s.Y)
		assert.Equal(t, 1.0, s.Blur)
		assert.Equal(t, "rem", s.BlurUnit)
		assert.Equal(t, shadow.DefaultColor, s.Color)
	})

	t.Run("build writes through aliases", func(t *testing.T) {
		original := map[string]any{"offsetX": 1, "offsetY": "2px", "blur": 3, "color": "#000", "label": "card"}
		s := normalize.ExtractShadowValue(original)
		s.X = 10
		s.Y = 20
		got := normalize.BuildShadowValue(s, original)

		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 10.0, obj["offsetX"])
		assert.Equal(t, "20px", obj["offsetY"])
		assert.Equal(t, "card", obj["label"])
		assert.NotContains(t, obj, "x")
		assert.NotContains(t, obj, "y")
		assert.Equal(t, 1, original["offsetX"], "original must not change")
	})

	t.Run("string originals stay strings", func(t *testing.T) {
		s := normalize.ExtractShadowValue("inset 0 2px 4px #000")
		assert.True(t, s.Inset)
		assert.Equal(t, "inset 0px 2px 4px 0px #000", normalize.BuildShadowValue(s, "0 0 0 #fff"))
	})

	t.Run("fresh object", func(t *testing.T) {
		got := normalize.BuildShadowValue(shadow.Defaults(), nil)
		assert.Equal(t, map[string]any{
			"x": 0.0, "y": 4.0, "blur": 8.0, "spread": 0.0, "color": shadow.DefaultColor,
		}, got)
	})

	t.Run("list", func(t *testing.T) {
		list := normalize.ExtractShadowList("0 1px 2px rgba(0, 0, 0, 0.1), 0 4px 8px #000")
		require.Len(t, list, 2)
		assert.Equal(t, "rgba(0, 0, 0, 0.1)", list[0].Color)
		assert.Equal(t, 8.0, list[1].Blur)
	})
}

func TestCanonicalize(t *testing.T) {
	alpha := 0.5
	tests := []struct {
		name     string
		value    any
		typ      token.Type
		expected token.Value
	}{
		{"color object", map[string]any{"hex": "#f00", "alpha": 0.5}, token.TypeColor, token.ColorValue{Hex: "#FF0000", Alpha: &alpha}},
		{"color string", "#00FF00", token.TypeColor, token.ColorValue{Hex: "#00FF00"}},
		{"rgba string", "rgba(0, 0, 255, 0.5)", token.TypeColor, token.ColorValue{Hex: "#0000FF", Alpha: &alpha}},
		{"dimension", "1.5rem", token.TypeDimension, token.DimensionValue{Dimension: dimension.Dimension{Value: 1.5, Unit: "rem"}}},
		{"number", 400, token.TypeNumber, token.NumberValue{Value: 400}},
		{"numeric string", "1.25", token.TypeNumber, token.NumberValue{Value: 1.25}},
		{"string", "Inter", token.TypeString, token.StringValue{Value: "Inter"}},
		{"font stack", []any{"Inter", "sans-serif"}, token.TypeString, token.StringValue{Value: "Inter, sans-serif"}},
		{"shadow", "0 1px 2px #000", token.TypeShadow, token.ShadowValue{Shadow: shadow.Shadow{
			X: 0, Y: 1, Blur: 2, Color: "#000",
			XUnit: "px", YUnit: "px", BlurUnit: "px", SpreadUnit: "px",
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Canonicalize(tt.value, tt.typ))
		})
	}
}

func TestNormalize(t *testing.T) {
	tok := &token.Token{Category: "spacing", Name: "md", Value: 16}
	assert.Equal(t, token.DimensionValue{Dimension: dimension.Dimension{Value: 16, Unit: "px"}}, normalize.Normalize(tok))
	assert.Equal(t, token.StringValue{}, normalize.Normalize(nil))
}

func TestNormalizeToken(t *testing.T) {
	original := &token.Token{
		Category: "color",
		Name:     "primary",
		Value:    map[string]any{"hex": "#f00", "alpha": 0.8},
	}
	got := normalize.NormalizeToken(original)

	assert.Equal(t, map[string]any{"hex": "#FF0000", "alpha": 0.8}, got.Value)
	assert.Equal(t, "--color-primary", got.CSSVariable)
	assert.Equal(t, "#f00", original.Value.(map[string]any)["hex"])
	assert.Empty(t, original.CSSVariable)

	spacing := normalize.NormalizeToken(&token.Token{Category: "spacing", Name: "lg", Value: "2rem"})
	assert.Equal(t, "2rem", spacing.Value)

	shadows := normalize.NormalizeToken(&token.Token{Category: "shadow", Name: "card", Value: "0 1px 2px #000,0 2px 4px #111"})
	assert.Equal(t, "0px 1px 2px 0px #000, 0px 2px 4px 0px #111", shadows.Value)

	assert.Nil(t, normalize.NormalizeToken(nil))
}
