/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dimension_test

import (
	"testing"

	"bennypowers.dev/tokenpipe/dimension"
)

func ptr(f float64) *float64 { return &f }

func TestParseValue(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		defaultUnit string
		expected    dimension.Dimension
	}{
		{"px string", "16px", "px", dimension.Dimension{Value: 16, Unit: "px"}},
		{"rem string", "1.5rem", "px", dimension.Dimension{Value: 1.5, Unit: "rem"}},
		{"percent", "50%", "px", dimension.Dimension{Value: 50, Unit: "%"}},
		{"uppercase unit", "12PX", "rem", dimension.Dimension{Value: 12, Unit: "px"}},
		{"space before unit", "4 vw", "px", dimension.Dimension{Value: 4, Unit: "vw"}},
		{"negative", "-2em", "px", dimension.Dimension{Value: -2, Unit: "em"}},
		{"trailing dot", "3.pt", "px", dimension.Dimension{Value: 3, Unit: "pt"}},
		{"unitless string", "24", "rem", dimension.Dimension{Value: 24, Unit: "rem"}},
		{"unknown unit falls back to parseFloat", "12ch", "px", dimension.Dimension{Value: 12, Unit: "px"}},
		{"leading decimal", ".5", "em", dimension.Dimension{Value: 0.5, Unit: "em"}},
		{"garbage", "auto", "rem", dimension.Dimension{Value: 0, Unit: "rem"}},
		{"nil", nil, "rem", dimension.Dimension{Value: 0, Unit: "rem"}},
		{"empty default unit", nil, "", dimension.Dimension{Value: 0, Unit: "px"}},
		{"float", 8.0, "px", dimension.Dimension{Value: 8, Unit: "px"}},
		{"int", 8, "rem", dimension.Dimension{Value: 8, Unit: "rem"}},
		{"object", map[string]any{"value": 16.0, "unit": "px"}, "rem", dimension.Dimension{Value: 16, Unit: "px"}},
		{"object without unit", map[string]any{"value": 2.0}, "rem", dimension.Dimension{Value: 2, Unit: "rem"}},
		{"object with string value", map[string]any{"value": "3em"}, "px", dimension.Dimension{Value: 3, Unit: "em"}},
		{"struct", dimension.Dimension{Value: 4}, "vh", dimension.Dimension{Value: 4, Unit: "vh"}},
		{"bool", true, "px", dimension.Dimension{Value: 0, Unit: "px"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dimension.ParseValue(tt.input, tt.defaultUnit)
			if got != tt.expected {
				t.Errorf("ParseValue(%v, %q) = %+v, want %+v", tt.input, tt.defaultUnit, got, tt.expected)
			}
		})
	}
}

func TestDimension_String(t *testing.T) {
	if got := (dimension.Dimension{Value: 16, Unit: "px"}).String(); got != "16px" {
		t.Errorf("String() = %q", got)
	}
	if got := (dimension.Dimension{Value: 0.75, Unit: "rem"}).String(); got != "0.75rem" {
		t.Errorf("String() = %q", got)
	}
}

func TestHasUnit(t *testing.T) {
	if !dimension.HasUnit("16px") {
		t.Error("expected 16px to have a unit")
	}
	if dimension.HasUnit("16") {
		t.Error("expected bare number to have no unit")
	}
	if dimension.HasUnit("#FFF") {
		t.Error("expected hex not to be a dimension")
	}
}

func TestIsUnit(t *testing.T) {
	for _, u := range []string{"px", "REM", "%", "vh"} {
		if !dimension.IsUnit(u) {
			t.Errorf("expected %q to be a unit", u)
		}
	}
	if dimension.IsUnit("ch") {
		t.Error("ch is not a supported unit")
	}
}

func TestClampValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		min, max *float64
		expected float64
	}{
		{"within bounds", 5.0, ptr(0), ptr(10), 5},
		{"below min", -3.0, ptr(0), ptr(10), 0},
		{"above max", 30, ptr(0), ptr(10), 10},
		{"min only", -3.0, ptr(0), nil, 0},
		{"max only", 300.0, nil, ptr(255), 255},
		{"no bounds", 300.0, nil, nil, 300},
		{"non numeric", "abc", nil, nil, 0},
		{"non numeric clamped", "abc", ptr(4), nil, 4},
		{"numeric string", "7", nil, ptr(5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dimension.ClampValue(tt.raw, tt.min, tt.max); got != tt.expected {
				t.Errorf("ClampValue() = %v, want %v", got, tt.expected)
			}
		})
	}
}
