/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"strings"
	"testing"
)

func assertLines(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("expected output to contain %q, got:\n%s", w, out)
		}
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "hex", input: "#3b82f6", want: []string{"#3B82F6", "rgb(59, 130, 246)"}},
		{name: "short hex", input: "f00", want: []string{"#FF0000", "hsl(0, 100%, 50%)"}},
		{name: "translucent", input: "rgba(0, 0, 0, 0.5)", want: []string{"#000000", "rgba(0, 0, 0, 0.5)", "0.5"}},
		{name: "object", input: `{"hex": "#00FF00"}`, want: []string{"#00FF00", "rgb(0, 255, 0)"}},
		{name: "rgb object", input: `{"r": 255, "g": 255, "b": 255}`, want: []string{"#FFFFFF"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Color(tt.input)
			if err != nil {
				t.Fatalf("Color() error = %v", err)
			}
			assertLines(t, out, tt.want...)
		})
	}
}

func TestColor_Invalid(t *testing.T) {
	if _, err := Color("not a color"); err == nil {
		t.Error("expected an error for an unreadable color")
	}
	if _, err := Color(`{"hex": `); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestDimension(t *testing.T) {
	lo, hi := 0.0, 8.0
	tests := []struct {
		name   string
		input  string
		unit   string
		lo, hi *float64
		want   string
	}{
		{name: "string", input: "1.5rem", want: "1.5rem"},
		{name: "bare number uses default unit", input: "24", unit: "rem", want: "24rem"},
		{name: "object", input: `{"value": 16, "unit": "px"}`, want: "16px"},
		{name: "clamped high", input: "12px", lo: &lo, hi: &hi, want: "8px"},
		{name: "clamped low", input: "-4px", lo: &lo, hi: &hi, want: "0px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Dimension(tt.input, tt.unit, tt.lo, tt.hi)
			if err != nil {
				t.Fatalf("Dimension() error = %v", err)
			}
			first := strings.SplitN(out, "\n", 2)[0]
			if !strings.HasSuffix(first, tt.want) {
				t.Errorf("css line = %q, want suffix %q", first, tt.want)
			}
		})
	}
}

func TestShadow(t *testing.T) {
	out, err := Shadow("inset 0 1px 2px #00000033, 0 4px 8px black")
	if err != nil {
		t.Fatalf("Shadow() error = %v", err)
	}
	assertLines(t, out,
		"inset 0px 1px 2px 0px",
		"0px 4px 8px 0px",
		"css",
	)
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("expected 2 layers and a css line, got %d lines:\n%s", got, out)
	}
}
