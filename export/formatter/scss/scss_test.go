/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scss_test

import (
	"testing"

	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/export/formatter/scss"
	"bennypowers.dev/tokenpipe/token"
)

func tokens() []*token.Token {
	return []*token.Token{
		{Category: "color", Name: "primary", Value: map[string]any{"hex": "#FF0000"}, CSSVariable: "--color-primary"},
		{Category: "spacing", Name: "md", Value: map[string]any{"value": 16, "unit": "px"}, CSSVariable: "--spacing-md"},
		{Category: "font-family", Name: "body", Value: []any{"Open Sans", "sans-serif"}},
	}
}

func TestFormat_Variables(t *testing.T) {
	result, err := scss.New().Format(tokens(), formatter.Options{})
	if err != nil {
		t.Fatal(err)
	}
	expected := `$color-primary: #FF0000;
$spacing-md: 16px;
$font-family-body: "Open Sans", sans-serif;
`
	if string(result) != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, result)
	}
}

func TestFormat_Comments(t *testing.T) {
	result, err := scss.New().Format(tokens(), formatter.Options{IncludeComments: true, Header: "Generated"})
	if err != nil {
		t.Fatal(err)
	}
	expected := `// Generated

// Color
$color-primary: #FF0000;

// Spacing
$spacing-md: 16px;

// Font Family
$font-family-body: "Open Sans", sans-serif;
`
	if string(result) != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, result)
	}
}

func TestFormat_Map(t *testing.T) {
	result, err := scss.NewWithOptions(scss.Options{UseMap: true, MapName: "$theme"}).Format(tokens(), formatter.Options{})
	if err != nil {
		t.Fatal(err)
	}
	expected := `$theme: (
  "color-primary": #FF0000,
  "spacing-md": 16px,
  "font-family-body": ("Open Sans", sans-serif),
);
`
	if string(result) != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, result)
	}
}

func TestFormat_Empty(t *testing.T) {
	result, _ := scss.New().Format(nil, formatter.Options{})
	if string(result) != "// No tokens to export\n" {
		t.Errorf("unexpected empty output %q", result)
	}

	result, _ = scss.NewWithOptions(scss.Options{UseMap: true}).Format([]*token.Token{}, formatter.Options{})
	if string(result) != "// No tokens to export\n$tokens: ();\n" {
		t.Errorf("unexpected empty map output %q", result)
	}
}

func TestFormat_InvalidValue(t *testing.T) {
	result, _ := scss.New().Format([]*token.Token{{Category: "x", Name: "y"}}, formatter.Options{})
	if string(result) != "// $x-y: invalid value\n" {
		t.Errorf("unexpected output %q", result)
	}
}

func TestMapValue(t *testing.T) {
	tests := map[string]string{
		"#FF0000":                          "#FF0000",
		"a, b":                             "(a, b)",
		"rgba(0, 0, 0, 0.5)":               "rgba(0, 0, 0, 0.5)",
		"0px 1px #000, 0px 2px rgb(1,2,3)": "(0px 1px #000, 0px 2px rgb(1,2,3))",
	}
	for input, expected := range tests {
		if got := scss.MapValue(input); got != expected {
			t.Errorf("MapValue(%q) = %q, expected %q", input, got, expected)
		}
	}
}
