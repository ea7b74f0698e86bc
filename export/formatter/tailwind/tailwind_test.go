/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tailwind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/export/formatter/tailwind"
	"bennypowers.dev/tokenpipe/token"
)

func themeTokens() []*token.Token {
	return []*token.Token{
		{Category: "color", Name: "primary", Value: map[string]any{"hex": "#FF0000"}, CSSVariable: "--color-primary"},
		{Category: "color", Subcategory: "brand", Name: "color-accent", Value: "#00FF00"},
		{Category: "spacing", Name: "md", Value: map[string]any{"value": 16, "unit": "px"}, CSSVariable: "--spacing-md"},
		{Category: "typography", Name: "font-family-body", Value: []any{"Open Sans", "sans-serif"}},
		{Category: "typography", Name: "font-weight-bold", Value: 700},
		{Category: "misc", Name: "tagline", Value: "Hello"},
	}
}

func TestFormat_V3(t *testing.T) {
	result, err := tailwind.New().Format(themeTokens(), formatter.Options{})
	require.NoError(t, err)

	expected := `/** @type {import('tailwindcss').Config} */
module.exports = {
  theme: {
    extend: {
      colors: {
        primary: '#FF0000',
        brand: {
          accent: '#00FF00',
        },
      },
      spacing: {
        md: '16px',
      },
      fontWeight: {
        bold: '700',
      },
      fontFamily: {
        body: ['Open Sans', 'sans-serif'],
      },
    },
  },
};

// Tokens without a Tailwind theme key: --misc-tagline
`
	assert.Equal(t, expected, string(result))
}

func TestFormat_V3_Empty(t *testing.T) {
	result, err := tailwind.New().Format(nil, formatter.Options{})
	require.NoError(t, err)
	assert.Equal(t, `// No tokens to export
/** @type {import('tailwindcss').Config} */
module.exports = {
  theme: {
    extend: {
    },
  },
};
`, string(result))
}

func TestFormat_V4(t *testing.T) {
	f := tailwind.NewWithOptions(tailwind.Options{Version: "4.x"})
	result, err := f.Format(themeTokens(), formatter.Options{})
	require.NoError(t, err)

	expected := `@import "tailwindcss";

@theme {
  --color-primary: #FF0000;
  --color-brand-accent: #00FF00;
  --spacing-md: 16px;
  --font-weight-bold: 700;
  --font-body: "Open Sans", sans-serif;
}

:root {
  --misc-tagline: Hello;
}
`
	assert.Equal(t, expected, string(result))
	assert.Equal(t, ".css", f.Extension())
	assert.Equal(t, "text/css", f.MimeType())
}

func TestFormat_V4_Comments(t *testing.T) {
	tokens := themeTokens()[:3]
	result, err := tailwind.NewWithOptions(tailwind.Options{Version: "v4"}).Format(tokens, formatter.Options{
		IncludeComments: true,
		Header:          "Theme",
	})
	require.NoError(t, err)

	expected := `/* Theme */

@import "tailwindcss";

@theme {
  /* Colors */
  --color-primary: #FF0000;
  --color-brand-accent: #00FF00;

  /* Spacing */
  --spacing-md: 16px;
}
`
	assert.Equal(t, expected, string(result))
}

func TestFormat_V4_Empty(t *testing.T) {
	result, err := tailwind.NewWithOptions(tailwind.Options{Version: tailwind.Version4}).Format(nil, formatter.Options{})
	require.NoError(t, err)
	assert.Equal(t, "/* No tokens to export */\n@import \"tailwindcss\";\n\n@theme {\n}\n", string(result))
}

func TestFormat_OnlyUnmappedTokensIsNotEmpty(t *testing.T) {
	tokens := []*token.Token{
		{Category: "misc", Name: "tagline", Value: "Hello"},
	}

	v3, err := tailwind.New().Format(tokens, formatter.Options{})
	require.NoError(t, err)
	assert.NotContains(t, string(v3), "No tokens to export")
	assert.Contains(t, string(v3), "// Tokens without a Tailwind theme key: --misc-tagline")

	v4, err := tailwind.NewWithOptions(tailwind.Options{Version: tailwind.Version4}).Format(tokens, formatter.Options{})
	require.NoError(t, err)
	assert.Equal(t, "@import \"tailwindcss\";\n\n@theme {\n}\n\n:root {\n  --misc-tagline: Hello;\n}\n", string(v4))
}

func TestParseVersion(t *testing.T) {
	for input, expected := range map[string]tailwind.Version{
		"":    tailwind.Version3,
		"3":   tailwind.Version3,
		"3.x": tailwind.Version3,
		"4":   tailwind.Version4,
		"4.x": tailwind.Version4,
		"V4":  tailwind.Version4,
		"9":   tailwind.Version3,
	} {
		assert.Equal(t, expected, tailwind.ParseVersion(input), input)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		tok      token.Token
		expected tailwind.Section
	}{
		{token.Token{Category: "color", Name: "x", Value: "#000"}, tailwind.Colors},
		{token.Token{Category: "elevation", Name: "card", Value: "0 1px 2px #000"}, tailwind.BoxShadow},
		{token.Token{Category: "border-radius", Name: "md", Value: "4px"}, tailwind.BorderRadius},
		{token.Token{Category: "typography", Name: "fontSize-lg", Value: "1.25rem"}, tailwind.FontSize},
		{token.Token{Category: "typography", Name: "line-height-tight", Value: 1.2}, tailwind.LineHeight},
		{token.Token{Category: "typography", Name: "letter-spacing-wide", Value: "0.05em"}, tailwind.LetterSpacing},
		{token.Token{Category: "effects", Name: "opacity-50", Value: 0.5}, tailwind.Opacity},
		{token.Token{Category: "layers", Name: "zIndex-modal", Value: 100}, tailwind.ZIndex},
		{token.Token{Category: "size", Name: "icon", Value: "24px"}, tailwind.Spacing},
		{token.Token{Category: "weights", Name: "heavy", Value: 900}, tailwind.FontWeight},
		{token.Token{Category: "misc", Name: "flag", Value: "on"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.tok.Name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tailwind.Classify(&tt.tok))
		})
	}
}
