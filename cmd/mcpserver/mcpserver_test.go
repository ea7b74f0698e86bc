/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcpserver

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenpipe/export"
	"bennypowers.dev/tokenpipe/resolver"
	"bennypowers.dev/tokenpipe/token"
)

func TestGenerateExport(t *testing.T) {
	in := GenerateExportInput{
		Format: "tw",
		Tokens: []TokenInput{
			{Category: "color", Name: "primary", Value: map[string]any{"hex": "#FF0000"}},
			{Category: "spacing", Name: "md", Value: map[string]any{"value": 16.0, "unit": "px"}},
		},
		Options: export.Options{TailwindVersion: "4.x"},
	}

	_, out, err := generateExport(t.Context(), nil, in)
	require.NoError(t, err)
	assert.Equal(t, ".css", out.Extension)
	assert.Equal(t, "text/css", out.MimeType)
	assert.Contains(t, out.Content, "@theme")
	assert.Contains(t, out.Content, "--color-primary: #FF0000;")
	assert.Contains(t, out.Content, "--spacing-md: 16px;")
}

func TestGenerateExport_Aliases(t *testing.T) {
	in := GenerateExportInput{
		Format: "css",
		Tokens: []TokenInput{
			{Category: "color", Name: "brand", Value: "#FF6B35"},
			{Category: "color", Name: "link", Value: "{color.brand}"},
		},
	}

	_, out, err := generateExport(t.Context(), nil, in)
	require.NoError(t, err)
	assert.Contains(t, out.Content, "--color-link: #FF6B35;")

	in.Tokens[0].Value = "{color.link}"
	_, _, err = generateExport(t.Context(), nil, in)
	assert.ErrorIs(t, err, resolver.ErrCircularReference)
}

func TestGenerateExport_UnknownFormat(t *testing.T) {
	_, _, err := generateExport(t.Context(), nil, GenerateExportInput{Format: "pdf"})
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		in       NormalizeValueInput
		wantType string
		wantCSS  string
	}{
		{
			name:     "inferred color",
			in:       NormalizeValueInput{Value: "rgb(255, 0, 0)"},
			wantType: "color",
			wantCSS:  "#FF0000",
		},
		{
			name:     "explicit dimension",
			in:       NormalizeValueInput{Value: 24.0, Type: "dimension"},
			wantType: "dimension",
			wantCSS:  "24px",
		},
		{
			name:     "shadow by category",
			in:       NormalizeValueInput{Value: map[string]any{"offsetY": 2.0, "blurRadius": 4.0}, Category: "shadow"},
			wantType: "shadow",
			wantCSS:  "0px 2px 4px 0px #00000040",
		},
		{
			name:     "unknown type falls back to inference",
			in:       NormalizeValueInput{Value: "bold", Type: "weight"},
			wantType: "string",
			wantCSS:  "bold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := normalizeValue(t.Context(), nil, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, out.Type)
			assert.Equal(t, tt.wantCSS, out.CSS)
		})
	}
}

func TestInferType(t *testing.T) {
	_, out, err := inferType(t.Context(), nil, InferTypeInput{Value: 1.5, Name: "line-height-body"})
	require.NoError(t, err)
	assert.Equal(t, string(token.TypeDimension), out.Type)
}

func TestServer_CallTool(t *testing.T) {
	ctx := t.Context()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := NewServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"generate_export", "normalize_value", "infer_type"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "infer_type",
		Arguments: map[string]any{"value": "#FF0000"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	assert.True(t, strings.Contains(text.Text, `"color"`), "got %s", text.Text)
}
