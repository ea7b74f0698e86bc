/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcpserver provides the mcp command, which serves tokenpipe's
// generators and value tools over the Model Context Protocol on stdio.
package mcpserver

import (
	"context"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenpipe/export"
	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/internal/version"
	"bennypowers.dev/tokenpipe/normalize"
	"bennypowers.dev/tokenpipe/resolver"
	"bennypowers.dev/tokenpipe/token"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve export and value tools over MCP (stdio)",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing:

  generate_export   render tokens as CSS, DTCG JSON, Tailwind or SCSS
  normalize_value   read a value as a color, dimension, shadow, number or string
  infer_type        guess a token's type from its value, category and name`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol.
		logger.SetOutput(io.Discard)
		return NewServer().Run(cmd.Context(), &mcp.StdioTransport{})
	},
}

// NewServer creates an MCP server with every tokenpipe tool registered.
func NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "tokenpipe", Version: version.Get()}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_export",
		Description: "Render design tokens as CSS custom properties, DTCG JSON, a Tailwind theme or SCSS variables.",
	}, generateExport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize_value",
		Description: "Normalize a token value to its canonical form and CSS text.",
	}, normalizeValue)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "infer_type",
		Description: "Infer a token's type (color, dimension, shadow, number or string) from its value, category and name.",
	}, inferType)

	return server
}

// TokenInput is a token record as sent by MCP clients.
type TokenInput struct {
	Category        string `json:"category" jsonschema:"top-level group, e.g. color or spacing"`
	Subcategory     string `json:"subcategory,omitempty"`
	Name            string `json:"name"`
	Value           any    `json:"value" jsonschema:"raw value: a string, number, list or object"`
	CSSVariable     string `json:"css_variable,omitempty" jsonschema:"custom property name; derived from category and name when empty"`
	SortOrder       int    `json:"sort_order,omitempty"`
	Description     string `json:"description,omitempty"`
	FigmaVariableID string `json:"figma_variable_id,omitempty"`
}

func (t TokenInput) token() *token.Token {
	return &token.Token{
		Category:        t.Category,
		Subcategory:     t.Subcategory,
		Name:            t.Name,
		Value:           t.Value,
		CSSVariable:     t.CSSVariable,
		SortOrder:       t.SortOrder,
		Description:     t.Description,
		FigmaVariableID: t.FigmaVariableID,
	}
}

// GenerateExportInput is the input of generate_export.
type GenerateExportInput struct {
	Format  string         `json:"format" jsonschema:"css, json, tailwind or scss"`
	Tokens  []TokenInput   `json:"tokens"`
	Options export.Options `json:"options,omitempty"`
}

// GenerateExportOutput is the result of generate_export.
type GenerateExportOutput struct {
	Content   string `json:"content"`
	Extension string `json:"extension"`
	MimeType  string `json:"mimeType"`
}

func generateExport(_ context.Context, _ *mcp.CallToolRequest, in GenerateExportInput) (*mcp.CallToolResult, GenerateExportOutput, error) {
	format, err := export.ParseFormat(in.Format)
	if err != nil {
		return nil, GenerateExportOutput{}, err
	}

	tokens := make([]*token.Token, len(in.Tokens))
	for i, t := range in.Tokens {
		if t.SortOrder == 0 {
			t.SortOrder = i
		}
		tokens[i] = t.token()
	}
	tokens, err = resolver.ResolveAliases(tokens)
	if err != nil {
		return nil, GenerateExportOutput{}, err
	}

	content, err := export.Generate(format, tokens, in.Options)
	if err != nil {
		return nil, GenerateExportOutput{}, err
	}
	return nil, GenerateExportOutput{
		Content:   content,
		Extension: export.FileExtensionFor(format, in.Options),
		MimeType:  export.MimeTypeFor(format, in.Options),
	}, nil
}

// NormalizeValueInput is the input of normalize_value.
type NormalizeValueInput struct {
	Value    any    `json:"value"`
	Type     string `json:"type,omitempty" jsonschema:"color, dimension, shadow, number or string; inferred when empty"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name,omitempty"`
}

// NormalizeValueOutput is the result of normalize_value.
type NormalizeValueOutput struct {
	Type      string `json:"type"`
	Canonical any    `json:"canonical"`
	CSS       string `json:"css"`
}

func normalizeValue(_ context.Context, _ *mcp.CallToolRequest, in NormalizeValueInput) (*mcp.CallToolResult, NormalizeValueOutput, error) {
	typ, ok := token.ParseType(in.Type)
	if !ok {
		typ = token.InferType(in.Value, in.Category, in.Name)
	}
	canonical := normalize.Canonicalize(in.Value, typ)
	css, err := formatter.CSSValue(canonical)
	if err != nil {
		css = normalize.Stringify(in.Value)
	}
	return nil, NormalizeValueOutput{Type: string(typ), Canonical: canonical, CSS: css}, nil
}

// InferTypeInput is the input of infer_type.
type InferTypeInput struct {
	Value    any    `json:"value"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name,omitempty"`
}

// InferTypeOutput is the result of infer_type.
type InferTypeOutput struct {
	Type string `json:"type"`
}

func inferType(_ context.Context, _ *mcp.CallToolRequest, in InferTypeInput) (*mcp.CallToolResult, InferTypeOutput, error) {
	return nil, InferTypeOutput{Type: string(token.InferType(in.Value, in.Category, in.Name))}, nil
}
