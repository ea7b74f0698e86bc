/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dtcg provides DTCG-compliant JSON formatting for design tokens.
package dtcg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/tokenpipe/color"
	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/normalize"
	"bennypowers.dev/tokenpipe/shadow"
	"bennypowers.dev/tokenpipe/token"
)

// EmptyDescription is the root $description of a document generated from
// no tokens.
const EmptyDescription = "No tokens to export"

// FigmaExtension is the $extensions key carrying Figma metadata.
const FigmaExtension = "com.figma"

// Options configures the DTCG formatter.
type Options struct {
	// PrettyPrint indents with two spaces; otherwise output is compact.
	PrettyPrint bool

	// IncludeFigmaMetadata adds $extensions["com.figma"].variableId to
	// tokens that carry a Figma variable ID.
	IncludeFigmaMetadata bool
}

// Formatter outputs DTCG-compliant JSON.
type Formatter struct {
	opts Options
}

// New creates a new DTCG formatter with pretty printing.
func New() *Formatter {
	return &Formatter{opts: Options{PrettyPrint: true}}
}

// NewWithOptions creates a new DTCG formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format converts tokens to DTCG JSON, nested by category, subcategory and
// name. Groups and tokens keep their input order.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	return f.encode(f.Serialize(tokens, opts))
}

// Serialize builds the nested DTCG document for tokens.
func (f *Formatter) Serialize(tokens []*token.Token, opts formatter.Options) *formatter.Node {
	root := formatter.NewNode()
	if h := strings.TrimSpace(opts.Header); h != "" {
		root.Set("$description", h)
	}

	ordered := formatter.Ordered(tokens)
	if len(ordered) == 0 {
		if _, ok := root.Get("$description"); !ok {
			root.Set("$description", EmptyDescription)
		}
		return root
	}

	for _, tok := range ordered {
		path := tokenPath(tok)
		if err := root.Insert(path, f.leaf(tok)); err != nil {
			logger.Warn("skipping %s: %v", tok.CSSVariableName(), err)
		}
	}
	return root
}

func tokenPath(tok *token.Token) []string {
	var path []string
	for _, segment := range []string{tok.Category, tok.Subcategory} {
		if s := strings.TrimSpace(segment); s != "" {
			path = append(path, s)
		}
	}
	name := strings.TrimSpace(tok.Name)
	if name == "" {
		name = tok.Key()
	}
	return append(path, name)
}

func (f *Formatter) leaf(tok *token.Token) *formatter.Node {
	typ := tok.Type()
	n := formatter.NewNode()
	n.Set("$type", typ.DTCG())
	value := Value(tok.Value, typ)
	if _, err := json.Marshal(value); err != nil {
		logger.Debug("%s: %v; rendering as string", tok.CSSVariableName(), err)
		value = normalize.Stringify(tok.Value)
	}
	n.Set("$value", value)
	if tok.Description != "" {
		n.Set("$description", tok.Description)
	}
	if f.opts.IncludeFigmaMetadata && tok.FigmaVariableID != "" {
		figma := formatter.NewNode()
		figma.Set("variableId", tok.FigmaVariableID)
		ext := formatter.NewNode()
		ext.Set(FigmaExtension, figma)
		n.Set("$extensions", ext)
	}
	return n
}

// Value converts a raw token value to its DTCG $value: colors as hex
// strings (with an alpha byte when translucent), dimensions as "16px",
// shadows as objects of dimension strings.
func Value(raw any, typ token.Type) any {
	switch typ {
	case token.TypeColor:
		if str, ok := raw.(string); ok {
			if _, _, err := color.Parse(str); err != nil {
				return str
			}
		}
		cv := normalize.Canonicalize(raw, typ).(token.ColorValue)
		if cv.Alpha != nil && *cv.Alpha < color.AlphaThreshold {
			a := math.Max(0, *cv.Alpha)
			return cv.Hex + fmt.Sprintf("%02X", int(math.Round(a*255)))
		}
		return cv.Hex
	case token.TypeDimension:
		if str, ok := raw.(string); ok && !dimension.Pattern.MatchString(strings.TrimSpace(str)) {
			return str
		}
		return normalize.ExtractDimensionValue(raw, "").String()
	case token.TypeShadow:
		list := normalize.ExtractShadowList(raw)
		if len(list) == 1 {
			return shadowObject(list[0])
		}
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = shadowObject(s)
		}
		return out
	case token.TypeNumber:
		f := normalize.Canonicalize(raw, typ).(token.NumberValue).Value
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0.0
		}
		return f
	}
	switch v := raw.(type) {
	case string, []any, []string:
		return v
	}
	return normalize.Stringify(raw)
}

func shadowObject(s shadow.Shadow) *formatter.Node {
	n := formatter.NewNode()
	n.Set("color", s.Color)
	n.Set("offsetX", dim(s.X, s.XUnit))
	n.Set("offsetY", dim(s.Y, s.YUnit))
	n.Set("blur", dim(s.Blur, s.BlurUnit))
	n.Set("spread", dim(s.Spread, s.SpreadUnit))
	if s.Inset {
		n.Set("inset", true)
	}
	return n
}

func dim(v float64, unit string) string {
	return dimension.ParseValue(dimension.Dimension{Value: v, Unit: unit}, "").String()
}

func (f *Formatter) encode(doc *formatter.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if f.opts.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding DTCG JSON: %w", err)
	}
	return buf.Bytes(), nil
}
