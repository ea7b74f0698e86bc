/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tailwind provides Tailwind CSS theme formatting for design tokens.
// Version 3 output is a CommonJS tailwind.config.js; version 4 output is a
// CSS file with an @theme block.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/token"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("tailwind").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.tmpl"),
)

// Version selects the Tailwind major version to target.
type Version string

const (
	// Version3 emits a CommonJS config module (default).
	Version3 Version = "3.x"
	// Version4 emits CSS with an @theme block.
	Version4 Version = "4.x"
)

// ParseVersion reads "3", "3.x", "v3", "4", "4.x" or "v4". Anything else,
// including "", is Version3.
func ParseVersion(s string) Version {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v") {
	case "4", "4.x", "4.0":
		return Version4
	default:
		return Version3
	}
}

// Options configures the Tailwind formatter.
type Options struct {
	Version Version
}

// Formatter outputs Tailwind theme configuration.
type Formatter struct {
	opts Options
}

// New creates a new Tailwind formatter targeting version 3.
func New() *Formatter {
	return &Formatter{opts: Options{Version: Version3}}
}

// NewWithOptions creates a new Tailwind formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	opts.Version = ParseVersion(string(opts.Version))
	return &Formatter{opts: opts}
}

// Extension returns the file extension for the configured version.
func (f *Formatter) Extension() string {
	if f.opts.Version == Version4 {
		return ".css"
	}
	return ".js"
}

// MimeType returns the MIME type for the configured version.
func (f *Formatter) MimeType() string {
	if f.opts.Version == Version4 {
		return "text/css"
	}
	return "application/javascript"
}

// Format converts tokens to a Tailwind theme.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	if f.opts.Version == Version4 {
		return f.formatV4(tokens, opts)
	}
	return f.formatV3(tokens, opts)
}

type v3Section struct {
	Name string
	Body string
}

type v3Data struct {
	Header   string
	Empty    bool
	Sections []v3Section
	Unmapped []string
}

func (f *Formatter) formatV3(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	trees := make(map[Section]*formatter.Node)
	var unmapped []string

	ordered := formatter.Ordered(tokens)
	for _, tok := range ordered {
		section := Classify(tok)
		if section == "" {
			unmapped = append(unmapped, tok.CSSVariableName())
			continue
		}
		value, ok := v3Value(tok, section)
		if !ok {
			unmapped = append(unmapped, tok.CSSVariableName())
			continue
		}
		tree := trees[section]
		if tree == nil {
			tree = formatter.NewNode()
			trees[section] = tree
		}
		if err := tree.Insert(keyPath(tok, section), value); err != nil {
			logger.Warn("skipping %s in %s: %v", tok.CSSVariableName(), section, err)
		}
	}

	data := v3Data{
		Header:   formatter.FormatHeader(opts.Header, formatter.CStyleComments),
		Empty:    len(ordered) == 0,
		Unmapped: unmapped,
	}
	for _, section := range Sections() {
		if tree, ok := trees[section]; ok {
			data.Sections = append(data.Sections, v3Section{
				Name: string(section),
				Body: jsObject(tree, ""),
			})
		}
	}
	return execute("v3.js.tmpl", data)
}

// v3Value renders a token for the JS config: a quoted CSS value, or an
// array literal for font stacks.
func v3Value(tok *token.Token, section Section) (string, bool) {
	if section == FontFamily {
		if items, ok := stringList(tok.Value); ok {
			quoted := make([]string, len(items))
			for i, item := range items {
				quoted[i] = jsString(item)
			}
			return "[" + strings.Join(quoted, ", ") + "]", true
		}
	}
	value, ok := formatter.TokenCSSValue(tok)
	if !ok {
		return "", false
	}
	return jsString(value), true
}

// keyPath returns the theme key of a token, nested under its subcategory.
// Category and section prefixes are dropped, so "font-weight-bold" in
// fontWeight becomes "bold".
func keyPath(tok *token.Token, section Section) []string {
	var path []string
	if sub := formatter.ToKebabCase(tok.Subcategory); sub != "" {
		path = append(path, sub)
	}
	key := formatter.StripCategoryPrefix(tok.Name, tok.Category)
	for _, prefix := range section.prefixes() {
		if rest, ok := strings.CutPrefix(key, prefix+"-"); ok && rest != "" {
			key = rest
			break
		}
	}
	return append(path, key)
}

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsObject renders a Node of pre-rendered JS values as an object literal.
func jsObject(n *formatter.Node, indent string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	inner := indent + "  "
	for _, key := range n.Keys() {
		v, _ := n.Get(key)
		sb.WriteString(inner + jsKey(key) + ": ")
		switch val := v.(type) {
		case *formatter.Node:
			sb.WriteString(jsObject(val, inner))
		default:
			sb.WriteString(fmt.Sprint(val))
		}
		sb.WriteString(",\n")
	}
	sb.WriteString(indent + "}")
	return sb.String()
}

func jsKey(key string) string {
	if identPattern.MatchString(key) {
		return key
	}
	return jsString(key)
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

func jsString(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}

func stringList(v any) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, strings.Trim(strings.TrimSpace(s), `"'`))
		}
		return out, true
	}
	return nil, false
}

type cssVar struct {
	Name  string
	Value string
}

type v4Section struct {
	Title string
	Vars  []cssVar
}

type v4Data struct {
	Header   string
	Empty    bool
	Comments bool
	Sections []v4Section
	Extra    []cssVar
}

func (f *Formatter) formatV4(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	bySection := make(map[Section]*v4Section)
	var extra []cssVar

	ordered := formatter.Ordered(tokens)
	for _, tok := range ordered {
		value, ok := formatter.TokenCSSValue(tok)
		if !ok {
			logger.Debug("skipping %s: value cannot be rendered", tok.CSSVariableName())
			continue
		}
		section := Classify(tok)
		namespace := section.Namespace()
		if namespace == "" {
			extra = append(extra, cssVar{Name: tok.CSSVariableName(), Value: value})
			continue
		}
		s := bySection[section]
		if s == nil {
			s = &v4Section{Title: formatter.ToTitleCase(string(section))}
			bySection[section] = s
		}
		name := "--" + namespace + "-" + strings.Join(keyPath(tok, section), "-")
		s.Vars = append(s.Vars, cssVar{Name: name, Value: value})
	}

	data := v4Data{
		Header:   formatter.FormatHeader(opts.Header, formatter.CStyleComments),
		Empty:    len(ordered) == 0,
		Comments: opts.IncludeComments,
		Extra:    extra,
	}
	for _, section := range Sections() {
		if s, ok := bySection[section]; ok {
			data.Sections = append(data.Sections, *s)
		}
	}
	return execute("v4.css.tmpl", data)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
