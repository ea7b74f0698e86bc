/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package shadow parses and serializes CSS box-shadow values.
package shadow

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/internal/num"
)

// DefaultColor is the color of a shadow that names none.
const DefaultColor = "#00000040"

// Shadow is the structured form of a single box-shadow.
type Shadow struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Blur       float64 `json:"blur"`
	Spread     float64 `json:"spread"`
	Color      string  `json:"color"`
	Inset      bool    `json:"inset"`
	XUnit      string  `json:"xUnit"`
	YUnit      string  `json:"yUnit"`
	BlurUnit   string  `json:"blurUnit"`
	SpreadUnit string  `json:"spreadUnit"`
}

// Defaults returns the shadow used to fill any field an input leaves out.
func Defaults() Shadow {
	return Shadow{
		X:          0,
		Y:          4,
		Blur:       8,
		Spread:     0,
		Color:      DefaultColor,
		Inset:      false,
		XUnit:      dimension.DefaultUnit,
		YUnit:      dimension.DefaultUnit,
		BlurUnit:   dimension.DefaultUnit,
		SpreadUnit: dimension.DefaultUnit,
	}
}

// Color patterns in extraction priority order.
var colorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`#[0-9A-Fa-f]{3,8}\b`),
	regexp.MustCompile(`(?i)rgba?\([^)]*\)`),
	regexp.MustCompile(`(?i)hsla?\([^)]*\)`),
}

var (
	insetPattern  = regexp.MustCompile(`(?i)\binset\b`)
	numberPattern = regexp.MustCompile(`(-?\d+\.?\d*)(px|rem|em|%)?`)
	wordPattern   = regexp.MustCompile(`[A-Za-z]+`)
)

// objectKeys maps each canonical field to the key spellings accepted on input,
// canonical spelling first.
var objectKeys = map[string][]string{
	"x":      {"x", "offsetX"},
	"y":      {"y", "offsetY"},
	"blur":   {"blur", "blurRadius"},
	"spread": {"spread", "spreadRadius"},
}

// ObjectKeys returns the accepted spellings for a canonical field name
// (x, y, blur, spread).
func ObjectKeys(field string) []string {
	return objectKeys[field]
}

// LooksLikeShadow reports whether obj carries shadow-specific keys.
func LooksLikeShadow(obj map[string]any) bool {
	for _, key := range []string{"blur", "blurRadius", "offsetX", "offsetY"} {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

// ParseValue reads a shadow from a structured object, a Shadow, or a CSS
// box-shadow string. Missing fields take their Defaults.
func ParseValue(value any) Shadow {
	switch v := value.(type) {
	case Shadow:
		return fillUnits(v)
	case *Shadow:
		if v == nil {
			return Defaults()
		}
		return fillUnits(*v)
	case map[string]any:
		return parseObject(v)
	case string:
		return ParseCSSString(v, Defaults())
	default:
		return Defaults()
	}
}

func parseObject(obj map[string]any) Shadow {
	s := Defaults()
	readOffset(obj, "x", &s.X, &s.XUnit)
	readOffset(obj, "y", &s.Y, &s.YUnit)
	readOffset(obj, "blur", &s.Blur, &s.BlurUnit)
	readOffset(obj, "spread", &s.Spread, &s.SpreadUnit)

	if c, ok := obj["color"].(string); ok && strings.TrimSpace(c) != "" {
		s.Color = strings.TrimSpace(c)
	}
	switch inset := obj["inset"].(type) {
	case bool:
		s.Inset = inset
	case string:
		s.Inset, _ = strconv.ParseBool(inset)
	}
	for field, target := range map[string]*string{
		"xUnit":      &s.XUnit,
		"yUnit":      &s.YUnit,
		"blurUnit":   &s.BlurUnit,
		"spreadUnit": &s.SpreadUnit,
	} {
		if u, ok := obj[field].(string); ok && u != "" {
			*target = u
		}
	}
	return s
}

// readOffset looks the field up under each accepted key. Dimension strings
// such as "2px" set the unit as well as the value.
func readOffset(obj map[string]any, field string, value *float64, unit *string) {
	for _, key := range objectKeys[field] {
		raw, ok := obj[key]
		if !ok || raw == nil {
			continue
		}
		d := dimension.ParseValue(raw, *unit)
		*value = d.Value
		*unit = d.Unit
		return
	}
}

// ParseCSSString parses a single CSS box-shadow such as
// "inset 0 2px 4px rgba(0, 0, 0, 0.2)". The first color found is used,
// preferring hex over rgb() over hsl(); numbers are assigned in order to x,
// y, blur and spread. Anything absent keeps its value from defaults.
func ParseCSSString(css string, defaults Shadow) Shadow {
	s := fillUnits(defaults)
	working := strings.TrimSpace(css)

	if insetPattern.MatchString(working) {
		s.Inset = true
		working = strings.TrimSpace(insetPattern.ReplaceAllString(working, " "))
	}

	found := false
	for _, pattern := range colorPatterns {
		if loc := pattern.FindStringIndex(working); loc != nil {
			s.Color = working[loc[0]:loc[1]]
			working = working[:loc[0]] + " " + working[loc[1]:]
			found = true
			break
		}
	}
	if !found {
		working = extractNamedColor(working, &s)
	}

	fields := []struct {
		value *float64
		unit  *string
	}{
		{&s.X, &s.XUnit},
		{&s.Y, &s.YUnit},
		{&s.Blur, &s.BlurUnit},
		{&s.Spread, &s.SpreadUnit},
	}
	matches := numberPattern.FindAllStringSubmatch(working, -1)
	for i, m := range matches {
		if i >= len(fields) {
			break
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		*fields[i].value = value
		unit := strings.ToLower(m[2])
		if unit == "" {
			unit = dimension.DefaultUnit
		}
		*fields[i].unit = unit
	}

	return s
}

// extractNamedColor handles shadows colored with a keyword such as "black"
// or "transparent".
func extractNamedColor(working string, s *Shadow) string {
	for _, loc := range wordPattern.FindAllStringIndex(working, -1) {
		word := working[loc[0]:loc[1]]
		if isUnitWord(word) {
			continue
		}
		if _, err := csscolorparser.Parse(word); err == nil {
			s.Color = word
			return working[:loc[0]] + " " + working[loc[1]:]
		}
	}
	return working
}

func isUnitWord(word string) bool {
	switch strings.ToLower(word) {
	case "px", "rem", "em":
		return true
	}
	return false
}

// Serialize renders s as a CSS box-shadow value:
// "[inset ]{x}{xUnit} {y}{yUnit} {blur}{blurUnit} {spread}{spreadUnit} {color}".
func Serialize(s Shadow) string {
	s = fillUnits(s)
	color := s.Color
	if strings.TrimSpace(color) == "" {
		color = DefaultColor
	}
	parts := make([]string, 0, 6)
	if s.Inset {
		parts = append(parts, "inset")
	}
	parts = append(parts,
		num.Format(s.X)+s.XUnit,
		num.Format(s.Y)+s.YUnit,
		num.Format(s.Blur)+s.BlurUnit,
		num.Format(s.Spread)+s.SpreadUnit,
		color,
	)
	return strings.Join(parts, " ")
}

// ParseList parses a comma-separated list of shadows. Commas inside color
// functions do not split.
func ParseList(css string) []Shadow {
	var shadows []Shadow
	for _, part := range SplitTopLevel(css) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		shadows = append(shadows, ParseCSSString(part, Defaults()))
	}
	return shadows
}

// SerializeList renders shadows as a comma-separated box-shadow value.
func SerializeList(shadows []Shadow) string {
	parts := make([]string, len(shadows))
	for i, s := range shadows {
		parts[i] = Serialize(s)
	}
	return strings.Join(parts, ", ")
}

// SplitTopLevel splits s on commas that are not nested in parentheses.
func SplitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

func fillUnits(s Shadow) Shadow {
	for _, u := range []*string{&s.XUnit, &s.YUnit, &s.BlurUnit, &s.SpreadUnit} {
		if *u == "" {
			*u = dimension.DefaultUnit
		}
	}
	return s
}
