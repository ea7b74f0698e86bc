/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dimension parses "<number><unit>" values such as "16px" or "1.5rem".
package dimension

import (
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/tokenpipe/internal/num"
)

// DefaultUnit is used when neither the input nor the caller names a unit.
const DefaultUnit = "px"

// Units lists the units a dimension token may carry.
var Units = []string{"px", "rem", "em", "%", "pt", "vw", "vh"}

// Pattern matches a complete dimension string with an optional unit.
var Pattern = regexp.MustCompile(`(?i)^(-?\d+\.?\d*)\s*(px|rem|em|%|pt|vw|vh)?$`)

// leadingNumberPattern mirrors JavaScript's parseFloat, which reads the
// longest numeric prefix and ignores the rest.
var leadingNumberPattern = regexp.MustCompile(`^\s*[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)

// Dimension is a number paired with a CSS unit.
type Dimension struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// String renders the dimension as CSS, e.g. "16px".
func (d Dimension) String() string {
	return num.Format(d.Value) + d.Unit
}

// IsUnit reports whether unit is one of Units (case-insensitive).
func IsUnit(unit string) bool {
	unit = strings.ToLower(unit)
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// HasUnit reports whether s is a number followed by an explicit unit.
func HasUnit(s string) bool {
	m := Pattern.FindStringSubmatch(strings.TrimSpace(s))
	return m != nil && m[2] != ""
}

// ParseValue reads input as a dimension. It accepts Dimension values, maps
// shaped {value, unit}, plain numbers and strings like "16px". Missing units
// fall back to defaultUnit ("px" when empty). Input that cannot be read
// yields {0, defaultUnit}.
func ParseValue(input any, defaultUnit string) Dimension {
	if defaultUnit == "" {
		defaultUnit = DefaultUnit
	}
	zero := Dimension{Value: 0, Unit: defaultUnit}

	switch v := input.(type) {
	case nil:
		return zero
	case Dimension:
		if v.Unit == "" {
			v.Unit = defaultUnit
		}
		return v
	case *Dimension:
		if v == nil {
			return zero
		}
		return ParseValue(*v, defaultUnit)
	case map[string]any:
		return parseObject(v, defaultUnit)
	case string:
		return parseString(v, defaultUnit)
	}

	if f, ok := num.Float(input); ok {
		return Dimension{Value: f, Unit: defaultUnit}
	}
	return zero
}

func parseObject(obj map[string]any, defaultUnit string) Dimension {
	unit, _ := obj["unit"].(string)
	var d Dimension
	switch raw := obj["value"].(type) {
	case string:
		d = parseString(raw, defaultUnit)
	default:
		d = ParseValue(raw, defaultUnit)
	}
	if unit != "" {
		d.Unit = unit
	}
	return d
}

func parseString(s string, defaultUnit string) Dimension {
	s = strings.TrimSpace(s)
	if m := Pattern.FindStringSubmatch(s); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		unit := strings.ToLower(m[2])
		if unit == "" {
			unit = defaultUnit
		}
		return Dimension{Value: value, Unit: unit}
	}
	if prefix := leadingNumberPattern.FindString(s); prefix != "" {
		if value, err := strconv.ParseFloat(strings.TrimSpace(prefix), 64); err == nil {
			return Dimension{Value: value, Unit: defaultUnit}
		}
	}
	return Dimension{Value: 0, Unit: defaultUnit}
}

// ClampValue coerces raw to a number (0 when it is not numeric) and bounds it
// by whichever of min and max are non-nil.
func ClampValue(raw any, min, max *float64) float64 {
	value, ok := num.Float(raw)
	if !ok {
		value = 0
	}
	if max != nil && value > *max {
		value = *max
	}
	if min != nil && value < *min {
		value = *min
	}
	return value
}
