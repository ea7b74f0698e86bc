/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package num coerces loosely typed token values into numbers and renders
// numbers the way CSS expects them.
package num

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float reports the numeric value of v for any Go numeric kind, json.Number,
// or a string holding a complete decimal number.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// IsNumber reports whether v is a Go numeric kind (strings excluded).
func IsNumber(v any) bool {
	if _, ok := v.(string); ok {
		return false
	}
	_, ok := Float(v)
	return ok
}

// Format renders f without trailing zeros: 400 -> "400", 1.5 -> "1.5".
// NaN and infinities render as "0" since CSS has no literal for them.
func Format(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	if f == 0 {
		// normalizes -0
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
