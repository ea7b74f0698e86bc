/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color converts between the hex, rgb and hsl color notations used by
// color tokens.
//
// Every function here is total: malformed input degrades to black ("#000000")
// instead of failing, so editors can call into the package on every keystroke.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenpipe/internal/num"
)

// Black is the fallback for any color that cannot be recovered.
const Black = "#000000"

// AlphaThreshold is the value below which alpha is included in CSS output.
const AlphaThreshold = 0.999

var (
	validHexPattern  = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	bareHexPattern   = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	colorHexPattern  = regexp.MustCompile(`^#([0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	colorFuncPattern = regexp.MustCompile(`(?i)^(rgba?|hsla?)\(.*\)$`)
)

// RGB holds integer channels in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds integer-rounded hue [0,360), saturation and lightness [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// NormalizeHex returns the 6-digit uppercase "#RRGGBB" form of a 3- or
// 6-digit hex color, with or without the leading '#'.
// Anything else yields Black.
func NormalizeHex(input string) string {
	hex, ok := ParseHexInput(input)
	if !ok {
		return Black
	}
	return hex
}

// ParseHexInput normalizes input like NormalizeHex and additionally reports
// whether the input was a valid hex color, so editors can flag it.
func ParseHexInput(input string) (string, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if !bareHexPattern.MatchString(s) {
		return Black, false
	}
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return Black, false
	}
	return "#" + strings.ToUpper(s), true
}

// IsValidHex reports whether input is exactly "#RGB" or "#RRGGBB".
func IsValidHex(input string) bool {
	return validHexPattern.MatchString(input)
}

// IsColorString reports whether s looks like a hex color (3, 4, 6 or 8
// digits) or an rgb()/rgba()/hsl()/hsla() function.
func IsColorString(s string) bool {
	s = strings.TrimSpace(s)
	return colorHexPattern.MatchString(s) || colorFuncPattern.MatchString(s)
}

// HexToRGB returns the channels of hex, or black when hex is invalid.
func HexToRGB(hex string) RGB {
	h := NormalizeHex(hex)
	r, _ := strconv.ParseUint(h[1:3], 16, 8)
	g, _ := strconv.ParseUint(h[3:5], 16, 8)
	b, _ := strconv.ParseUint(h[5:7], 16, 8)
	return RGB{R: int(r), G: int(g), B: int(b)}
}

// RGBToHex rounds each channel and clamps it to [0,255] before formatting.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", channel(r), channel(g), channel(b))
}

// Hex returns the "#RRGGBB" form of c.
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

// HexToHSL converts hex to integer-rounded HSL.
// The hue of achromatic colors is 0.
func HexToHSL(hex string) HSL {
	rgb := HexToRGB(hex)
	c := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	h, s, l := c.Hsl()
	hue := int(math.Round(h)) % 360
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToHex converts hue (degrees, wrapped into [0,360)), saturation and
// lightness (percent, clamped to [0,100]) to "#RRGGBB".
//
// The round trip hex -> hsl -> hex is exact for primaries and grays; other
// colors can drift by one unit per channel because HexToHSL rounds to integers.
func HSLToHex(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100
	c := colorful.Hsl(h, s, l).Clamped()
	return RGBToHex(c.R*255, c.G*255, c.B*255)
}

// Parse reads any CSS color (hex with 3/4/6/8 digits, rgb[a](), hsl[a](),
// hwb(), named colors) and returns its "#RRGGBB" form and alpha.
func Parse(input string) (string, float64, error) {
	s := strings.TrimSpace(input)
	if hex, ok := ParseHexInput(s); ok {
		return hex, 1, nil
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Black, 1, fmt.Errorf("parse color %q: %w", input, err)
	}
	return RGBToHex(c.R*255, c.G*255, c.B*255), c.A, nil
}

// FormatRGB renders c as rgb(r, g, b), or rgba(r, g, b, a) when alpha is
// below AlphaThreshold.
func FormatRGB(c RGB, alpha float64) string {
	if alpha < AlphaThreshold {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, num.Format(clamp(alpha, 0, 1)))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FormatHSL renders c as hsl(h, s%, l%).
func FormatHSL(c HSL) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

func channel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(clamp(math.Round(v), 0, 255))
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
