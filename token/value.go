/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"bennypowers.dev/tokenpipe/dimension"
	"bennypowers.dev/tokenpipe/shadow"
)

// Value is the canonical, type-tagged form of a token value.
// The variants are ColorValue, DimensionValue, ShadowValue, NumberValue and
// StringValue; build them with the normalize package.
type Value interface {
	Type() Type
	sealed()
}

// ColorValue is a color normalized to "#RRGGBB" uppercase.
type ColorValue struct {
	Hex string `json:"hex"`
	// Alpha is carried through edits but not interpreted.
	Alpha *float64 `json:"alpha,omitempty"`
}

// DimensionValue is a number with an explicit unit.
type DimensionValue struct {
	dimension.Dimension
}

// ShadowValue is a single box-shadow with every field populated.
type ShadowValue struct {
	shadow.Shadow
}

// NumberValue is a unitless number such as a font weight.
type NumberValue struct {
	Value float64 `json:"value"`
}

// StringValue is an opaque string, used when no other shape matches.
type StringValue struct {
	Value string `json:"value"`
}

func (ColorValue) Type() Type     { return TypeColor }
func (DimensionValue) Type() Type { return TypeDimension }
func (ShadowValue) Type() Type    { return TypeShadow }
func (NumberValue) Type() Type    { return TypeNumber }
func (StringValue) Type() Type    { return TypeString }

func (ColorValue) sealed()     {}
func (DimensionValue) sealed() {}
func (ShadowValue) sealed()    {}
func (NumberValue) sealed()    {}
func (StringValue) sealed()    {}
