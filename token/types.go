/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Type tags the kind of value a token holds.
type Type string

// Token types.
const (
	TypeColor     Type = "color"
	TypeDimension Type = "dimension"
	TypeShadow    Type = "shadow"
	TypeNumber    Type = "number"
	TypeString    Type = "string"
)

// Types lists every token type.
func Types() []Type {
	return []Type{TypeColor, TypeDimension, TypeShadow, TypeNumber, TypeString}
}

// ParseType returns the Type named by s, or false when s is not a type.
func ParseType(s string) (Type, bool) {
	for _, t := range Types() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// DTCG returns the $type used for this type in DTCG JSON.
func (t Type) DTCG() string {
	switch t {
	case TypeColor, TypeDimension, TypeShadow, TypeNumber:
		return string(t)
	default:
		return "string"
	}
}
