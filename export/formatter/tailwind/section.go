/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tailwind

import (
	"strings"

	"bennypowers.dev/tokenpipe/export/formatter"
	"bennypowers.dev/tokenpipe/token"
)

// Section is a key of theme.extend in a Tailwind 3 config.
type Section string

// Theme sections, in output order.
const (
	Colors        Section = "colors"
	Spacing       Section = "spacing"
	BorderRadius  Section = "borderRadius"
	FontSize      Section = "fontSize"
	FontWeight    Section = "fontWeight"
	LineHeight    Section = "lineHeight"
	LetterSpacing Section = "letterSpacing"
	FontFamily    Section = "fontFamily"
	BoxShadow     Section = "boxShadow"
	Opacity       Section = "opacity"
	ZIndex        Section = "zIndex"
)

// Sections lists every theme section in output order.
func Sections() []Section {
	return []Section{
		Colors, Spacing, BorderRadius, FontSize, FontWeight, LineHeight,
		LetterSpacing, FontFamily, BoxShadow, Opacity, ZIndex,
	}
}

// Namespace returns the Tailwind 4 theme variable namespace of the section,
// or "" when version 4 has none.
func (s Section) Namespace() string {
	switch s {
	case Colors:
		return "color"
	case Spacing:
		return "spacing"
	case BorderRadius:
		return "radius"
	case FontSize:
		return "text"
	case FontWeight:
		return "font-weight"
	case LineHeight:
		return "leading"
	case LetterSpacing:
		return "tracking"
	case FontFamily:
		return "font"
	case BoxShadow:
		return "shadow"
	default:
		return ""
	}
}

// prefixes lists name prefixes that repeat the section and are dropped
// from theme keys.
func (s Section) prefixes() []string {
	switch s {
	case Colors:
		return []string{"color"}
	case Spacing:
		return []string{"spacing", "space"}
	case BorderRadius:
		return []string{"border-radius", "radius", "rounded"}
	case FontSize:
		return []string{"font-size", "text"}
	case FontWeight:
		return []string{"font-weight", "weight"}
	case LineHeight:
		return []string{"line-height", "leading"}
	case LetterSpacing:
		return []string{"letter-spacing", "tracking"}
	case FontFamily:
		return []string{"font-family", "family", "font"}
	case BoxShadow:
		return []string{"box-shadow", "shadow"}
	case Opacity:
		return []string{"opacity"}
	case ZIndex:
		return []string{"z-index"}
	}
	return nil
}

// keywordSections are matched against "<category>/<name>" in kebab case.
// letter-spacing precedes the generic spacing fallback for dimensions.
var keywordSections = []struct {
	keyword string
	section Section
}{
	{"radius", BorderRadius},
	{"font-size", FontSize},
	{"font-weight", FontWeight},
	{"line-height", LineHeight},
	{"leading", LineHeight},
	{"letter-spacing", LetterSpacing},
	{"tracking", LetterSpacing},
	{"font-family", FontFamily},
	{"family", FontFamily},
	{"opacity", Opacity},
	{"z-index", ZIndex},
}

// Classify returns the theme section a token belongs in, or "" when no
// section fits.
func Classify(tok *token.Token) Section {
	typ := tok.Type()
	switch typ {
	case token.TypeColor:
		return Colors
	case token.TypeShadow:
		return BoxShadow
	}

	key := formatter.ToKebabCase(tok.Category) + "/" + formatter.ToKebabCase(tok.Name)
	for _, ks := range keywordSections {
		if strings.Contains(key, ks.keyword) {
			return ks.section
		}
	}

	switch typ {
	case token.TypeDimension:
		return Spacing
	case token.TypeNumber:
		if strings.Contains(key, "weight") {
			return FontWeight
		}
	}
	return ""
}
