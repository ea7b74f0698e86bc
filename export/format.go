/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for a format id that names no generator.
var ErrUnknownFormat = errors.New("unknown format")

// Format represents an export output format.
type Format string

const (
	// FormatCSS outputs CSS custom properties under :root.
	FormatCSS Format = "css"

	// FormatJSON outputs DTCG JSON.
	FormatJSON Format = "json"

	// FormatTailwind outputs a Tailwind theme (3.x config module or 4.x CSS).
	FormatTailwind Format = "tailwind"

	// FormatSCSS outputs SCSS variables or a SCSS map.
	FormatSCSS Format = "scss"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatJSON),
		string(FormatTailwind),
		string(FormatSCSS),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return FormatCSS, nil
	case "json", "dtcg":
		return FormatJSON, nil
	case "tailwind", "tw":
		return FormatTailwind, nil
	case "scss", "sass":
		return FormatSCSS, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// FileExtension returns the file extension for format, with Tailwind at its
// default version. Unknown formats yield ".txt".
func FileExtension(format Format) string {
	return FileExtensionFor(format, Options{})
}

// FileExtensionFor returns the file extension for format under opts;
// Tailwind 4.x output is CSS.
func FileExtensionFor(format Format, opts Options) string {
	switch format {
	case FormatCSS:
		return ".css"
	case FormatJSON:
		return ".json"
	case FormatTailwind:
		return tailwindFormatter(opts).Extension()
	case FormatSCSS:
		return ".scss"
	default:
		return ".txt"
	}
}

// MimeType returns the MIME type for format, with Tailwind at its default
// version. Unknown formats yield "text/plain".
func MimeType(format Format) string {
	return MimeTypeFor(format, Options{})
}

// MimeTypeFor returns the MIME type for format under opts.
func MimeTypeFor(format Format, opts Options) string {
	switch format {
	case FormatCSS:
		return "text/css"
	case FormatJSON:
		return "application/json"
	case FormatTailwind:
		return tailwindFormatter(opts).MimeType()
	case FormatSCSS:
		return "text/x-scss"
	default:
		return "text/plain"
	}
}
