/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package options resolves generator options from flags, TOKENPIPE_*
// environment variables and the project config, in that order of
// precedence.
package options

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenpipe/export"
)

// EnvPrefix prefixes every environment variable tokenpipe reads.
const EnvPrefix = "TOKENPIPE"

// Flag names, which double as viper keys.
const (
	Minify               = "minify"
	IncludeComments      = "include-comments"
	ScopeClass           = "scope-class"
	PrettyPrint          = "pretty-print"
	IncludeFigmaMetadata = "include-figma-metadata"
	TailwindVersion      = "tailwind-version"
	UseMap               = "use-map"
	MapName              = "map-name"
	Header               = "header"
)

// AddExportFlags registers a flag for every export.Options field.
func AddExportFlags(flags *pflag.FlagSet) {
	flags.Bool(Minify, false, "Minify CSS output")
	flags.Bool(IncludeComments, false, "Add a comment before each category")
	flags.String(ScopeClass, "", "Also emit the variables under this class selector (CSS)")
	flags.Bool(PrettyPrint, false, "Indent JSON output")
	flags.Bool(IncludeFigmaMetadata, false, "Add Figma variable IDs to JSON $extensions")
	flags.String(TailwindVersion, string(defaultTailwindVersion), "Tailwind major version: 3.x or 4.x")
	flags.Bool(UseMap, false, "Emit SCSS as a single map")
	flags.String(MapName, "", `SCSS map name (default "tokens")`)
	flags.String(Header, "", "Comment written at the top of the output")
}

const defaultTailwindVersion = "3.x"

// New returns a viper instance bound to flags and TOKENPIPE_* variables.
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// Resolve layers flags over environment over the config's export section.
func Resolve(flags *pflag.FlagSet, fromConfig export.Options) (export.Options, error) {
	v, err := New(flags)
	if err != nil {
		return export.Options{}, err
	}
	if err := v.MergeConfigMap(configMap(fromConfig)); err != nil {
		return export.Options{}, fmt.Errorf("failed to merge config: %w", err)
	}

	return export.Options{
		Minify:               v.GetBool(Minify),
		IncludeComments:      v.GetBool(IncludeComments),
		ScopeClass:           v.GetString(ScopeClass),
		PrettyPrint:          v.GetBool(PrettyPrint),
		IncludeFigmaMetadata: v.GetBool(IncludeFigmaMetadata),
		TailwindVersion:      v.GetString(TailwindVersion),
		UseMap:               v.GetBool(UseMap),
		MapName:              v.GetString(MapName),
		Header:               v.GetString(Header),
	}, nil
}

// configMap lists the options a config file actually sets, so that unset
// fields fall through to flag defaults.
func configMap(o export.Options) map[string]any {
	m := map[string]any{}
	set := func(key string, value any, ok bool) {
		if ok {
			m[key] = value
		}
	}
	set(Minify, o.Minify, o.Minify)
	set(IncludeComments, o.IncludeComments, o.IncludeComments)
	set(ScopeClass, o.ScopeClass, o.ScopeClass != "")
	set(PrettyPrint, o.PrettyPrint, o.PrettyPrint)
	set(IncludeFigmaMetadata, o.IncludeFigmaMetadata, o.IncludeFigmaMetadata)
	set(TailwindVersion, o.TailwindVersion, o.TailwindVersion != "")
	set(UseMap, o.UseMap, o.UseMap)
	set(MapName, o.MapName, o.MapName != "")
	set(Header, o.Header, o.Header != "")
	return m
}
