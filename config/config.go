/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads project configuration for tokenpipe.
package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenpipe/export"
)

// Config represents a tokenpipe project configuration.
type Config struct {
	// Files specifies token files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Export holds default generator options.
	Export export.Options `yaml:"export" json:"export"`

	// Outputs lists the files `tokenpipe export` writes when no format is
	// given on the command line.
	Outputs []OutputSpec `yaml:"outputs" json:"outputs"`
}

// FileSpec represents a token file specification.
// It can be specified as a simple string path or as an object.
type FileSpec struct {
	// Path is the file path (supports ** globs).
	Path string `yaml:"path" json:"path"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// OutputSpec pairs an export format with the file it is written to.
// The string form is "format:path", e.g. "css:dist/tokens.css".
type OutputSpec struct {
	Format export.Format `yaml:"format" json:"format"`
	Path   string        `yaml:"path" json:"path"`
}

// ParseOutputSpec reads a "format:path" spec.
func ParseOutputSpec(s string) (OutputSpec, error) {
	name, path, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(path) == "" {
		return OutputSpec{}, fmt.Errorf("invalid output %q: expected format:path", s)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return OutputSpec{}, fmt.Errorf("invalid output %q: %w", s, err)
	}
	return OutputSpec{Format: format, Path: strings.TrimSpace(path)}, nil
}

// String renders the spec in its "format:path" form.
func (o OutputSpec) String() string {
	return string(o.Format) + ":" + o.Path
}

// UnmarshalYAML handles both string and object forms for OutputSpec.
func (o *OutputSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		spec, err := ParseOutputSpec(node.Value)
		if err != nil {
			return err
		}
		*o = spec
		return nil
	}

	type rawOutputSpec OutputSpec
	if err := node.Decode((*rawOutputSpec)(o)); err != nil {
		return err
	}
	return o.normalize()
}

// UnmarshalJSON handles both string and object forms for OutputSpec.
func (o *OutputSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		spec, err := ParseOutputSpec(s)
		if err != nil {
			return err
		}
		*o = spec
		return nil
	}

	type rawOutputSpec OutputSpec
	if err := json.Unmarshal(data, (*rawOutputSpec)(o)); err != nil {
		return err
	}
	return o.normalize()
}

func (o *OutputSpec) normalize() error {
	format, err := export.ParseFormat(string(o.Format))
	if err != nil {
		return err
	}
	o.Format = format
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
