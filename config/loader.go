/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	tpfs "bennypowers.dev/tokenpipe/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenpipe"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Path returns the config file that Load would read, or "" if none exists.
func Path(filesystem tpfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(configPath) {
			return configPath
		}
	}
	return ""
}

// Load searches for .config/tokenpipe.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tpfs.FileSystem, rootDir string) (*Config, error) {
	configPath := Path(filesystem, rootDir)
	if configPath == "" {
		return nil, nil
	}

	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	cfg := &Config{}
	switch filepath.Ext(configPath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem tpfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles expands glob patterns in Files and returns absolute paths.
func (c *Config) ExpandFiles(filesystem tpfs.FileSystem, rootDir string) ([]string, error) {
	return ExpandPaths(filesystem, rootDir, c.FilePaths())
}

// ExpandPaths resolves patterns against rootDir, expanding globs. Each
// path is returned once, in the order first matched.
func ExpandPaths(filesystem tpfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string
	seen := map[string]bool{}

	for _, pattern := range patterns {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, path := range expanded {
			if !seen[path] {
				seen[path] = true
				result = append(result, path)
			}
		}
	}

	return result, nil
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem tpfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob, return the path directly (errors handled when file is read)
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem tpfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
	}

	return matches, nil
}
