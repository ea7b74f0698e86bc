/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading a project's tokens.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenpipe/config"
	"bennypowers.dev/tokenpipe/fs"
	"bennypowers.dev/tokenpipe/internal/logger"
	"bennypowers.dev/tokenpipe/parser"
	"bennypowers.dev/tokenpipe/resolver"
	"bennypowers.dev/tokenpipe/token"
)

// ErrNoFiles indicates that neither the caller nor the config named any
// token files.
var ErrNoFiles = errors.New("no token files given and none configured")

// Options configures how tokens are loaded.
type Options struct {
	// Root is the project directory holding .config/tokenpipe.yaml.
	// Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Files are paths or globs, relative to Root. They replace the
	// config's files when non-empty.
	Files []string
}

// Result is a loaded project.
type Result struct {
	// Tokens in file order.
	Tokens []*token.Token

	// Files that were read, after glob expansion.
	Files []string

	// Config is the project config, or the defaults when there is none.
	Config *config.Config

	// Root is the absolute project directory.
	Root string
}

// Load reads the project config and parses every token file it (or
// opts.Files) names.
//
// The loading process:
//  1. Loads config from .config/tokenpipe.{yaml,yml,json}, if present
//  2. Expands file globs against the root
//  3. Parses each file with the parser for its extension
//  4. Resolves {group.token} references across all files
func Load(ctx context.Context, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	} else {
		logger.Debug("loaded config from %s", config.Path(filesystem, root))
	}

	patterns := opts.Files
	if len(patterns) == 0 {
		patterns = cfg.FilePaths()
	}
	if len(patterns) == 0 {
		return nil, ErrNoFiles
	}

	files, err := config.ExpandPaths(filesystem, root, patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files match %v", ErrNoFiles, patterns)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens, err := parser.ParseFiles(filesystem, files)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %d tokens from %d files", len(tokens), len(files))

	tokens, err = resolver.ResolveAliases(tokens)
	if err != nil {
		return nil, err
	}

	return &Result{Tokens: tokens, Files: files, Config: cfg, Root: root}, nil
}
