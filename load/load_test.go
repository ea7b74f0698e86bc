/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"testing"

	"bennypowers.dev/tokenpipe/internal/mapfs"
	"bennypowers.dev/tokenpipe/load"
	"bennypowers.dev/tokenpipe/resolver"
	"bennypowers.dev/tokenpipe/testutil"
)

func TestLoad_FromConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	result, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Files) != 2 {
		t.Fatalf("expected 2 files, got %v", result.Files)
	}
	if len(result.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(result.Tokens))
	}
	if !result.Config.Export.IncludeComments {
		t.Error("expected export options from config")
	}

	var keys []string
	for _, tok := range result.Tokens {
		keys = append(keys, tok.Key())
	}
	want := []string{"color-primary", "color-secondary", "spacing-md"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, keys[i], want[i])
		}
	}
	if result.Tokens[2].SortOrder != 2 {
		t.Errorf("second file should sort after the first, got order %d", result.Tokens[2].SortOrder)
	}
}

func TestLoad_FilesOverrideConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	result, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []string{"tokens/spacing.json"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Tokens) != 1 || result.Tokens[0].Name != "md" {
		t.Errorf("unexpected tokens %v", result.Tokens)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	_, err := load.Load(t.Context(), load.Options{Root: "/empty", FS: mapfs.New()})
	if !errors.Is(err, load.ErrNoFiles) {
		t.Errorf("Load() error = %v, want ErrNoFiles", err)
	}
}

func TestLoad_NoMatches(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs, Files: []string{"tokens/*.yaml"}})
	if !errors.Is(err, load.ErrNoFiles) {
		t.Errorf("Load() error = %v, want ErrNoFiles", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mapfs.New(), Files: []string{"nope.json"}})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_Canceled(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := load.Load(ctx, load.Options{Root: "/project", FS: mfs})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoad_ResolvesAcrossFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/base.json", `{"color": {"brand": {"$value": "#FF6B35"}}}`, 0o644)
	mfs.AddFile("/project/alias.json", `[{"category": "color", "name": "link", "value": "{color.brand}"}]`, 0o644)

	result, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []string{"base.json", "alias.json"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := result.Tokens[1].Value; got != "#FF6B35" {
		t.Errorf("expected alias to resolve to #FF6B35, got %v", got)
	}
}

func TestLoad_CircularReference(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/loop.json", `{"color": {"a": {"$value": "{color.b}"}, "b": {"$value": "{color.a}"}}}`, 0o644)

	_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs, Files: []string{"loop.json"}})
	if !errors.Is(err, resolver.ErrCircularReference) {
		t.Errorf("Load() error = %v, want ErrCircularReference", err)
	}
}
