/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden-file helpers for tokenpipe tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bennypowers.dev/tokenpipe/internal/mapfs"
)

// updateGolden rewrites golden files with actual output when -update is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdata returns the first existing candidate for rel under a testdata
// directory, searching upward because go test runs in the package directory.
func testdata(rel string) (string, bool) {
	for _, dir := range []string{"testdata", filepath.Join("..", "testdata"), filepath.Join("..", "..", "testdata")} {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return filepath.Join("testdata", rel), false
}

// NewFixtureFS copies a testdata fixture directory into an in-memory
// filesystem, rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath, ok := testdata(fixtureDir)
	if !ok {
		t.Fatalf("Could not find fixtures at %s", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.ToSlash(filepath.Join(rootPath, relPath)), string(content), 0o644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// Golden compares actual against the golden file at goldenPath, relative to
// testdata. With -update the golden file is rewritten first. Line endings
// are normalized before comparing.
func Golden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()

	path, exists := testdata(goldenPath)
	if *updateGolden {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
		}
		if err := os.WriteFile(path, actual, 0o644); err != nil {
			t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", path)
		exists = true
	}
	if !exists {
		t.Fatalf("Golden file %s not found; run with -update to create it", goldenPath)
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}

	got := strings.ReplaceAll(string(actual), "\r\n", "\n")
	want := strings.ReplaceAll(string(expected), "\r\n", "\n")
	if got != want {
		t.Errorf("output mismatch for %s.\n\nGot:\n%s\n\nExpected:\n%s", goldenPath, got, want)
	}
}
