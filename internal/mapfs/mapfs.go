/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs is an in-memory fs.FileSystem for tests.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// keepFile marks an otherwise empty directory.
const keepFile = ".keep"

// MapFileSystem stores files in a fstest.MapFS keyed by slash paths
// without the leading slash. Absolute and relative paths name the same file.
type MapFileSystem struct {
	mu      sync.RWMutex
	files   fstest.MapFS
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:   make(fstest.MapFS),
		modTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file, replacing any existing one.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(clean(p), []byte(content), mode)
}

// WriteFile writes a file. Parent directories need not exist, but none of
// them may be a regular file.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
		if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: "open", Path: "/" + name, Err: fmt.Errorf("%s is not a directory", dir)}
		}
	}
	m.put(name, append([]byte(nil), data...), perm)
	return nil
}

func (m *MapFileSystem) put(name string, data []byte, mode fs.FileMode) {
	m.files[name] = &fstest.MapFile{Data: data, Mode: mode, ModTime: m.modTime}
}

// ReadFile implements fs.FileSystem.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

// MkdirAll implements fs.FileSystem.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = clean(p)
	if f, ok := m.files[p]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: "/" + p, Err: fmt.Errorf("not a directory")}
	}
	m.put(path.Join(p, keepFile), nil, perm.Perm())
	return nil
}

// ReadDir implements fs.FileSystem.
func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, clean(name))
}

// Stat implements fs.FileSystem.
func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

// Exists reports whether p is a file or a directory holding any file.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true
	}
	prefix := p + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Open implements fs.FS, so the filesystem can be walked with fs.WalkDir.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

// Paths returns every file path, absolute and sorted. Directory markers
// are omitted.
func (m *MapFileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for name := range m.files {
		if path.Base(name) == keepFile {
			continue
		}
		paths = append(paths, "/"+name)
	}
	slices.Sort(paths)
	return paths
}

func clean(p string) string {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "."
	}
	return strings.TrimPrefix(cleaned, "/")
}
