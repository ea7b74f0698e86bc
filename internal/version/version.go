/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the tokenpipe build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/tokenpipe/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Get returns the version string: the ldflags version, else the module
// version from `go install`, else tag plus short commit, else "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}

	v := GitTag
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	if short != "" && !strings.HasSuffix(GitTag, short) {
		v = fmt.Sprintf("%s-%s", GitTag, short)
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

// Info returns detailed build information.
func Info() BuildInfo {
	b := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		b.GoVersion = info.GoVersion
	}
	return b
}
