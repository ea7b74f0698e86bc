/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/tokenpipe/internal/version"
)

func TestPrint(t *testing.T) {
	var text bytes.Buffer
	if err := Print(&text, "text"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text.String(), "tokenpipe "+version.Get()) {
		t.Errorf("unexpected text output %q", text.String())
	}

	var out bytes.Buffer
	if err := Print(&out, "json"); err != nil {
		t.Fatal(err)
	}
	var info version.BuildInfo
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("invalid json %q: %v", out.String(), err)
	}
	if info.Version != version.Info().Version {
		t.Errorf("version = %q, want %q", info.Version, version.Info().Version)
	}

	if err := Print(&out, "yaml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
