/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/tokenpipe/internal/mapfs"
)

func TestFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/good.json", `[{"category":"color","name":"primary","value":"#FF0000"}]`, 0644)
	mfs.AddFile("/bad.json", `[{"category":"color","name":"primary","value":"nope"},{"category":"color","name":"","value":"#FFF"}]`, 0644)
	mfs.AddFile("/broken.json", `{"color": `, 0644)

	var out, errOut bytes.Buffer
	problems := Files(mfs, []string{"/good.json", "/bad.json", "/broken.json", "/missing.json"}, &out, &errOut, false)

	if problems != 4 {
		t.Errorf("expected 4 problems, got %d\nstderr:\n%s", problems, errOut.String())
	}
	if !strings.Contains(out.String(), "Validating /good.json...") {
		t.Errorf("expected progress output, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1 tokens OK") {
		t.Errorf("expected OK summary for good file, got:\n%s", out.String())
	}
	for _, want := range []string{"/bad.json: color.primary:", "no name", "/broken.json", "/missing.json"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("expected stderr to contain %q, got:\n%s", want, errOut.String())
		}
	}
}

func TestFiles_Quiet(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/good.json", `[{"category":"color","name":"primary","value":"#FF0000"}]`, 0644)

	var out, errOut bytes.Buffer
	if problems := Files(mfs, []string{"/good.json"}, &out, &errOut, true); problems != 0 {
		t.Errorf("expected no problems, got %d", problems)
	}
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("quiet mode should print nothing, got %q / %q", out.String(), errOut.String())
	}
}
