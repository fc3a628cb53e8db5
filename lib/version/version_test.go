// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"
)

func TestInfoInjected(t *testing.T) {
	saved := []string{GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2] })

	GitCommit, GitDirty, BuildTime = "abc1234", "true", "2025-12-13T00:00:00Z"
	want := Version + " (abc1234-dirty, 2025-12-13T00:00:00Z)"
	if got := Info(); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestFromBuildInfo(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-12-01T10:00:00Z"},
		}}, true
	}
	commit, dirty, built := fromBuildInfo(read)
	if commit != "0123456" || !dirty || built != "2025-12-01T10:00:00Z" {
		t.Errorf("fromBuildInfo = %q, %v, %q", commit, dirty, built)
	}

	commit, dirty, built = fromBuildInfo(func() (*debug.BuildInfo, bool) { return nil, false })
	if commit != "unknown" || dirty || built != "unknown" {
		t.Errorf("fromBuildInfo without info = %q, %v, %q", commit, dirty, built)
	}
}

func TestPrint(t *testing.T) {
	var buffer bytes.Buffer
	Print(&buffer, "advent")
	output := buffer.String()
	if !strings.HasPrefix(output, "advent "+Version+" (") {
		t.Errorf("Print output = %q", output)
	}
	if !strings.HasSuffix(output, ")\n") {
		t.Errorf("Print output missing newline: %q", output)
	}
}

func TestFull(t *testing.T) {
	if !strings.Contains(Full(), "Go: ") {
		t.Errorf("Full() = %q, missing Go version", Full())
	}
}
