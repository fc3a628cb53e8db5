// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlay_ReplacesRegion(t *testing.T) {
	view := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"

	result := SpliceOverlay(view, []string{"XX", "YY"}, 3, 1)
	lines := strings.Split(ansi.Strip(result), "\n")

	want := []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc"}
	for index := range want {
		if lines[index] != want[index] {
			t.Errorf("line %d = %q, want %q", index, lines[index], want[index])
		}
	}
}

func TestSpliceOverlay_ClipsBelowView(t *testing.T) {
	view := "12345\n67890"

	result := SpliceOverlay(view, []string{"A", "B", "C"}, 0, 1)
	lines := strings.Split(ansi.Strip(result), "\n")

	if len(lines) != 2 {
		t.Fatalf("overlay grew the view to %d lines", len(lines))
	}
	if lines[1] != "A7890" {
		t.Errorf("line 1 = %q, want %q", lines[1], "A7890")
	}
}

func TestSpliceOverlay_ShortLinePadded(t *testing.T) {
	result := SpliceOverlay("ab", []string{"Z"}, 4, 0)

	if got := ansi.Strip(result); got != "ab  Z" {
		t.Errorf("result = %q, want %q", got, "ab  Z")
	}
}

func TestSpliceOverlay_Empty(t *testing.T) {
	if got := SpliceOverlay("view", nil, 0, 0); got != "view" {
		t.Errorf("empty overlay changed the view: %q", got)
	}
}

func TestCenterAnchor(t *testing.T) {
	x, y := CenterAnchor(80, 24, 50, 10)
	if x != 15 || y != 7 {
		t.Errorf("CenterAnchor = (%d, %d), want (15, 7)", x, y)
	}

	x, y = CenterAnchor(20, 5, 50, 10)
	if x != 0 || y != 0 {
		t.Errorf("oversized block should clamp to origin, got (%d, %d)", x, y)
	}
}

func TestSpliceOverlay_KeepsStyling(t *testing.T) {
	styled := "\x1b[31mredredred\x1b[0m"
	result := SpliceOverlay(styled, []string{"X"}, 3, 0)

	if got := ansi.Strip(result); got != "redXedred" {
		t.Errorf("stripped = %q, want %q", got, "redXedred")
	}
	if !strings.HasPrefix(result, "\x1b[31m") {
		t.Errorf("styling before the overlay was lost: %q", result)
	}
}
