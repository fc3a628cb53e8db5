// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "completed_days.txt")
	return NewStore(path, nil), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Load on missing file = %v, want empty", set.Days())
	}
}

func TestStore_LoadEmptyFile(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load on empty file: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Load on empty file = %v, want empty", set.Days())
	}
}

func TestStore_LoadDuplicates(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("3 7 7 2"), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := set.Days(); !slices.Equal(got, []int{2, 3, 7}) {
		t.Errorf("Load = %v, want [2 3 7]", got)
	}
}

func TestStore_LoadLogsRejectedTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "completed_days.txt")
	if err := os.WriteFile(path, []byte("1 banana 2"), 0644); err != nil {
		t.Fatal(err)
	}

	var logOutput bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logOutput, nil))
	store := NewStore(path, logger)

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := set.Days(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Load = %v, want [1 2]", got)
	}
	if !strings.Contains(logOutput.String(), "banana") {
		t.Errorf("expected rejected token in log output, got %q", logOutput.String())
	}
}

func TestStore_OpenDayOnEmptyFile(t *testing.T) {
	store, path := newTestStore(t)

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	set.Add(5)
	if err := store.Save(set); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := readFile(t, path); got != "5" {
		t.Errorf("file contents = %q, want %q", got, "5")
	}
}

func TestStore_ResetAfterOpening(t *testing.T) {
	store, path := newTestStore(t)
	if err := store.Save(NewSet(1, 4, 9)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := readFile(t, path); got != "1 4 9" {
		t.Fatalf("file contents = %q, want %q", got, "1 4 9")
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := readFile(t, path); got != "" {
		t.Errorf("file contents after reset = %q, want empty", got)
	}

	set, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Load after reset = %v, want empty", set.Days())
	}
}

func TestStore_SaveLoadIdempotent(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("12 3\n3  8"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if first != second {
		t.Errorf("Save(Load()) changed the set: %v -> %v", first.Days(), second.Days())
	}
	if got := readFile(t, path); got != "3 8 12" {
		t.Errorf("normalized file = %q, want %q", got, "3 8 12")
	}
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "completed_days.txt")
	store := NewStore(path, nil)

	if err := store.Save(NewSet(2)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := readFile(t, path); got != "2" {
		t.Errorf("file contents = %q, want %q", got, "2")
	}
}

func TestStore_SaveLeavesNoTemporaryFile(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.Save(NewSet(1, 2)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file still present after Save (stat err = %v)", err)
	}
}

func TestStore_SaveFailure(t *testing.T) {
	directory := t.TempDir()
	blocker := filepath.Join(directory, "not-a-directory")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(filepath.Join(blocker, "completed_days.txt"), nil)
	if err := store.Save(NewSet(1)); err == nil {
		t.Fatal("expected Save to fail when the parent path is a regular file")
	}
}
