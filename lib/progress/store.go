// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Store loads and saves the opened-day set at a fixed path. A Store
// holds no cached state: every Load reads the file and every Save
// rewrites it in full.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a Store for the file at path. Skipped tokens found
// during Load are logged to logger at warn level. A nil logger
// discards them.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the location of the progress file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the progress file. A missing or empty file is the empty
// set, not an error. Unparseable tokens are skipped.
func (s *Store) Load() (Set, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading progress file: %w", err)
	}

	set, rejected := Parse(data)
	if len(rejected) > 0 {
		s.logger.Warn("skipped invalid entries in progress file",
			"path", s.path,
			"entries", rejected,
		)
	}
	return set, nil
}

// Save replaces the progress file with the encoded set. The parent
// directory is created if it does not exist.
func (s *Store) Save(set Set) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating progress directory: %w", err)
	}
	return writeAtomic(s.path, Format(set))
}

// Reset clears all opened days on disk.
func (s *Store) Reset() error {
	return s.Save(0)
}

// writeAtomic writes data to a temporary file next to path, syncs it,
// and renames it over path. Readers see either the old or the new
// contents.
func writeAtomic(path string, data []byte) error {
	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating temporary progress file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary progress file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary progress file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary progress file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming progress file into place: %w", err)
	}

	// Make the rename itself durable.
	parentDirectory, err := os.Open(filepath.Dir(path))
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}

	return nil
}
