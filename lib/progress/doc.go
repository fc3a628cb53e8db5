// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package progress records which calendar days have been opened.
//
// The opened days are a [Set] persisted to a single text file: zero or
// more decimal day numbers separated by whitespace, written in
// ascending order with single spaces and no trailing delimiter. There
// is no header, version, or checksum.
//
// Reading is best-effort. Tokens that are not integers, or integers
// outside the calendar, are skipped and reported back to the caller
// rather than failing the whole load; a hand-edited file with a typo
// loses only the bad token.
//
// [Store.Save] replaces the file atomically (write a temporary file in
// the same directory, fsync, rename), so a crash mid-write leaves
// either the old or the new contents, never a truncated file.
//
// [Watch] follows the file with inotify and reports sets written by
// other processes.
package progress
