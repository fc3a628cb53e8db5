// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// errorCategory classifies startup failures so main can pick an exit
// code without parsing message text.
type errorCategory string

const (
	// categoryValidation means the user supplied bad input: an unknown
	// flag, an unparseable date, a broken config file. Exits 2.
	categoryValidation errorCategory = "validation"

	// categoryInternal means an I/O or environment failure the user
	// did not directly cause. Exits 1.
	categoryInternal errorCategory = "internal"
)

// startupError is a categorized error with an optional hint telling
// the user what to do next. The hint is appended to Error() after a
// blank line.
type startupError struct {
	Category errorCategory
	Err      error
	Hint     string
}

func (e *startupError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

func (e *startupError) Unwrap() error { return e.Err }

// ExitCode implements the interface main checks on returned errors.
func (e *startupError) ExitCode() int {
	if e.Category == categoryValidation {
		return 2
	}
	return 1
}

// WithHint sets the hint and returns the receiver for chaining.
func (e *startupError) WithHint(hint string) *startupError {
	e.Hint = hint
	return e
}

func validationError(format string, args ...any) *startupError {
	return &startupError{Category: categoryValidation, Err: fmt.Errorf(format, args...)}
}

func internalError(format string, args ...any) *startupError {
	return &startupError{Category: categoryInternal, Err: fmt.Errorf(format, args...)}
}
