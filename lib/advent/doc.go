// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package advent is the application core of the advent calendar. The
// [Controller] owns the canonical set of opened days, consults the
// unlock policy in [calendar], and persists through [progress.Store].
//
// The controller knows nothing about widgets. The UI sends it explicit
// event values ([DayActivated]) and receives output through the narrow
// [Presenter] interface: one call to show a gift, one to show a
// transient notification. Any count shown on screen is derived from
// [Controller.Completed] at render time rather than tracked separately.
//
// All methods are meant to be called from a single goroutine (the UI
// event loop). The controller does no locking.
package advent
