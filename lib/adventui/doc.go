// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package adventui implements the terminal user interface for the
// advent calendar. Built on bubbletea (Elm architecture), it draws a
// header, a 4×3 grid of day buttons, a completed-days counter, and a
// status line that alternates between key help and transient
// notifications. Opening a day splices a [tui.GiftModal] over the
// grid.
//
// The model holds no calendar state of its own. Every activation is
// sent to an [advent.Controller] as an [advent.DayActivated] event,
// and the controller answers through the [advent.Presenter] interface.
// The counter and button colors are recomputed from the controller on
// every render.
//
// Data flow:
//
//	[key / mouse]            [progress file watcher]
//	      |                          | (ProgressChanged)
//	  [Model] <- bubbletea event loop
//	      | DayActivated / Reset / Adopt
//	[advent.Controller] -> [progress.Store]
package adventui
