// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides terminal user interface pieces for the advent
// calendar viewer. Built on bubbletea (Elm architecture) and lipgloss,
// it holds the parts that are independent of the calendar model:
// light and dark color themes, ANSI-aware overlay splicing, the gift
// dialog, inline markdown rendering for gift text, and the heat
// tracker that makes a freshly opened day glow and fade.
//
// The viewer itself (grid layout, key handling, status line) lives in
// lib/adventui.
package tui
