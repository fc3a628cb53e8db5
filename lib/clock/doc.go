// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable source of the current time.
//
// Code that decides anything from the current date accepts a [Clock]
// instead of calling time.Now directly. Production wiring passes
// [Real]; tests pass [Fake] and move time explicitly:
//
//	c := clock.Fake(time.Date(2025, 12, 13, 9, 0, 0, 0, time.UTC))
//	controller := advent.NewController(advent.Options{Clock: c, ...})
//	c.Advance(24 * time.Hour) // day 2 unlocks
package clock
