// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a day glows after it changes. Heat
// starts at 1.0 and decays linearly to 0.0 over this duration.
const HeatDecayDuration = 2 * time.Second

// HeatTickInterval is the re-render interval while any day is hot.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind distinguishes changes for color selection.
type HeatKind int

const (
	// HeatOpened marks a day that was just opened.
	HeatOpened HeatKind = iota
	// HeatCleared marks a day that a reset just closed.
	HeatCleared
)

type heatEntry struct {
	ignition time.Time
	kind     HeatKind
}

// HeatTracker maps day numbers to ignition timestamps for animated
// change highlighting.
type HeatTracker struct {
	entries map[int]heatEntry
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{
		entries: make(map[int]heatEntry),
	}
}

// Ignite records a change to day. Resets the decay if the day was
// already hot.
func (tracker *HeatTracker) Ignite(day int, kind HeatKind, now time.Time) {
	tracker.entries[day] = heatEntry{ignition: now, kind: kind}
}

// Heat returns the current intensity for day: 1.0 at ignition, 0.0
// once [HeatDecayDuration] has passed or if the day never ignited.
func (tracker *HeatTracker) Heat(day int, now time.Time) float64 {
	entry, exists := tracker.entries[day]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed >= HeatDecayDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// Kind returns the heat kind for day. Only meaningful while Heat is
// above zero.
func (tracker *HeatTracker) Kind(day int) HeatKind {
	entry, exists := tracker.entries[day]
	if !exists {
		return HeatOpened
	}
	return entry.kind
}

// HasHot reports whether any day still has heat, meaning the tick
// timer should keep running. Fully decayed entries are dropped.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for day, entry := range tracker.entries {
		if now.Sub(entry.ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.entries, day)
	}
	return hot
}
