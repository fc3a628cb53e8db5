// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package calendar

import (
	"fmt"
	"time"
)

// DayCount is the number of days in the calendar.
const DayCount = 12

// DateLayout is the textual form of a civil date in configuration,
// notifications, and flags.
const DateLayout = "2006-01-02"

// DefaultStart is the date day 1 unlocks when nothing else is
// configured.
var DefaultStart = time.Date(2025, time.December, 13, 0, 0, 0, 0, time.UTC)

// DefaultGifts is the built-in gift table, indexed by day-1.
var DefaultGifts = [DayCount]string{
	"Hamburger",
	"Cheeseburger",
	"Hotdog",
	"Pizza",
	"Ice cream",
	"Chocolate",
	"Cake",
	"Cookies",
	"Chocolate bar",
	"Chocolate chip cookies",
	"Chocolate milk",
	"Chocolate cake",
}

// Valid reports whether day identifies a calendar day.
func Valid(day int) bool {
	return day >= 1 && day <= DayCount
}

// Date reduces t to its civil date, expressed as midnight UTC. Two
// instants that fall on the same calendar day in their own locations
// produce equal values.
func Date(t time.Time) time.Time {
	year, month, dayOfMonth := t.Date()
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD civil date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return parsed, nil
}

// FormatDate renders the civil date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return Date(t).Format(DateLayout)
}

// UnlockDate returns the civil date on which day becomes available
// for a calendar starting on start.
func UnlockDate(day int, start time.Time) time.Time {
	return Date(start).AddDate(0, 0, day-1)
}

// IsUnlocked reports whether day is available on today for a calendar
// starting on start. The caller guarantees day is [Valid].
func IsUnlocked(day int, today, start time.Time) bool {
	return !Date(today).Before(UnlockDate(day, start))
}

// Calendar is a start date plus the gift revealed behind each day.
type Calendar struct {
	// Start is the date day 1 unlocks. Only its civil date is used.
	Start time.Time

	// Gifts holds the text revealed for each day, indexed by day-1.
	Gifts [DayCount]string
}

// Default returns a calendar using [DefaultStart] and [DefaultGifts].
func Default() Calendar {
	return Calendar{Start: DefaultStart, Gifts: DefaultGifts}
}

// UnlockDate returns the civil date on which day becomes available.
func (c Calendar) UnlockDate(day int) time.Time {
	return UnlockDate(day, c.Start)
}

// IsUnlocked reports whether day is available on today.
func (c Calendar) IsUnlocked(day int, today time.Time) bool {
	return IsUnlocked(day, today, c.Start)
}

// DaysUntilUnlock returns how many calendar days remain before day
// unlocks, or 0 if it is already unlocked.
func (c Calendar) DaysUntilUnlock(day int, today time.Time) int {
	remaining := c.UnlockDate(day).Sub(Date(today))
	if remaining <= 0 {
		return 0
	}
	// Civil dates are UTC midnights, so the difference is a whole
	// number of 24-hour days.
	return int(remaining / (24 * time.Hour))
}

// Gift returns the text revealed behind day. Out-of-range days return
// the empty string.
func (c Calendar) Gift(day int) string {
	if !Valid(day) {
		return ""
	}
	return c.Gifts[day-1]
}

// WithGifts returns a copy of c with the given per-day overrides
// applied. Days outside the calendar are ignored.
func (c Calendar) WithGifts(overrides map[int]string) Calendar {
	for day, gift := range overrides {
		if Valid(day) {
			c.Gifts[day-1] = gift
		}
	}
	return c
}
