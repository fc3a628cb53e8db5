// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"strconv"
	"strings"

	"github.com/bureau-foundation/advent/lib/calendar"
)

// Set is a set of opened calendar days. Bit N-1 records day N. The
// zero value is the empty set.
type Set uint16

// NewSet returns a set containing the given days. Invalid days are
// ignored.
func NewSet(days ...int) Set {
	var set Set
	for _, day := range days {
		set.Add(day)
	}
	return set
}

// Add inserts day. Days outside the calendar are ignored.
func (s *Set) Add(day int) {
	if !calendar.Valid(day) {
		return
	}
	*s |= 1 << (day - 1)
}

// Remove deletes day.
func (s *Set) Remove(day int) {
	if !calendar.Valid(day) {
		return
	}
	*s &^= 1 << (day - 1)
}

// Contains reports whether day is in the set.
func (s Set) Contains(day int) bool {
	return calendar.Valid(day) && s&(1<<(day-1)) != 0
}

// Len returns the number of days in the set.
func (s Set) Len() int {
	count := 0
	for day := 1; day <= calendar.DayCount; day++ {
		if s.Contains(day) {
			count++
		}
	}
	return count
}

// Days returns the days in ascending order.
func (s Set) Days() []int {
	days := make([]int, 0, calendar.DayCount)
	for day := 1; day <= calendar.DayCount; day++ {
		if s.Contains(day) {
			days = append(days, day)
		}
	}
	return days
}

// Equal reports whether both sets hold the same days.
func (s Set) Equal(other Set) bool {
	return s == other
}

// String renders the set in its on-disk form.
func (s Set) String() string {
	return string(Format(s))
}

// Parse decodes the on-disk form. Empty tokens are skipped. Tokens that
// are not decimal integers in 1..DayCount are skipped and returned in
// the order they appeared so the caller can report them. Duplicates
// collapse.
func Parse(data []byte) (Set, []string) {
	var set Set
	var rejected []string
	for _, token := range strings.Fields(string(data)) {
		day, err := strconv.Atoi(token)
		if err != nil || !calendar.Valid(day) {
			rejected = append(rejected, token)
			continue
		}
		set.Add(day)
	}
	return set, rejected
}

// Format encodes the set as ascending day numbers joined by single
// spaces. The empty set encodes as no bytes.
func Format(s Set) []byte {
	var builder strings.Builder
	for index, day := range s.Days() {
		if index > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(strconv.Itoa(day))
	}
	return []byte(builder.String())
}
