// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package calendar defines the days of the advent calendar and the
// policy that decides when each one unlocks.
//
// A calendar has [DayCount] days numbered from 1. Day N unlocks on the
// start date plus N-1 days, so day 1 is available on the start date
// itself and the last day unlocks DayCount-1 days later. All
// comparisons are made on civil dates: the time of day and the
// location of the inputs do not matter beyond deciding which date they
// fall on.
//
// The unlock policy is a pure function ([IsUnlocked]). [Calendar]
// bundles a start date with the gift table so callers do not have to
// thread both around.
package calendar
