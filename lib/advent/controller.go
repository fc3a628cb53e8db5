// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package advent

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bureau-foundation/advent/lib/calendar"
	"github.com/bureau-foundation/advent/lib/clock"
	"github.com/bureau-foundation/advent/lib/progress"
)

// Presenter is the UI boundary the controller calls into.
type Presenter interface {
	// ShowGift displays the gift revealed behind day.
	ShowGift(day int, text string)

	// Notify shows a short transient message.
	Notify(message string)
}

// DayActivated is the event sent when the user activates a day.
type DayActivated struct {
	Day int
}

// Outcome reports what Activate did.
type Outcome int

const (
	// OutcomeIgnored means the event named a day outside the calendar.
	OutcomeIgnored Outcome = iota
	// OutcomeLocked means the day has not unlocked yet.
	OutcomeLocked
	// OutcomeOpened means the day was opened for the first time.
	OutcomeOpened
	// OutcomeReopened means the day was already open and its gift was
	// shown again.
	OutcomeReopened
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeLocked:
		return "locked"
	case OutcomeOpened:
		return "opened"
	case OutcomeReopened:
		return "reopened"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// DayState is the lifecycle position of one day.
type DayState int

const (
	// DayLocked: the unlock date has not been reached.
	DayLocked DayState = iota
	// DayUnlocked: available but not yet opened.
	DayUnlocked
	// DayOpened: opened at least once since the last reset.
	DayOpened
)

func (s DayState) String() string {
	switch s {
	case DayLocked:
		return "locked"
	case DayUnlocked:
		return "unlocked"
	case DayOpened:
		return "opened"
	default:
		return fmt.Sprintf("DayState(%d)", int(s))
	}
}

// Options configures a Controller.
type Options struct {
	// Calendar supplies the start date and gift table.
	Calendar calendar.Calendar

	// Store persists the opened days. Required.
	Store *progress.Store

	// Clock supplies today's date. Defaults to clock.Real().
	Clock clock.Clock

	// Logger receives persistence warnings and errors. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// Controller holds the canonical opened-day set for the session.
type Controller struct {
	calendar calendar.Calendar
	store    *progress.Store
	clock    clock.Clock
	logger   *slog.Logger
	opened   progress.Set
}

// NewController loads the persisted progress and returns a controller
// ready for events. A load error is returned as-is; a missing file is
// not an error.
func NewController(options Options) (*Controller, error) {
	if options.Store == nil {
		return nil, fmt.Errorf("advent: Options.Store is required")
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	opened, err := options.Store.Load()
	if err != nil {
		return nil, err
	}

	options.Logger.Debug("loaded progress",
		"path", options.Store.Path(),
		"opened", opened.Days(),
	)

	return &Controller{
		calendar: options.Calendar,
		store:    options.Store,
		clock:    options.Clock,
		logger:   options.Logger,
		opened:   opened,
	}, nil
}

// Calendar returns the calendar the controller was built with.
func (c *Controller) Calendar() calendar.Calendar {
	return c.calendar
}

// Today returns the current civil date according to the clock.
func (c *Controller) Today() time.Time {
	return calendar.Date(c.clock.Now())
}

// Activate handles a day activation. Locked days produce a
// notification naming the unlock date. Unlocked days are recorded,
// persisted, and their gift shown. If persisting fails the day stays
// opened for this session and the user is told the save failed.
func (c *Controller) Activate(event DayActivated, presenter Presenter) Outcome {
	day := event.Day
	if !calendar.Valid(day) {
		c.logger.Warn("ignoring activation of unknown day", "day", day)
		return OutcomeIgnored
	}

	now := c.clock.Now()
	if !c.calendar.IsUnlocked(day, now) {
		unlock := calendar.FormatDate(c.calendar.UnlockDate(day))
		presenter.Notify(fmt.Sprintf("You will be able to unlock day %d on %s", day, unlock))
		return OutcomeLocked
	}

	outcome := OutcomeReopened
	if !c.opened.Contains(day) {
		outcome = OutcomeOpened
		c.opened.Add(day)
		if err := c.store.Save(c.opened); err != nil {
			c.reportSaveFailure(err, presenter)
		}
	}

	presenter.ShowGift(day, c.calendar.Gift(day))
	return outcome
}

// Reset clears every opened day and rewrites the progress file. The
// in-memory set is cleared even if the write fails.
func (c *Controller) Reset(presenter Presenter) {
	c.opened = 0
	if err := c.store.Reset(); err != nil {
		c.reportSaveFailure(err, presenter)
		return
	}
	presenter.Notify("All days reset!")
}

// Adopt replaces the in-memory set with one read from disk by a
// watcher. Returns true if the set changed.
func (c *Controller) Adopt(set progress.Set) bool {
	if set.Equal(c.opened) {
		return false
	}
	c.logger.Info("progress file changed on disk",
		"previous", c.opened.Days(),
		"current", set.Days(),
	)
	c.opened = set
	return true
}

// State returns where day sits in its lifecycle today.
func (c *Controller) State(day int) DayState {
	if c.opened.Contains(day) {
		return DayOpened
	}
	if calendar.Valid(day) && c.calendar.IsUnlocked(day, c.clock.Now()) {
		return DayUnlocked
	}
	return DayLocked
}

// Completed returns how many days are opened.
func (c *Controller) Completed() int {
	return c.opened.Len()
}

// Opened returns a copy of the opened-day set.
func (c *Controller) Opened() progress.Set {
	return c.opened
}

func (c *Controller) reportSaveFailure(err error, presenter Presenter) {
	c.logger.Error("saving progress failed",
		"path", c.store.Path(),
		"error", err,
	)
	presenter.Notify(fmt.Sprintf("Could not save progress: %v", err))
}
