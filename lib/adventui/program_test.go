// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package adventui

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/advent/lib/advent"
	"github.com/bureau-foundation/advent/lib/calendar"
	"github.com/bureau-foundation/advent/lib/clock"
	"github.com/bureau-foundation/advent/lib/progress"
)

// runProgram drives a headless program through messages and returns
// the final model. Fails the test if the program does not exit.
func runProgram(t *testing.T, model Model, handler *LogHandler, messages ...tea.Msg) Model {
	t.Helper()
	program := tea.NewProgram(model,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	handler.SetProgram(program)

	type result struct {
		model tea.Model
		err   error
	}
	done := make(chan result, 1)
	go func() {
		final, err := program.Run()
		done <- result{model: final, err: err}
	}()

	sent := make(chan struct{})
	go func() {
		defer close(sent)
		for _, message := range messages {
			program.Send(message)
		}
		program.Quit()
	}()

	select {
	case finished := <-done:
		if finished.err != nil {
			t.Fatalf("program.Run: %v", finished.err)
		}
		<-sent
		return finished.model.(Model)
	case <-time.After(5 * time.Second):
		program.Kill()
		t.Fatal("program did not exit; the update loop is blocked")
		return Model{}
	}
}

// newLoggedController builds a controller whose logger feeds the
// status line through a LogHandler, as the advent binary's background
// logger does.
func newLoggedController(t *testing.T, path string) (*advent.Controller, *LogHandler, *clock.FakeClock) {
	t.Helper()
	handler := NewLogHandler(slog.LevelWarn)
	fake := clock.Fake(calendar.DefaultStart.Add(10 * time.Hour))
	controller, err := advent.NewController(advent.Options{
		Calendar: calendar.Default(),
		Store:    progress.NewStore(path, nil),
		Clock:    fake,
		Logger:   slog.New(handler),
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return controller, handler, fake
}

func TestProgramSurvivesSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "completed_days.txt")
	if err := os.Mkdir(path+".tmp", 0o755); err != nil {
		t.Fatal(err)
	}
	controller, handler, fake := newLoggedController(t, path)
	model := NewModel(controller, Options{Clock: fake})

	final := runProgram(t, model, handler, tea.KeyMsg{Type: tea.KeyEnter})

	if final.controller.State(1) != advent.DayOpened {
		t.Errorf("State(1) = %v, want opened in memory", final.controller.State(1))
	}
	if final.modal == nil || final.modal.Day != 1 {
		t.Errorf("modal = %+v, want the day 1 gift", final.modal)
	}
	if final.notice == nil {
		t.Error("expected a notice after the failed save")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("progress file should not exist after a failed save, stat err = %v", err)
	}
}

func TestProgramSurvivesResetFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "completed_days.txt")
	if err := os.WriteFile(path, []byte("1 4 9"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path+".tmp", 0o755); err != nil {
		t.Fatal(err)
	}
	controller, handler, fake := newLoggedController(t, path)
	model := NewModel(controller, Options{Clock: fake})

	final := runProgram(t, model, handler, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	if final.controller.Completed() != 0 {
		t.Errorf("Completed = %d, want 0 after reset", final.controller.Completed())
	}
	if final.notice == nil {
		t.Fatal("expected a notice after the failed reset")
	}
	if final.notice.text == "All days reset!" {
		t.Error("reset reported success although the write failed")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1 4 9" {
		t.Errorf("progress file = %q, want the previous contents", data)
	}
}
