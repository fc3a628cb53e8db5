// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package adventui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/advent/lib/advent"
	"github.com/bureau-foundation/advent/lib/calendar"
	"github.com/bureau-foundation/advent/lib/clock"
	"github.com/bureau-foundation/advent/lib/progress"
	"github.com/bureau-foundation/advent/lib/tui"
)

// Notice display durations.
const (
	notifyFadeDelay    = 3 * time.Second
	logRecordFadeDelay = 5 * time.Second
)

// Chrome rows around the grid: header above, counter and status line
// below.
const (
	headerHeight = 1
	footerHeight = 2
)

// progressChangedMsg carries a set read from disk by the watcher.
type progressChangedMsg struct {
	set progress.Set
}

// ProgressChanged wraps a set observed on disk as a message for
// tea.Program.Send. Use it as the progress.Watch callback.
func ProgressChanged(set progress.Set) tea.Msg {
	return progressChangedMsg{set: set}
}

// noticeFadeMsg clears the notice with the matching sequence number.
// Newer notices are left alone.
type noticeFadeMsg struct {
	sequence int
}

// heatTickMsg drives the glow animation while any day is hot.
type heatTickMsg struct{}

// notice is a transient message in the status line.
type notice struct {
	text     string
	level    slog.Level
	sequence int
}

// Options configures a Model.
type Options struct {
	// Theme is the initial color scheme. Defaults to tui.LightTheme.
	Theme *tui.Theme

	// Clock drives the heat animation. Defaults to clock.Real().
	Clock clock.Clock
}

// Model is the top-level bubbletea model for the calendar viewer.
type Model struct {
	controller *advent.Controller
	theme      tui.Theme
	keys       KeyMap
	help       help.Model
	clock      clock.Clock

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// cursor is the 0-based index of the highlighted button.
	cursor int

	// modal is non-nil while a gift is being shown.
	modal *tui.GiftModal

	notice         *notice
	noticeSequence int

	heatTracker *tui.HeatTracker
	tickRunning bool
}

// NewModel creates a Model driving controller.
func NewModel(controller *advent.Controller, options Options) Model {
	theme := tui.LightTheme
	if options.Theme != nil {
		theme = *options.Theme
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}

	model := Model{
		controller:  controller,
		keys:        DefaultKeyMap,
		help:        help.New(),
		clock:       options.Clock,
		heatTracker: tui.NewHeatTracker(),
	}
	model.setTheme(theme)
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Advent Calendar")
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if model.modal != nil {
			return model.handleModalKeys(message)
		}
		return model.handleKeys(message)

	case tea.MouseMsg:
		return model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		// One column is taken by the status line's leading space.
		model.help.Width = message.Width - 1
		model.ready = true

	case progressChangedMsg:
		return model.handleProgressChanged(message.set)

	case logRecordMsg:
		return model, model.showNotice(message.Summary, message.Level, logRecordFadeDelay)

	case noticeFadeMsg:
		if model.notice != nil && model.notice.sequence == message.sequence {
			model.notice = nil
		}

	case heatTickMsg:
		if model.heatTracker.HasHot(model.clock.Now()) {
			return model, heatTick()
		}
		model.tickRunning = false
	}
	return model, nil
}

func (model Model) handleKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.cursor = moveCursor(model.cursor, 0, -1)

	case key.Matches(message, model.keys.Down):
		model.cursor = moveCursor(model.cursor, 0, 1)

	case key.Matches(message, model.keys.Left):
		model.cursor = moveCursor(model.cursor, -1, 0)

	case key.Matches(message, model.keys.Right):
		model.cursor = moveCursor(model.cursor, 1, 0)

	case key.Matches(message, model.keys.Open):
		return model.activate(model.cursor + 1)

	case key.Matches(message, model.keys.ToggleTheme):
		model.setTheme(model.theme.Toggled())

	case key.Matches(message, model.keys.Reset):
		return model.reset()
	}
	return model, nil
}

func (model Model) handleModalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}
	if key.Matches(message, model.keys.Close) {
		model.modal = nil
	}
	return model, nil
}

// handleMouse activates the clicked day. While the gift dialog is
// open, any click dismisses it instead.
func (model Model) handleMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	if message.Button != tea.MouseButtonLeft || message.Action != tea.MouseActionPress {
		return model, nil
	}
	if model.modal != nil {
		model.modal = nil
		return model, nil
	}
	day, ok := model.layout().dayAt(message.X, message.Y)
	if !ok {
		return model, nil
	}
	model.cursor = day - 1
	return model.activate(day)
}

// presenterCapture collects what the controller asked the UI to show
// during one call.
type presenterCapture struct {
	gift          *tui.GiftModal
	notifications []string
	theme         tui.Theme
}

func (capture *presenterCapture) ShowGift(day int, text string) {
	modal := tui.NewGiftModal(day, text, capture.theme)
	capture.gift = &modal
}

func (capture *presenterCapture) Notify(message string) {
	capture.notifications = append(capture.notifications, message)
}

// present applies captured controller output to the model.
func (model *Model) present(capture *presenterCapture) tea.Cmd {
	if capture.gift != nil {
		model.modal = capture.gift
	}
	var commands []tea.Cmd
	for _, text := range capture.notifications {
		commands = append(commands, model.showNotice(text, slog.LevelInfo, notifyFadeDelay))
	}
	return tea.Batch(commands...)
}

func (model Model) activate(day int) (tea.Model, tea.Cmd) {
	capture := &presenterCapture{theme: model.theme}
	outcome := model.controller.Activate(advent.DayActivated{Day: day}, capture)

	commands := []tea.Cmd{model.present(capture)}
	if outcome == advent.OutcomeOpened {
		commands = append(commands, model.ignite([]int{day}, tui.HeatOpened))
	}
	return model, tea.Batch(commands...)
}

func (model Model) reset() (tea.Model, tea.Cmd) {
	cleared := model.controller.Opened().Days()
	capture := &presenterCapture{theme: model.theme}
	model.controller.Reset(capture)
	return model, tea.Batch(model.present(capture), model.ignite(cleared, tui.HeatCleared))
}

func (model Model) handleProgressChanged(set progress.Set) (tea.Model, tea.Cmd) {
	previous := model.controller.Opened()
	if !model.controller.Adopt(set) {
		return model, nil
	}

	var opened, cleared []int
	for day := 1; day <= calendar.DayCount; day++ {
		switch {
		case set.Contains(day) && !previous.Contains(day):
			opened = append(opened, day)
		case !set.Contains(day) && previous.Contains(day):
			cleared = append(cleared, day)
		}
	}
	return model, tea.Batch(
		model.ignite(opened, tui.HeatOpened),
		model.ignite(cleared, tui.HeatCleared),
		model.showNotice("Progress updated from disk", slog.LevelInfo, notifyFadeDelay),
	)
}

// showNotice replaces the status line with text until delay passes.
func (model *Model) showNotice(text string, level slog.Level, delay time.Duration) tea.Cmd {
	model.noticeSequence++
	sequence := model.noticeSequence
	model.notice = &notice{text: text, level: level, sequence: sequence}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return noticeFadeMsg{sequence: sequence}
	})
}

// ignite marks days hot and starts the animation tick if it is not
// already running.
func (model *Model) ignite(days []int, kind tui.HeatKind) tea.Cmd {
	if len(days) == 0 {
		return nil
	}
	now := model.clock.Now()
	for _, day := range days {
		model.heatTracker.Ignite(day, kind, now)
	}
	if model.tickRunning {
		return nil
	}
	model.tickRunning = true
	return heatTick()
}

func heatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

func (model *Model) setTheme(theme tui.Theme) {
	model.theme = theme
	model.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.NormalText)
	model.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.HelpText)
	model.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.FaintText)
	model.help.Styles.Ellipsis = lipgloss.NewStyle().Foreground(theme.FaintText)
}

// layout returns the grid geometry for the current terminal size.
func (model Model) layout() gridLayout {
	return newGridLayout(headerHeight, model.width, model.height-headerHeight-footerHeight)
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	sections := []string{
		model.renderHeader(),
		model.renderGrid(),
		model.renderCounter(),
		model.renderStatus(),
	}
	output := strings.Join(sections, "\n")

	if model.modal != nil {
		lines, anchorX, anchorY := model.modal.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	return output
}

func (model Model) renderHeader() string {
	style := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Background(model.theme.HeaderBackground).
		Bold(true)

	title := " Advent Calendar"
	today := calendar.FormatDate(model.controller.Today()) + " "
	padding := model.width - lipgloss.Width(title) - lipgloss.Width(today)
	if padding < 1 {
		padding = 1
	}
	return style.Render(title + strings.Repeat(" ", padding) + today)
}

func (model Model) renderGrid() string {
	layout := model.layout()
	blankLine := strings.Repeat(" ", model.width)
	gutter := strings.Repeat(" ", gutterX)

	var lines []string
	for gutterLine := 0; gutterLine < gutterY; gutterLine++ {
		lines = append(lines, blankLine)
	}

	now := model.clock.Now()
	for row := 0; row < gridRows; row++ {
		cells := []string{gutter}
		for column := 0; column < gridColumns; column++ {
			index := row*gridColumns + column
			cells = append(cells, model.renderCell(index, layout, now), gutter)
		}
		lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cells...), "\n")...)
		for gutterLine := 0; gutterLine < gutterY; gutterLine++ {
			lines = append(lines, blankLine)
		}
	}

	// Fill or trim to the grid area so the footer stays at the bottom.
	for len(lines) < layout.height {
		lines = append(lines, blankLine)
	}
	if layout.height > 0 && len(lines) > layout.height {
		lines = lines[:layout.height]
	}
	return strings.Join(lines, "\n")
}

// renderCell draws one day button. Cursor highlight wins over heat,
// which wins over the day's state color.
func (model Model) renderCell(index int, layout gridLayout, now time.Time) string {
	day := index + 1
	state := model.controller.State(day)

	style := lipgloss.NewStyle().
		Width(layout.cellWidth).
		Height(layout.cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(model.theme.ButtonForeground).
		Background(model.theme.ButtonBackground)

	switch state {
	case advent.DayOpened:
		style = style.
			Foreground(model.theme.OpenedForeground).
			Background(model.theme.OpenedBackground)
	case advent.DayLocked:
		style = style.Foreground(model.theme.LockedForeground)
	}

	if heat := model.heatTracker.Heat(day, now); heat > 0 {
		accent := model.theme.HotOpened
		if model.heatTracker.Kind(day) == tui.HeatCleared {
			accent = model.theme.HotCleared
		}
		style = style.Background(accent)
	}

	if index == model.cursor {
		style = style.Background(model.theme.CursorBackground).Bold(true)
	}

	label := fmt.Sprintf("%d", day)
	if layout.cellHeight >= 3 {
		label += "\n" + model.cellCaption(day, state)
	}
	return style.Render(label)
}

// cellCaption is the second line shown on tall buttons.
func (model Model) cellCaption(day int, state advent.DayState) string {
	switch state {
	case advent.DayOpened:
		return "opened"
	case advent.DayLocked:
		return model.controller.Calendar().UnlockDate(day).Format("Jan 2")
	default:
		return "ready"
	}
}

// renderCounter draws the completed-days bar. The count is read from
// the controller on every render.
func (model Model) renderCounter() string {
	text := fmt.Sprintf("Days completed: %d/%d", model.controller.Completed(), calendar.DayCount)
	return lipgloss.NewStyle().
		Width(model.width).
		Align(lipgloss.Center).
		Foreground(model.theme.CounterForeground).
		Background(model.theme.CounterBackground).
		Render(text)
}

// renderStatus shows the active notice, or key help when there is
// none.
func (model Model) renderStatus() string {
	if model.notice == nil {
		return " " + model.help.View(model.keys)
	}

	color := model.theme.NoticeForeground
	switch {
	case model.notice.level >= slog.LevelError:
		color = model.theme.ErrorForeground
	case model.notice.level >= slog.LevelWarn:
		color = model.theme.WarningForeground
	}
	return lipgloss.NewStyle().
		Foreground(color).
		MaxWidth(model.width).
		Render(" " + model.notice.text)
}
