// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package adventui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the calendar viewer.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Open activates the day under the cursor.
	Open key.Binding

	// Close dismisses the gift dialog.
	Close key.Binding

	ToggleTheme key.Binding
	Reset       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// (hjkl) alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→/l", "right"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open day"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "enter", " ", "q"),
		key.WithHelp("esc", "close"),
	),
	ToggleTheme: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle dark mode"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset days"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Open, keys.ToggleTheme, keys.Reset, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.Left, keys.Right},
		{keys.Open, keys.Close},
		{keys.ToggleTheme, keys.Reset, keys.Quit},
	}
}
