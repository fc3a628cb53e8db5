// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the calendar viewer. Colors are
// hex values; lipgloss degrades them to the terminal's color profile.
type Theme struct {
	// Name identifies the theme in logs and the header.
	Name string

	// Dark is true for schemes meant for dark terminal backgrounds.
	Dark bool

	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Header and counter bars.
	HeaderForeground  lipgloss.Color
	HeaderBackground  lipgloss.Color
	CounterForeground lipgloss.Color
	CounterBackground lipgloss.Color

	// Day buttons. Opened days use OpenedBackground; the button under
	// the cursor uses CursorBackground; locked days draw their label
	// in LockedForeground.
	ButtonForeground  lipgloss.Color
	ButtonBackground  lipgloss.Color
	CursorBackground  lipgloss.Color
	OpenedBackground  lipgloss.Color
	OpenedForeground  lipgloss.Color
	LockedForeground  lipgloss.Color
	ButtonBorderColor lipgloss.Color

	// Gift dialog.
	DialogForeground lipgloss.Color
	DialogBackground lipgloss.Color
	DialogBorder     lipgloss.Color

	// Status line.
	HelpText          lipgloss.Color
	NoticeForeground  lipgloss.Color
	WarningForeground lipgloss.Color
	ErrorForeground   lipgloss.Color

	// Heat accents: HotOpened tints a day that was just opened,
	// HotCleared tints days that a reset just closed.
	HotOpened  lipgloss.Color
	HotCleared lipgloss.Color
}

// LightTheme is a pastel scheme for light terminal backgrounds
// (Catppuccin Latte palette).
var LightTheme = Theme{
	Name: "latte",
	Dark: false,

	NormalText: lipgloss.Color("#4c4f69"),
	FaintText:  lipgloss.Color("#9ca0b0"),

	HeaderForeground:  lipgloss.Color("#eff1f5"),
	HeaderBackground:  lipgloss.Color("#8839ef"),
	CounterForeground: lipgloss.Color("#eff1f5"),
	CounterBackground: lipgloss.Color("#1e66f5"),

	ButtonForeground:  lipgloss.Color("#4c4f69"),
	ButtonBackground:  lipgloss.Color("#ccd0da"),
	CursorBackground:  lipgloss.Color("#ea76cb"),
	OpenedBackground:  lipgloss.Color("#40a02b"),
	OpenedForeground:  lipgloss.Color("#eff1f5"),
	LockedForeground:  lipgloss.Color("#9ca0b0"),
	ButtonBorderColor: lipgloss.Color("#acb0be"),

	DialogForeground: lipgloss.Color("#4c4f69"),
	DialogBackground: lipgloss.Color("#e6e9ef"),
	DialogBorder:     lipgloss.Color("#1e66f5"),

	HelpText:          lipgloss.Color("#6c6f85"),
	NoticeForeground:  lipgloss.Color("#1e66f5"),
	WarningForeground: lipgloss.Color("#df8e1d"),
	ErrorForeground:   lipgloss.Color("#d20f39"),

	HotOpened:  lipgloss.Color("#fe640b"),
	HotCleared: lipgloss.Color("#e64553"),
}

// DarkTheme is the matching scheme for dark terminal backgrounds
// (Catppuccin Frappé palette).
var DarkTheme = Theme{
	Name: "frappe",
	Dark: true,

	NormalText: lipgloss.Color("#c6d0f5"),
	FaintText:  lipgloss.Color("#737994"),

	HeaderForeground:  lipgloss.Color("#303446"),
	HeaderBackground:  lipgloss.Color("#ca9ee6"),
	CounterForeground: lipgloss.Color("#303446"),
	CounterBackground: lipgloss.Color("#8caaee"),

	ButtonForeground:  lipgloss.Color("#c6d0f5"),
	ButtonBackground:  lipgloss.Color("#414559"),
	CursorBackground:  lipgloss.Color("#f4b8e4"),
	OpenedBackground:  lipgloss.Color("#a6d189"),
	OpenedForeground:  lipgloss.Color("#303446"),
	LockedForeground:  lipgloss.Color("#737994"),
	ButtonBorderColor: lipgloss.Color("#626880"),

	DialogForeground: lipgloss.Color("#c6d0f5"),
	DialogBackground: lipgloss.Color("#292c3c"),
	DialogBorder:     lipgloss.Color("#8caaee"),

	HelpText:          lipgloss.Color("#a5adce"),
	NoticeForeground:  lipgloss.Color("#8caaee"),
	WarningForeground: lipgloss.Color("#e5c890"),
	ErrorForeground:   lipgloss.Color("#e78284"),

	HotOpened:  lipgloss.Color("#ef9f76"),
	HotCleared: lipgloss.Color("#ea999c"),
}

// Toggled returns the opposite scheme: dark for light and light for
// dark.
func (theme Theme) Toggled() Theme {
	if theme.Dark {
		return LightTheme
	}
	return DarkTheme
}
