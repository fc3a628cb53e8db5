// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Gift modal geometry. The dialog is giftModalWidth columns wide when
// the screen allows, and never narrower than giftModalMinWidth.
const (
	giftModalWidth    = 50
	giftModalMinWidth = 24
	// Thick border (1 column each side) plus 2 columns of padding
	// each side.
	giftModalChromeWidth = 6
)

// GiftModal is the dialog that reveals a day's gift. It is rendered as
// a centered overlay on top of the calendar grid and holds no input
// state: any close key or click dismisses it.
type GiftModal struct {
	// Day is the calendar day whose gift is shown.
	Day int

	// Text is the gift message, rendered as inline markdown.
	Text string

	theme Theme
}

// NewGiftModal creates the dialog for day.
func NewGiftModal(day int, text string, theme Theme) GiftModal {
	return GiftModal{Day: day, Text: text, theme: theme}
}

// Title returns the plain-text heading of the dialog.
func (modal GiftModal) Title() string {
	return fmt.Sprintf("Here's what's in day %d:", modal.Day)
}

// Render produces the overlay lines and the top-left anchor that
// centers them on a screen of the given size.
func (modal GiftModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	modalWidth := giftModalWidth
	if modalWidth > screenWidth-2 {
		modalWidth = screenWidth - 2
	}
	if modalWidth < giftModalMinWidth {
		modalWidth = giftModalMinWidth
	}
	innerWidth := modalWidth - giftModalChromeWidth

	background := lipgloss.NewStyle().Background(modal.theme.DialogBackground)
	centered := background.
		Foreground(modal.theme.DialogForeground).
		Width(innerWidth).
		Align(lipgloss.Center)

	title := centered.Bold(true).Render(modal.Title())
	body := centered.Render(RenderInlineMarkdown(modal.Text, modal.theme.DialogForeground, modal.theme.DialogBackground))
	button := centered.Render(
		lipgloss.NewStyle().
			Foreground(modal.theme.OpenedForeground).
			Background(modal.theme.DialogBorder).
			Padding(0, 2).
			Render("Close"),
	)
	spacer := background.Width(innerWidth).Render("")

	inner := strings.Join([]string{title, spacer, body, spacer, button}, "\n")

	rendered := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(modal.theme.DialogBorder).
		BorderBackground(modal.theme.DialogBackground).
		Background(modal.theme.DialogBackground).
		Padding(1, 2).
		Render(inner)

	lines := strings.Split(rendered, "\n")
	width := 0
	for _, line := range lines {
		if lineWidth := ansi.StringWidth(line); lineWidth > width {
			width = lineWidth
		}
	}

	anchorX, anchorY := CenterAnchor(screenWidth, screenHeight, width, len(lines))
	return lines, anchorX, anchorY
}
