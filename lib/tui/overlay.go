// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sgrReset ends any styling left open on either side of a splice.
const sgrReset = "\x1b[0m"

// SpliceOverlay draws block over view with its top-left corner at
// (column, row). Block lines falling outside the view's rows are
// dropped; the view never grows taller.
func SpliceOverlay(view string, block []string, column, row int) string {
	if len(block) == 0 {
		return view
	}
	rows := strings.Split(view, "\n")
	for offset, blockLine := range block {
		target := row + offset
		if target >= 0 && target < len(rows) {
			rows[target] = spliceLine(rows[target], blockLine, column)
		}
	}
	return strings.Join(rows, "\n")
}

// spliceLine replaces the cells of base starting at column with
// insert. ANSI styling in base is kept on both sides. A base shorter
// than column is padded with spaces.
func spliceLine(base, insert string, column int) string {
	left := ansi.Truncate(base, column, "")
	if pad := column - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	var right string
	if end := column + ansi.StringWidth(insert); end < ansi.StringWidth(base) {
		right = ansi.TruncateLeft(base, end, "")
	}
	return left + sgrReset + insert + sgrReset + right
}

// CenterAnchor returns the top-left position that centers a block of
// the given size on the screen, clamped to the screen origin.
func CenterAnchor(screenWidth, screenHeight, blockWidth, blockHeight int) (int, int) {
	return max(0, (screenWidth-blockWidth)/2), max(0, (screenHeight-blockHeight)/2)
}
