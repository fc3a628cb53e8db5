// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package adventui

import "github.com/bureau-foundation/advent/lib/calendar"

// Grid shape and spacing. The gutters leave room between buttons and
// around the edge of the grid.
const (
	gridColumns = 4
	gridRows    = 3
	gutterX     = 2
	gutterY     = 1

	minCellWidth  = 4
	minCellHeight = 1
)

// gridLayout is the geometry of the button grid for one terminal
// size. originY is the first screen row of the grid area.
type gridLayout struct {
	originY    int
	width      int
	height     int
	cellWidth  int
	cellHeight int
}

// newGridLayout sizes the cells to fill a width×height area starting
// at screen row originY.
func newGridLayout(originY, width, height int) gridLayout {
	cellWidth := (width - gutterX*(gridColumns+1)) / gridColumns
	if cellWidth < minCellWidth {
		cellWidth = minCellWidth
	}
	cellHeight := (height - gutterY*(gridRows+1)) / gridRows
	if cellHeight < minCellHeight {
		cellHeight = minCellHeight
	}
	return gridLayout{
		originY:    originY,
		width:      width,
		height:     height,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// cellOrigin returns the top-left screen position of the cell at
// index (0-based, row-major).
func (layout gridLayout) cellOrigin(index int) (int, int) {
	column := index % gridColumns
	row := index / gridColumns
	x := gutterX + column*(layout.cellWidth+gutterX)
	y := layout.originY + gutterY + row*(layout.cellHeight+gutterY)
	return x, y
}

// dayAt returns the day under the screen position, or false if the
// position is in a gutter or outside the grid.
func (layout gridLayout) dayAt(x, y int) (int, bool) {
	for index := 0; index < calendar.DayCount; index++ {
		cellX, cellY := layout.cellOrigin(index)
		if x >= cellX && x < cellX+layout.cellWidth &&
			y >= cellY && y < cellY+layout.cellHeight {
			return index + 1, true
		}
	}
	return 0, false
}

// moveCursor returns the cell index reached from index by moving
// columnDelta columns and rowDelta rows. Moves that would leave the
// grid keep the cursor where it is.
func moveCursor(index, columnDelta, rowDelta int) int {
	column := index%gridColumns + columnDelta
	row := index/gridColumns + rowDelta
	if column < 0 || column >= gridColumns || row < 0 || row >= gridRows {
		return index
	}
	return row*gridColumns + column
}
