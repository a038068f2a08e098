package tui

import "github.com/nvoronin/connect4/internal/core"

// Cell footprint of one board slot on screen.
const (
	cellWidth  = 4
	cellHeight = 1
)

// Vertical layout: title, separator, column numbers, cursor row, then
// the box around the grid.
const (
	hudRows    = 4
	footerRows = 3 // moves strip, status, controls
)

// BoardLayout positions the board grid within the screen and resolves
// mouse coordinates to board columns. It is pure math with no Bubble
// Tea dependency so it stays testable.
type BoardLayout struct {
	Rows  int
	Cols  int
	GridX int // left edge of the leftmost cell
	GridY int // top edge of the topmost cell
}

// NewBoardLayout computes the layout for a board of the given shape
// centered horizontally on a screen of the given width.
func NewBoardLayout(screenW, rows, cols int) BoardLayout {
	return BoardLayout{
		Rows:  rows,
		Cols:  cols,
		GridX: (screenW - cols*cellWidth) / 2,
		GridY: hudRows + 1, // one row below the box top
	}
}

// GridWidth returns the width of the grid interior in screen cells.
func (l BoardLayout) GridWidth() int { return l.Cols * cellWidth }

// GridHeight returns the height of the grid interior in screen cells.
func (l BoardLayout) GridHeight() int { return l.Rows * cellHeight }

// CellX returns the left screen x of the given board column.
func (l BoardLayout) CellX(col int) int { return l.GridX + col*cellWidth }

// CellCenterX returns the screen x of the column's visual center,
// where disks and the drop cursor are drawn.
func (l BoardLayout) CellCenterX(col int) int { return l.CellX(col) + cellWidth/2 }

// CellY returns the screen y of the given board row.
func (l BoardLayout) CellY(row int) int { return l.GridY + row*cellHeight }

// Box returns the border rectangle drawn around the grid.
func (l BoardLayout) Box() core.Rect {
	return core.NewRect(l.GridX-1, l.GridY-1, l.GridWidth()+2, l.GridHeight()+2)
}

// ColumnAt resolves a mouse position to a board column. The hit area
// spans the grid width and runs from the cursor row down to the box
// bottom, so clicks on any cell of a column drop into that column.
func (l BoardLayout) ColumnAt(x, y int) (int, bool) {
	if x < l.GridX || x >= l.GridX+l.GridWidth() {
		return 0, false
	}
	if y < l.GridY-2 || y >= l.Box().Bottom() {
		return 0, false
	}
	return (x - l.GridX) / cellWidth, true
}

// Fits reports whether the board plus HUD and footer fit on a screen
// of the given size.
func (l BoardLayout) Fits(screenW, screenH int) bool {
	return screenW >= l.GridWidth()+4 &&
		screenH >= hudRows+l.GridHeight()+2+footerRows
}
