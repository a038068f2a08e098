package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxBoardSide is a sanity cap on board dimensions; boards larger than
// this cannot be rendered or played sensibly.
const MaxBoardSide = 64

var (
	ErrInvalidDimensions = errors.New("game: board dimensions must be positive")
	ErrInvalidColumn     = errors.New("game: column out of range")
	ErrColumnFull        = errors.New("game: column is full")
)

// Point identifies a board cell. Row 0 is the visual top; disks stack
// toward higher row indices.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Win describes a completed four-in-a-row line.
type Win struct {
	Turn Turn  // owning player
	From Point // cell the row-major scan found first
	To   Point // far endpoint, three steps along the winning direction
}

// Cells returns the four cells of the winning line, From first.
func (w Win) Cells() []Point {
	cells := make([]Point, 0, 4)
	dr := sign(w.To.Row - w.From.Row)
	dc := sign(w.To.Col - w.From.Col)
	p := w.From
	for range 4 {
		cells = append(cells, p)
		p.Row += dr
		p.Col += dc
	}
	return cells
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Board is a fixed-size grid of disks, indexed disks[col][row].
// Columns fill from the bottom (highest row index) upward with no gaps.
type Board struct {
	rows  int
	cols  int
	disks [][]Disk
}

// NewBoard creates an all-empty board of the given shape.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 || rows > MaxBoardSide || cols > MaxBoardSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	disks := make([][]Disk, cols)
	for c := range disks {
		disks[c] = make([]Disk, rows)
	}
	return &Board{rows: rows, cols: cols, disks: disks}, nil
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// At returns the disk at the given cell, or DiskNone for empty or
// out-of-range cells.
func (b *Board) At(row, col int) Disk {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return DiskNone
	}
	return b.disks[col][row]
}

// ColumnFull reports whether the column has no empty cells left.
// Out-of-range columns report full.
func (b *Board) ColumnFull(col int) bool {
	if col < 0 || col >= b.cols {
		return true
	}
	return b.disks[col][0] != DiskNone
}

// Full reports whether every column is saturated.
func (b *Board) Full() bool {
	for c := range b.cols {
		if !b.ColumnFull(c) {
			return false
		}
	}
	return true
}

// DropDisk places a disk in the lowest empty cell of the column and
// returns the row it landed on. The board is unchanged on error.
func (b *Board) DropDisk(col int, disk Disk) (int, error) {
	if col < 0 || col >= b.cols {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	column := b.disks[col]
	for row := b.rows - 1; row >= 0; row-- {
		if column[row] == DiskNone {
			column[row] = disk
			return row, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrColumnFull, col)
}

// winDirections is the fixed order in which directions are tried:
// down, up, right, left, down-right, up-left, down-left, up-right.
// The first qualifying direction wins; this is a deterministic
// tie-break, not a best-line search.
var winDirections = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// CheckForWin scans the 8 directions from an occupied cell, up to 3
// steps each. If 4 same-colored disks are contiguous starting at
// (row, col), it returns the far endpoint of the line.
func (b *Board) CheckForWin(row, col int, disk Disk) (Point, bool) {
	for _, d := range winDirections {
		r, c := row, col
		count := 1
		for range 3 {
			r += d[0]
			c += d[1]
			if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
				break
			}
			if b.disks[c][r] != disk {
				break
			}
			count++
		}
		if count >= 4 {
			return Point{Row: row + 3*d[0], Col: col + 3*d[1]}, true
		}
	}
	return Point{}, false
}

// CheckForWins scans the whole grid row-major and returns the first
// winning line found. Only the first win is reported even if a loaded
// board holds several; normal play cannot create two at once.
func (b *Board) CheckForWins() (Win, bool) {
	for row := range b.rows {
		for col := range b.cols {
			disk := b.disks[col][row]
			if disk == DiskNone {
				continue
			}
			if end, ok := b.CheckForWin(row, col, disk); ok {
				return Win{
					Turn: disk.Turn(),
					From: Point{Row: row, Col: col},
					To:   end,
				}, true
			}
		}
	}
	return Win{}, false
}

// boardJSON is the save-file representation of a board.
type boardJSON struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Disks [][]Disk `json:"disks"`
}

// MarshalJSON encodes the board with its disks grid keyed [col][row].
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{Rows: b.rows, Cols: b.cols, Disks: b.disks})
}

// UnmarshalJSON decodes a board and validates its structural
// invariants: sane dimensions, a [cols][rows] grid, and gravity (no
// disk may float above an empty cell).
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Rows < 1 || raw.Cols < 1 || raw.Rows > MaxBoardSide || raw.Cols > MaxBoardSide {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, raw.Rows, raw.Cols)
	}
	if len(raw.Disks) != raw.Cols {
		return fmt.Errorf("game: board has %d columns, expected %d", len(raw.Disks), raw.Cols)
	}
	for c, column := range raw.Disks {
		if len(column) != raw.Rows {
			return fmt.Errorf("game: column %d has %d rows, expected %d", c, len(column), raw.Rows)
		}
		// Once a cell is occupied, every cell below it must be too.
		for r := 1; r < raw.Rows; r++ {
			if column[r] == DiskNone && column[r-1] != DiskNone {
				return fmt.Errorf("game: column %d has a floating disk above row %d", c, r)
			}
		}
	}
	b.rows = raw.Rows
	b.cols = raw.Cols
	b.disks = raw.Disks
	return nil
}
