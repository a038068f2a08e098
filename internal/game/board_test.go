package game

import (
	"errors"
	"testing"
)

func TestNewBoardValidatesDimensions(t *testing.T) {
	cases := []struct {
		rows, cols int
	}{
		{0, 7},
		{6, 0},
		{-1, 7},
		{6, -3},
		{MaxBoardSide + 1, 7},
		{6, MaxBoardSide + 1},
	}

	for _, c := range cases {
		if _, err := NewBoard(c.rows, c.cols); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBoard(%d, %d) = %v, want ErrInvalidDimensions", c.rows, c.cols, err)
		}
	}

	b, err := NewBoard(6, 7)
	if err != nil {
		t.Fatalf("NewBoard(6, 7) failed: %v", err)
	}
	if b.Rows() != 6 || b.Cols() != 7 {
		t.Errorf("Expected 6x7 board, got %dx%d", b.Rows(), b.Cols())
	}
	for row := range b.Rows() {
		for col := range b.Cols() {
			if b.At(row, col) != DiskNone {
				t.Fatalf("New board not empty at (%d, %d)", row, col)
			}
		}
	}
}

func TestDropDiskStacksFromBottom(t *testing.T) {
	b, _ := NewBoard(6, 7)

	row, err := b.DropDisk(3, DiskRed)
	if err != nil {
		t.Fatalf("DropDisk failed: %v", err)
	}
	if row != 5 {
		t.Errorf("First disk should land on the bottom row 5, got %d", row)
	}

	row, err = b.DropDisk(3, DiskBlue)
	if err != nil {
		t.Fatalf("DropDisk failed: %v", err)
	}
	if row != 4 {
		t.Errorf("Second disk should stack on row 4, got %d", row)
	}

	if b.At(5, 3) != DiskRed || b.At(4, 3) != DiskBlue {
		t.Errorf("Disks not where they landed: (5,3)=%v (4,3)=%v", b.At(5, 3), b.At(4, 3))
	}
}

func TestDropDiskInvalidColumn(t *testing.T) {
	b, _ := NewBoard(6, 7)

	for _, col := range []int{-1, 7, 100} {
		if _, err := b.DropDisk(col, DiskRed); !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("DropDisk(%d) = %v, want ErrInvalidColumn", col, err)
		}
	}
}

func TestDropDiskFullColumn(t *testing.T) {
	b, _ := NewBoard(6, 7)

	for i := range 6 {
		disk := DiskRed
		if i%2 == 1 {
			disk = DiskBlue
		}
		if _, err := b.DropDisk(0, disk); err != nil {
			t.Fatalf("Drop %d failed: %v", i, err)
		}
	}

	if !b.ColumnFull(0) {
		t.Error("Column 0 should report full after 6 drops")
	}

	before := make([]Disk, 6)
	for row := range 6 {
		before[row] = b.At(row, 0)
	}

	if _, err := b.DropDisk(0, DiskRed); !errors.Is(err, ErrColumnFull) {
		t.Errorf("Drop into full column = %v, want ErrColumnFull", err)
	}

	for row := range 6 {
		if b.At(row, 0) != before[row] {
			t.Errorf("Rejected drop mutated the board at row %d", row)
		}
	}
}

func TestHorizontalWin(t *testing.T) {
	b, _ := NewBoard(6, 7)

	for col := range 4 {
		b.DropDisk(col, DiskRed)
	}

	win, ok := b.CheckForWins()
	if !ok {
		t.Fatal("Four in the bottom row should win")
	}
	if win.Turn != TurnRed {
		t.Errorf("Winner = %v, want Red", win.Turn)
	}
	if (win.From != Point{Row: 5, Col: 0}) {
		t.Errorf("Win starts at %+v, want (5,0)", win.From)
	}
	if (win.To != Point{Row: 5, Col: 3}) {
		t.Errorf("Win ends at %+v, want (5,3)", win.To)
	}
}

func TestVerticalWinEndpoints(t *testing.T) {
	// Red stacks four in column 0 while Blue answers in column 1.
	b, _ := NewBoard(6, 7)
	for range 3 {
		b.DropDisk(0, DiskRed)
		b.DropDisk(1, DiskBlue)
	}
	b.DropDisk(0, DiskRed)

	win, ok := b.CheckForWins()
	if !ok {
		t.Fatal("Four stacked disks should win")
	}
	if win.Turn != TurnRed {
		t.Errorf("Winner = %v, want Red", win.Turn)
	}
	// The scan finds the topmost red disk first and follows the line down.
	if (win.From != Point{Row: 2, Col: 0}) {
		t.Errorf("Win starts at %+v, want (2,0)", win.From)
	}
	if (win.To != Point{Row: 5, Col: 0}) {
		t.Errorf("Win ends at %+v, want (5,0)", win.To)
	}
}

func TestDiagonalWin(t *testing.T) {
	// Staircase: column c carries c blue fillers with a red on top.
	b, _ := NewBoard(6, 7)
	for col := range 4 {
		for range col {
			b.DropDisk(col, DiskBlue)
		}
		b.DropDisk(col, DiskRed)
	}

	win, ok := b.CheckForWins()
	if !ok {
		t.Fatal("Diagonal staircase should win")
	}
	if win.Turn != TurnRed {
		t.Errorf("Winner = %v, want Red", win.Turn)
	}
	if (win.From != Point{Row: 2, Col: 3}) {
		t.Errorf("Win starts at %+v, want (2,3)", win.From)
	}
	if (win.To != Point{Row: 5, Col: 0}) {
		t.Errorf("Win ends at %+v, want (5,0)", win.To)
	}
}

func TestThreeInARowIsNotAWin(t *testing.T) {
	b, _ := NewBoard(6, 7)
	for col := range 3 {
		b.DropDisk(col, DiskRed)
	}

	if _, ok := b.CheckForWins(); ok {
		t.Error("Three in a row must not win")
	}
}

func TestMixedColorsBreakTheLine(t *testing.T) {
	b, _ := NewBoard(6, 7)
	b.DropDisk(0, DiskRed)
	b.DropDisk(1, DiskRed)
	b.DropDisk(2, DiskBlue)
	b.DropDisk(3, DiskRed)
	b.DropDisk(4, DiskRed)

	if _, ok := b.CheckForWins(); ok {
		t.Error("A line broken by the other color must not win")
	}
}

func TestWinCells(t *testing.T) {
	win := Win{
		Turn: TurnRed,
		From: Point{Row: 2, Col: 0},
		To:   Point{Row: 5, Col: 0},
	}

	cells := win.Cells()
	want := []Point{{2, 0}, {3, 0}, {4, 0}, {5, 0}}
	if len(cells) != len(want) {
		t.Fatalf("Cells() returned %d cells, want %d", len(cells), len(want))
	}
	for i, p := range want {
		if cells[i] != p {
			t.Errorf("Cells()[%d] = %+v, want %+v", i, cells[i], p)
		}
	}
}

func TestBoardFull(t *testing.T) {
	b, _ := NewBoard(4, 4)
	if b.Full() {
		t.Error("Empty board reports full")
	}

	for col := range 4 {
		for row := range 4 {
			disk := DiskRed
			if (row+col)%2 == 1 {
				disk = DiskBlue
			}
			b.DropDisk(col, disk)
		}
	}

	if !b.Full() {
		t.Error("Saturated board does not report full")
	}
}

func TestBoardUnmarshalRejectsFloatingDisk(t *testing.T) {
	// A disk at the top of an otherwise empty column cannot occur in play.
	data := []byte(`{"rows":3,"cols":2,"disks":[["red",null,null],[null,null,null]]}`)

	var b Board
	if err := b.UnmarshalJSON(data); err == nil {
		t.Error("Floating disk should be rejected")
	}
}

func TestBoardUnmarshalRejectsShapeMismatch(t *testing.T) {
	cases := []string{
		`{"rows":3,"cols":2,"disks":[[null,null,null]]}`,        // missing column
		`{"rows":3,"cols":2,"disks":[[null,null],[null,null]]}`, // short column
		`{"rows":0,"cols":2,"disks":[]}`,                        // zero rows
		`{"rows":3,"cols":100,"disks":[]}`,                      // beyond cap
	}

	for _, c := range cases {
		var b Board
		if err := b.UnmarshalJSON([]byte(c)); err == nil {
			t.Errorf("Malformed board accepted: %s", c)
		}
	}
}

func TestBoardUnmarshalAcceptsLegalPosition(t *testing.T) {
	data := []byte(`{"rows":3,"cols":2,"disks":[[null,"blue","red"],[null,null,"red"]]}`)

	var b Board
	if err := b.UnmarshalJSON(data); err != nil {
		t.Fatalf("Legal position rejected: %v", err)
	}
	if b.At(2, 0) != DiskRed || b.At(1, 0) != DiskBlue || b.At(2, 1) != DiskRed {
		t.Error("Decoded disks do not match the input")
	}
	if b.At(0, 0) != DiskNone {
		t.Error("Empty cell decoded as occupied")
	}
}
