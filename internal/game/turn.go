// Package game implements the Connect-4 rules engine: the board, the
// alternating turn, the move history, and the session command protocol.
// It contains pure logic with no UI dependencies so it can be tested in
// isolation; the platform layer reads its state for display.
package game

import "fmt"

// Disk marks which player occupies a board cell. The zero value means
// the cell is empty.
type Disk uint8

const (
	DiskNone Disk = iota
	DiskRed
	DiskBlue
)

// Turn indicates whose move is next.
type Turn uint8

const (
	TurnRed Turn = iota
	TurnBlue
)

// Next returns the other player's turn.
func (t Turn) Next() Turn {
	if t == TurnRed {
		return TurnBlue
	}
	return TurnRed
}

// Disk converts the turn to the disk color that player drops.
func (t Turn) Disk() Disk {
	if t == TurnRed {
		return DiskRed
	}
	return DiskBlue
}

func (t Turn) String() string {
	if t == TurnRed {
		return "Red"
	}
	return "Blue"
}

// Turn converts an occupied cell back to the owning player.
// DiskNone has no owner; it maps to TurnRed but callers must not ask.
func (d Disk) Turn() Turn {
	if d == DiskBlue {
		return TurnBlue
	}
	return TurnRed
}

func (d Disk) String() string {
	switch d {
	case DiskRed:
		return "Red"
	case DiskBlue:
		return "Blue"
	default:
		return "None"
	}
}

// MarshalJSON encodes a disk as "red", "blue" or null so the save file
// round-trips losslessly and stays readable.
func (d Disk) MarshalJSON() ([]byte, error) {
	switch d {
	case DiskNone:
		return []byte("null"), nil
	case DiskRed:
		return []byte(`"red"`), nil
	case DiskBlue:
		return []byte(`"blue"`), nil
	default:
		return nil, fmt.Errorf("game: invalid disk value %d", uint8(d))
	}
}

// UnmarshalJSON decodes a disk from its save-file representation.
func (d *Disk) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*d = DiskNone
	case `"red"`:
		*d = DiskRed
	case `"blue"`:
		*d = DiskBlue
	default:
		return fmt.Errorf("game: invalid disk %s", data)
	}
	return nil
}

// MarshalJSON encodes a turn as "red" or "blue".
func (t Turn) MarshalJSON() ([]byte, error) {
	if t == TurnRed {
		return []byte(`"red"`), nil
	}
	return []byte(`"blue"`), nil
}

// UnmarshalJSON decodes a turn from its save-file representation.
func (t *Turn) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"red"`:
		*t = TurnRed
	case `"blue"`:
		*t = TurnBlue
	default:
		return fmt.Errorf("game: invalid turn %s", data)
	}
	return nil
}
