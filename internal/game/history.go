package game

import (
	"encoding/json"
	"fmt"
)

// Move records one successful drop: which column, and whose turn it was.
type Move struct {
	Col  int  `json:"col"`
	Turn Turn `json:"turn"`
}

// MoveHistory is the append-only chronological log of successful drops.
// It is replaced wholesale on a new game or a load, never truncated.
type MoveHistory struct {
	moves []Move
}

// NewMoveHistory creates an empty history.
func NewMoveHistory() *MoveHistory {
	return &MoveHistory{}
}

// Push appends a move. Called exactly once per successful drop.
func (h *MoveHistory) Push(col int, turn Turn) {
	h.moves = append(h.moves, Move{Col: col, Turn: turn})
}

// Len returns the number of recorded moves.
func (h *MoveHistory) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the log in chronological order.
func (h *MoveHistory) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// MarshalJSON encodes the history as a plain array of moves.
func (h *MoveHistory) MarshalJSON() ([]byte, error) {
	if h.moves == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.moves)
}

// UnmarshalJSON decodes the history. Column indices are validated
// against MaxBoardSide here; range against the actual board happens in
// the save layer where both are known.
func (h *MoveHistory) UnmarshalJSON(data []byte) error {
	var moves []Move
	if err := json.Unmarshal(data, &moves); err != nil {
		return err
	}
	for i, m := range moves {
		if m.Col < 0 || m.Col >= MaxBoardSide {
			return fmt.Errorf("game: history move %d names column %d", i, m.Col)
		}
	}
	h.moves = moves
	return nil
}
