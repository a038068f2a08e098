// Package save persists a game session as a single JSON snapshot file.
// Saves are atomic (temp file + rename) and loads validate the board's
// structural invariants before the snapshot replaces any live state.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvoronin/connect4/internal/game"
)

// ErrCorrupt marks a save file that was readable but did not parse into
// a valid snapshot. I/O failures are returned as-is, wrapped.
var ErrCorrupt = errors.New("save: corrupt save file")

// GameData is the wire schema of the save file: the complete
// {board, turn, history} triple.
type GameData struct {
	Board   *game.Board       `json:"board"`
	Turn    game.Turn         `json:"turn"`
	History *game.MoveHistory `json:"history"`
}

// File is a game.Store backed by one file at a fixed path.
type File struct {
	path string
}

// NewFile creates a store for the given save path. The parent directory
// is created on first save, not here.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the save file location.
func (f *File) Path() string { return f.path }

// Save writes the snapshot. The file only ever holds a complete
// snapshot: data is written to a temp file in the same directory and
// renamed over the target.
func (f *File) Save(snap game.Snapshot) error {
	data, err := json.Marshal(GameData{
		Board:   snap.Board,
		Turn:    snap.Turn,
		History: snap.History,
	})
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.json")
	if err != nil {
		return fmt.Errorf("save: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save: rename to %s: %w", f.path, err)
	}
	return nil
}

// Load reads and validates the snapshot. On any error the caller's
// state is untouched; errors.Is(err, os.ErrNotExist) distinguishes a
// missing file, errors.Is(err, ErrCorrupt) a malformed one.
func (f *File) Load() (game.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("save: open %s: %w", f.path, err)
	}

	var gd GameData
	if err := json.Unmarshal(data, &gd); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if gd.Board == nil {
		return game.Snapshot{}, fmt.Errorf("%w: missing board", ErrCorrupt)
	}
	if gd.History == nil {
		gd.History = game.NewMoveHistory()
	}
	// History entries must name columns that exist on this board. The
	// history is not otherwise cross-validated against board contents.
	for i, m := range gd.History.Moves() {
		if m.Col < 0 || m.Col >= gd.Board.Cols() {
			return game.Snapshot{}, fmt.Errorf("%w: history move %d names column %d of %d",
				ErrCorrupt, i, m.Col, gd.Board.Cols())
		}
	}

	return game.Snapshot{Board: gd.Board, Turn: gd.Turn, History: gd.History}, nil
}
