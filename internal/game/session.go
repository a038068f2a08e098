package game

import "errors"

var (
	ErrNoGame   = errors.New("game: no game in progress")
	ErrGameOver = errors.New("game: the game is already won")
	ErrNoStore  = errors.New("game: no save store configured")
)

// Phase is the session state: nothing started yet, a game being played,
// or a finished game. A won board is terminal until New or a successful
// Load replaces it.
type Phase int

const (
	PhaseNoGame Phase = iota
	PhaseInProgress
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseNoGame:
		return "no game"
	case PhaseInProgress:
		return "in progress"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Snapshot is the complete serializable state of a game in progress.
type Snapshot struct {
	Board   *Board
	Turn    Turn
	History *MoveHistory
}

// Store persists and restores session snapshots. The save layer
// implements it against a single JSON file.
type Store interface {
	Save(Snapshot) error
	Load() (Snapshot, error)
}

// DropResult reports the outcome of the most recent successful drop,
// for incremental rendering.
type DropResult struct {
	Row  int
	Col  int
	Turn Turn // player who dropped
	Win  *Win // non-nil if this drop completed a line
}

// Session owns the mutable {Board, Turn, MoveHistory} triple for one
// game. All mutation goes through Apply and Drop; everything else is a
// read-only query. Single-threaded by design: the TUI event loop is the
// only caller.
type Session struct {
	store    Store
	board    *Board
	turn     Turn
	history  *MoveHistory
	phase    Phase
	win      *Win
	lastDrop *DropResult
}

// NewSession creates a session with no game started.
func NewSession(store Store) *Session {
	return &Session{store: store, phase: PhaseNoGame}
}

// Board returns the current board, or nil before the first game.
func (s *Session) Board() *Board { return s.board }

// Turn returns whose move is next.
func (s *Session) Turn() Turn { return s.turn }

// History returns the move log, or nil before the first game.
func (s *Session) History() *MoveHistory { return s.history }

// Phase returns the session state.
func (s *Session) Phase() Phase { return s.phase }

// Winner returns the winning line, or nil if the game is not won.
func (s *Session) Winner() *Win { return s.win }

// LastDrop returns the most recent drop result, or nil if no disk has
// been dropped since the last New/Load.
func (s *Session) LastDrop() *DropResult { return s.lastDrop }

// Resumable reports whether there is an unfinished game to return to.
func (s *Session) Resumable() bool { return s.phase == PhaseInProgress }

// Apply executes one game-change command. On error the session state
// is exactly as it was.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdNew:
		board, err := NewBoard(cmd.Rows, cmd.Cols)
		if err != nil {
			return err
		}
		s.board = board
		s.turn = TurnRed
		s.history = NewMoveHistory()
		s.phase = PhaseInProgress
		s.win = nil
		s.lastDrop = nil
		return nil

	case CmdSave:
		if s.phase == PhaseNoGame {
			return ErrNoGame
		}
		if s.store == nil {
			return ErrNoStore
		}
		return s.store.Save(Snapshot{Board: s.board, Turn: s.turn, History: s.history})

	case CmdLoad:
		if s.store == nil {
			return ErrNoStore
		}
		snap, err := s.store.Load()
		if err != nil {
			return err
		}
		s.board = snap.Board
		s.turn = snap.Turn
		s.history = snap.History
		s.lastDrop = nil
		// A loaded board may already hold a finished game.
		if win, ok := s.board.CheckForWins(); ok {
			s.win = &win
			s.phase = PhaseWon
		} else {
			s.win = nil
			s.phase = PhaseInProgress
		}
		return nil
	}
	return nil
}

// ApplyAll drains a batch of queued commands in order, stopping at the
// first error. Pending commands are never silently dropped.
func (s *Session) ApplyAll(cmds []Command) error {
	for _, cmd := range cmds {
		if err := s.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Drop inserts the current player's disk into the given column. On
// success it appends to the history, alternates the turn, re-runs the
// win scan, and records the result. A rejected drop changes nothing:
// no history entry, no turn change.
func (s *Session) Drop(col int) (DropResult, error) {
	switch s.phase {
	case PhaseNoGame:
		return DropResult{}, ErrNoGame
	case PhaseWon:
		return DropResult{}, ErrGameOver
	}

	mover := s.turn
	row, err := s.board.DropDisk(col, mover.Disk())
	if err != nil {
		return DropResult{}, err
	}

	s.history.Push(col, mover)
	s.turn = s.turn.Next()

	result := DropResult{Row: row, Col: col, Turn: mover}
	if win, ok := s.board.CheckForWins(); ok {
		s.win = &win
		s.phase = PhaseWon
		result.Win = &win
	}
	s.lastDrop = &result
	return result, nil
}
