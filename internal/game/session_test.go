package game

import (
	"errors"
	"testing"
)

// fakeStore is an in-memory Store for session tests.
type fakeStore struct {
	snap    *Snapshot
	loadErr error
	saves   int
}

func (f *fakeStore) Save(s Snapshot) error {
	f.snap = &s
	f.saves++
	return nil
}

func (f *fakeStore) Load() (Snapshot, error) {
	if f.loadErr != nil {
		return Snapshot{}, f.loadErr
	}
	if f.snap == nil {
		return Snapshot{}, errors.New("nothing saved")
	}
	return *f.snap, nil
}

func TestSessionStartsWithNoGame(t *testing.T) {
	s := NewSession(&fakeStore{})

	if s.Phase() != PhaseNoGame {
		t.Errorf("Phase = %v, want no game", s.Phase())
	}
	if s.Board() != nil || s.History() != nil || s.Winner() != nil {
		t.Error("Fresh session should hold no game state")
	}
	if _, err := s.Drop(0); !errors.Is(err, ErrNoGame) {
		t.Errorf("Drop with no game = %v, want ErrNoGame", err)
	}
}

func TestSessionNewGame(t *testing.T) {
	s := NewSession(&fakeStore{})

	if err := s.Apply(NewGameCommand(6, 7)); err != nil {
		t.Fatalf("New game failed: %v", err)
	}
	if s.Phase() != PhaseInProgress {
		t.Errorf("Phase = %v, want in progress", s.Phase())
	}
	if s.Turn() != TurnRed {
		t.Errorf("Red always moves first, got %v", s.Turn())
	}
	if s.Board().Rows() != 6 || s.Board().Cols() != 7 {
		t.Errorf("Board is %dx%d, want 6x7", s.Board().Rows(), s.Board().Cols())
	}
	if s.History().Len() != 0 {
		t.Errorf("New game has %d recorded moves", s.History().Len())
	}

	if err := s.Apply(NewGameCommand(0, 7)); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Invalid dimensions = %v, want ErrInvalidDimensions", err)
	}
	// The failed command must not have touched the running game.
	if s.Phase() != PhaseInProgress || s.Board().Rows() != 6 {
		t.Error("Rejected new-game command changed the session")
	}
}

func TestSessionDropAlternatesTurns(t *testing.T) {
	s := NewSession(&fakeStore{})
	s.Apply(NewGameCommand(6, 7))

	res, err := s.Drop(3)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if res.Turn != TurnRed || res.Row != 5 || res.Col != 3 {
		t.Errorf("Drop result = %+v, want Red at (5,3)", res)
	}
	if s.Turn() != TurnBlue {
		t.Errorf("Turn after Red's move = %v, want Blue", s.Turn())
	}
	if s.History().Len() != 1 {
		t.Errorf("History has %d moves, want 1", s.History().Len())
	}

	// A rejected drop changes nothing: same turn, same history.
	if _, err := s.Drop(99); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("Drop(99) = %v, want ErrInvalidColumn", err)
	}
	if s.Turn() != TurnBlue {
		t.Error("Failed drop consumed the turn")
	}
	if s.History().Len() != 1 {
		t.Error("Failed drop was recorded in the history")
	}
}

func TestSessionRejectsDropIntoFullColumn(t *testing.T) {
	s := NewSession(&fakeStore{})
	s.Apply(NewGameCommand(6, 7))

	for range 6 {
		if _, err := s.Drop(2); err != nil {
			t.Fatalf("Drop failed: %v", err)
		}
	}
	turn := s.Turn()

	if _, err := s.Drop(2); !errors.Is(err, ErrColumnFull) {
		t.Errorf("Drop into full column = %v, want ErrColumnFull", err)
	}
	if s.Turn() != turn {
		t.Error("Rejected drop consumed the turn")
	}
}

// playVerticalRedWin drives Red to stack four in column 0 while Blue
// answers in column 1.
func playVerticalRedWin(t *testing.T, s *Session) DropResult {
	t.Helper()
	for range 3 {
		if _, err := s.Drop(0); err != nil {
			t.Fatalf("Red drop failed: %v", err)
		}
		if _, err := s.Drop(1); err != nil {
			t.Fatalf("Blue drop failed: %v", err)
		}
	}
	res, err := s.Drop(0)
	if err != nil {
		t.Fatalf("Winning drop failed: %v", err)
	}
	return res
}

func TestSessionWinEndsGame(t *testing.T) {
	s := NewSession(&fakeStore{})
	s.Apply(NewGameCommand(6, 7))

	res := playVerticalRedWin(t, s)

	if res.Win == nil {
		t.Fatal("Winning drop did not report a win")
	}
	if s.Phase() != PhaseWon {
		t.Errorf("Phase = %v, want won", s.Phase())
	}
	win := s.Winner()
	if win == nil || win.Turn != TurnRed {
		t.Fatalf("Winner = %+v, want Red", win)
	}
	if (win.From != Point{Row: 2, Col: 0}) || (win.To != Point{Row: 5, Col: 0}) {
		t.Errorf("Winning line %+v -> %+v, want (2,0) -> (5,0)", win.From, win.To)
	}

	// The finished game is terminal until New or Load.
	if _, err := s.Drop(3); !errors.Is(err, ErrGameOver) {
		t.Errorf("Drop after win = %v, want ErrGameOver", err)
	}
	if s.Resumable() {
		t.Error("A won game must not be resumable")
	}
}

func TestSessionSaveRequiresGame(t *testing.T) {
	store := &fakeStore{}
	s := NewSession(store)

	if err := s.Apply(SaveCommand()); !errors.Is(err, ErrNoGame) {
		t.Errorf("Save with no game = %v, want ErrNoGame", err)
	}
	if store.saves != 0 {
		t.Error("Rejected save still hit the store")
	}
}

func TestSessionSaveAfterWin(t *testing.T) {
	store := &fakeStore{}
	s := NewSession(store)
	s.Apply(NewGameCommand(6, 7))
	playVerticalRedWin(t, s)

	// A finished board can still be saved and shared.
	if err := s.Apply(SaveCommand()); err != nil {
		t.Fatalf("Save after win failed: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("Store saw %d saves, want 1", store.saves)
	}
}

func TestSessionSaveLoadRoundTrip(t *testing.T) {
	store := &fakeStore{}
	s := NewSession(store)
	s.Apply(NewGameCommand(6, 7))
	s.Drop(3)
	s.Drop(4)

	if err := s.Apply(SaveCommand()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	other := NewSession(store)
	if err := other.Apply(LoadCommand()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if other.Phase() != PhaseInProgress {
		t.Errorf("Loaded phase = %v, want in progress", other.Phase())
	}
	if other.Turn() != TurnRed {
		t.Errorf("Loaded turn = %v, want Red", other.Turn())
	}
	if other.History().Len() != 2 {
		t.Errorf("Loaded history has %d moves, want 2", other.History().Len())
	}
	if other.Board().At(5, 3) != DiskRed || other.Board().At(5, 4) != DiskBlue {
		t.Error("Loaded board does not match the saved position")
	}
}

func TestSessionLoadDetectsFinishedGame(t *testing.T) {
	// A snapshot saved mid-win-scan (or edited by hand) may already
	// contain a completed line; loading must notice.
	board, _ := NewBoard(6, 7)
	for col := range 4 {
		board.DropDisk(col, DiskBlue)
	}
	store := &fakeStore{snap: &Snapshot{Board: board, Turn: TurnRed, History: NewMoveHistory()}}

	s := NewSession(store)
	if err := s.Apply(LoadCommand()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Phase() != PhaseWon {
		t.Errorf("Phase = %v, want won", s.Phase())
	}
	if win := s.Winner(); win == nil || win.Turn != TurnBlue {
		t.Errorf("Winner = %+v, want Blue", win)
	}
}

func TestSessionLoadErrorKeepsState(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk on fire")}
	s := NewSession(store)
	s.Apply(NewGameCommand(6, 7))
	s.Drop(0)

	if err := s.Apply(LoadCommand()); err == nil {
		t.Fatal("Load should have failed")
	}
	if s.Phase() != PhaseInProgress {
		t.Errorf("Failed load changed phase to %v", s.Phase())
	}
	if s.History().Len() != 1 || s.Board().At(5, 0) != DiskRed {
		t.Error("Failed load changed the live game")
	}
}

func TestSessionApplyAllRunsInOrder(t *testing.T) {
	store := &fakeStore{}
	s := NewSession(store)

	err := s.ApplyAll([]Command{
		NewGameCommand(6, 7),
		SaveCommand(),
		NewGameCommand(8, 9),
	})
	if err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("Store saw %d saves, want 1", store.saves)
	}
	// The later command must have executed after the earlier ones.
	if s.Board().Rows() != 8 || s.Board().Cols() != 9 {
		t.Errorf("Final board is %dx%d, want 8x9", s.Board().Rows(), s.Board().Cols())
	}
	// The save captured the first board, not the second.
	if store.snap.Board.Rows() != 6 {
		t.Error("Save did not capture the state at its point in the batch")
	}
}

func TestSessionApplyAllStopsAtFirstError(t *testing.T) {
	s := NewSession(&fakeStore{})

	err := s.ApplyAll([]Command{
		SaveCommand(), // no game yet
		NewGameCommand(6, 7),
	})
	if !errors.Is(err, ErrNoGame) {
		t.Fatalf("ApplyAll = %v, want ErrNoGame", err)
	}
	if s.Phase() != PhaseNoGame {
		t.Error("Command after the failing one was still applied")
	}
}

func TestSessionWithoutStore(t *testing.T) {
	s := NewSession(nil)
	s.Apply(NewGameCommand(6, 7))

	if err := s.Apply(SaveCommand()); !errors.Is(err, ErrNoStore) {
		t.Errorf("Save without store = %v, want ErrNoStore", err)
	}
	if err := s.Apply(LoadCommand()); !errors.Is(err, ErrNoStore) {
		t.Errorf("Load without store = %v, want ErrNoStore", err)
	}
}
