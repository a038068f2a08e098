package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvoronin/connect4/internal/game"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveMatches(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveMatch(game.TurnRed, 6, 7, 7); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(game.TurnBlue, 8, 9, 22); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(game.TurnRed, 6, 7, 11); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	entries, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(entries))
	}

	// Newest first
	if entries[0].Moves != 11 {
		t.Errorf("Expected newest match first (11 moves), got %d", entries[0].Moves)
	}
	if entries[0].Winner != "Red" {
		t.Errorf("Expected winner Red, got %q", entries[0].Winner)
	}
	if entries[1].Rows != 8 || entries[1].Cols != 9 {
		t.Errorf("Expected 8x9 board, got %dx%d", entries[1].Rows, entries[1].Cols)
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveMatch(game.TurnRed, 6, 7, i+7)
	}

	entries, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 matches with limit, got %d", len(entries))
	}
}

func TestStoreWinCount(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No matches yet
	count, err := store.WinCount(game.TurnRed)
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 wins on empty store, got %d", count)
	}

	store.SaveMatch(game.TurnRed, 6, 7, 7)
	store.SaveMatch(game.TurnRed, 6, 7, 9)
	store.SaveMatch(game.TurnBlue, 6, 7, 12)

	redWins, _ := store.WinCount(game.TurnRed)
	blueWins, _ := store.WinCount(game.TurnBlue)
	if redWins != 2 {
		t.Errorf("Expected 2 Red wins, got %d", redWins)
	}
	if blueWins != 1 {
		t.Errorf("Expected 1 Blue win, got %d", blueWins)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveMatch(game.TurnRed, 6, 7, 7)
	store.SaveMatch(game.TurnBlue, 6, 7, 8)

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	entries, _ := store.RecentMatches(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 matches after clear, got %d", len(entries))
	}
}
