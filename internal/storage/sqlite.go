// Package storage provides SQLite-based persistence for finished match
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. The in-progress game snapshot lives in the save package;
// this store only records outcomes.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/nvoronin/connect4/internal/game"
)

// Store manages the SQLite database connection for match results.
type Store struct {
	db *sql.DB
}

// MatchEntry is one recorded finished game.
type MatchEntry struct {
	ID        int64
	Winner    string // "Red" or "Blue"
	Rows      int
	Cols      int
	Moves     int // total successful drops in the game
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished game. Returns the inserted row ID.
func (s *Store) SaveMatch(winner game.Turn, rows, cols, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO matches (winner, rows, cols, moves) VALUES (?, ?, ?, ?)",
		winner.String(), rows, cols, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentMatches retrieves the most recent finished games, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, winner, rows, cols, moves, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		var e MatchEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Winner, &e.Rows, &e.Cols, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// WinCount returns how many recorded games the given player has won.
func (s *Store) WinCount(winner game.Turn) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM matches WHERE winner = ?",
		winner.String(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	return count, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or the
// raw DATETIME string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
