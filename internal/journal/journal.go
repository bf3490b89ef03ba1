// Package journal persists committed palette ranges to a SQLite database
// so an interrupted editing session can be replayed onto a fresh document.
package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/MeKo-Tech/paletteedit/internal/color"
)

// Store appends committed palette ranges to a SQLite edit log.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Open opens (or creates) the journal database at path and initializes the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// createSchema creates the edit-log table.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS edits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at INTEGER NOT NULL,
			frame INTEGER NOT NULL,
			idx_from INTEGER NOT NULL,
			idx_to INTEGER NOT NULL,
			colors BLOB NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Record appends one committed range. colors holds the new values for the
// inclusive index range [from, to], four bytes per entry (RGBA).
func (s *Store) Record(frame, from, to int, colors []color.RGBA) error {
	if want := to - from + 1; len(colors) != want {
		return fmt.Errorf("color count %d does not match range [%d,%d]", len(colors), from, to)
	}

	blob := make([]byte, 0, len(colors)*4)
	for _, c := range colors {
		blob = append(blob, c.R, c.G, c.B, c.A)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO edits (recorded_at, frame, idx_from, idx_to, colors) VALUES (?, ?, ?, ?, ?)",
		time.Now().UnixMilli(), frame, from, to, blob,
	)
	if err != nil {
		return fmt.Errorf("failed to insert edit [%d,%d]: %w", from, to, err)
	}
	return nil
}

// Entry is one replayed edit.
type Entry struct {
	Frame  int
	From   int
	To     int
	Colors []color.RGBA
}

// Replay calls fn for every recorded edit in commit order. Replaying every
// entry onto an empty document reproduces its committed palettes.
func (s *Store) Replay(fn func(Entry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT frame, idx_from, idx_to, colors FROM edits ORDER BY id")
	if err != nil {
		return fmt.Errorf("failed to query edits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e Entry
		var blob []byte
		if err := rows.Scan(&e.Frame, &e.From, &e.To, &blob); err != nil {
			return fmt.Errorf("failed to scan edit: %w", err)
		}
		if len(blob) != (e.To-e.From+1)*4 {
			return fmt.Errorf("corrupt edit blob for range [%d,%d]: %d bytes", e.From, e.To, len(blob))
		}
		e.Colors = make([]color.RGBA, 0, len(blob)/4)
		for i := 0; i < len(blob); i += 4 {
			e.Colors = append(e.Colors, color.RGBA{R: blob[i], G: blob[i+1], B: blob[i+2], A: blob[i+3]})
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Len returns the number of recorded edits.
func (s *Store) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM edits").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count edits: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
