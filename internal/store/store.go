package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a mutation touches zero rows, typically
// because the row disappeared after the caller loaded its snapshot.
var ErrNotFound = errors.New("not found")

// Store owns the embedded SQLite database for the lifetime of the process.
// All calls are synchronous; the store is not safe for concurrent use and
// does not need to be.
type Store struct {
	db *sql.DB
}

// Open creates the parent directory if needed, opens the database file and
// runs lazy migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply pragma: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS binders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			number INTEGER NOT NULL UNIQUE,
			label TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS songs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			composer TEXT,
			link TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS binder_songs (
			binder_id INTEGER NOT NULL,
			song_id INTEGER NOT NULL,
			PRIMARY KEY (binder_id, song_id),
			FOREIGN KEY(binder_id) REFERENCES binders(id) ON DELETE CASCADE,
			FOREIGN KEY(song_id) REFERENCES songs(id) ON DELETE CASCADE
		);`,
	}
	for _, st := range stmts {
		if _, err := s.db.Exec(st); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}

// Seed inserts binders numbered 1..n when the binders table is empty. Runs
// exactly once per fresh database; an already-populated table is left alone.
func (s *Store) Seed(n int64) error {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM binders").Scan(&count); err != nil {
		return fmt.Errorf("failed to count binders: %w", err)
	}
	if count > 0 || n <= 0 {
		return nil
	}

	for number := int64(1); number <= n; number++ {
		label := fmt.Sprintf("Binder %02d", number)
		if _, err := s.db.Exec(
			"INSERT INTO binders (number, label) VALUES (?, ?)", number, label,
		); err != nil {
			return fmt.Errorf("failed to seed binder %d: %w", number, err)
		}
	}
	return nil
}

// isUniqueViolation detects the UNIQUE constraint error the modernc driver
// reports as plain text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
