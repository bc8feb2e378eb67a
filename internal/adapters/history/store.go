// Package history persists opened targets in a SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dwim/internal/domain"
	"dwim/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements ports.HistoryStore using SQLite
type Store struct {
	db *sql.DB
}

// Ensure Store implements HistoryStore
var _ ports.HistoryStore = (*Store)(nil)

// Open initializes the store at dbPath. An empty path selects the
// default location under the XDG data directory.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			line INTEGER NOT NULL,
			editor TEXT NOT NULL,
			opened_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_visits_opened_at ON visits(opened_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores one visit.
func (s *Store) Record(target domain.Target, editor string) error {
	_, err := s.db.Exec(`
		INSERT INTO visits (path, line, editor, opened_at) VALUES (?, ?, ?, ?)
	`, target.Path, target.Line, editor, time.Now().Unix())
	return err
}

// Recent returns up to limit visits, newest first.
func (s *Store) Recent(limit int) ([]ports.Visit, error) {
	rows, err := s.db.Query(`
		SELECT path, line, editor, opened_at
		FROM visits ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []ports.Visit
	for rows.Next() {
		var v ports.Visit
		var openedAt int64
		if err := rows.Scan(&v.Target.Path, &v.Target.Line, &v.Editor, &openedAt); err != nil {
			return nil, err
		}
		v.OpenedAt = time.Unix(openedAt, 0)
		visits = append(visits, v)
	}

	return visits, rows.Err()
}

// Clear removes all recorded visits.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM visits")
	return err
}

// DefaultPath returns the database location under the XDG data
// directory.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dwim", "history.db")
}
