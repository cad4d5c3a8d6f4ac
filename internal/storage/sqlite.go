// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: run not found")

// timeLayout is how timestamps are stored.
const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one animation session from start to quit.
type Run struct {
	ID                string
	Backend           string
	User              string
	Seed              int64
	ViewportW         float64
	ViewportH         float64
	BoxW              float64
	BoxH              float64
	Ticks             int64
	HorizontalBounces int
	VerticalBounces   int
	StartedAt         time.Time
	EndedAt           time.Time
}

// Duration returns how long the run lasted.
func (r Run) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// ExpandPath replaces a leading ~ with the user's home directory. The path
// is returned unchanged if the home directory is unknown.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		if _, err := os.UserHomeDir(); err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = ExpandPath(dbPath)
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			backend TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			viewport_w REAL NOT NULL,
			viewport_h REAL NOT NULL,
			box_w REAL NOT NULL,
			box_h REAL NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			bounces_h INTEGER NOT NULL DEFAULT 0,
			bounces_v INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_ticks ON runs(ticks DESC);
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

// SaveRun records a finished run. Saving the same ID twice replaces it.
func (s *Store) SaveRun(r Run) error {
	if r.ID == "" {
		return errors.New("storage: run has no ID")
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO runs
		 (id, backend, user, seed, viewport_w, viewport_h, box_w, box_h,
		  ticks, bounces_h, bounces_v, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Backend, r.User, r.Seed, r.ViewportW, r.ViewportH, r.BoxW, r.BoxH,
		r.Ticks, r.HorizontalBounces, r.VerticalBounces,
		r.StartedAt.UTC().Format(timeLayout), r.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// GetRun retrieves a single run by ID.
func (s *Store) GetRun(id string) (Run, error) {
	rows, err := s.db.Query(selectRuns+` WHERE id = ?`, id)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, ErrNotFound
	}
	return runs[0], nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(selectRuns+` ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// LongestRuns retrieves the runs with the most ticks.
func (s *Store) LongestRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(selectRuns+` ORDER BY ticks DESC, started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunCount returns the total number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return count, nil
}

const selectRuns = `SELECT id, backend, user, seed, viewport_w, viewport_h, box_w, box_h,
	ticks, bounces_h, bounces_v, started_at, ended_at FROM runs`

// scanRuns reads every row and closes rows.
func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt, endedAt string
		if err := rows.Scan(
			&r.ID, &r.Backend, &r.User, &r.Seed,
			&r.ViewportW, &r.ViewportH, &r.BoxW, &r.BoxH,
			&r.Ticks, &r.HorizontalBounces, &r.VerticalBounces,
			&startedAt, &endedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if parsed, err := time.Parse(timeLayout, startedAt); err == nil {
			r.StartedAt = parsed
		}
		if parsed, err := time.Parse(timeLayout, endedAt); err == nil {
			r.EndedAt = parsed
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
