// Package storage provides SQLite-based persistence for finished run statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Board contents are never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-life/internal/core"
)

// Store manages the SQLite database connection for run statistics.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded run.
type RunEntry struct {
	ID                int64
	Pattern           string // Empty for hand-drawn or random boards
	Width             int
	Height            int
	Generations       int
	PeakPopulation    int
	InitialPopulation int
	EndReason         string
	CreatedAt         time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs             int
	Extinctions      int
	LongestRun       int
	AvgGenerations   float64
	TotalGenerations int64
	PeakPopulation   int
	LastPlayed       time.Time
}

const timeLayout = "2006-01-02 15:04:05"

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pattern TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			peak_population INTEGER NOT NULL DEFAULT 0,
			initial_population INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_generations ON runs(generations DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run core.RunSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (pattern, width, height, generations, peak_population, initial_population, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Pattern, run.Width, run.Height, run.Generations,
		run.PeakPopulation, run.InitialPopulation, run.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, pattern, width, height, generations, peak_population, initial_population, end_reason, created_at`

// TopRuns retrieves the N longest runs, ordered by generations descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY generations DESC, id ASC LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the N most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// PatternRuns retrieves the N longest runs started from the named pattern.
func (s *Store) PatternRuns(pattern string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE pattern = ? ORDER BY generations DESC, id ASC LIMIT ?`,
		pattern, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.Pattern, &e.Width, &e.Height, &e.Generations,
			&e.PeakPopulation, &e.InitialPopulation, &e.EndReason, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LongestRun returns the highest generation count recorded.
// Returns 0 if no runs exist.
func (s *Store) LongestRun() (int, error) {
	var gens sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(generations) FROM runs").Scan(&gens)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	if !gens.Valid {
		return 0, nil
	}
	return int(gens.Int64), nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN end_reason = 'extinct' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(generations), 0),
		        COALESCE(AVG(generations), 0),
		        COALESCE(SUM(generations), 0),
		        COALESCE(MAX(peak_population), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Extinctions, &stats.LongestRun, &stats.AvgGenerations,
		&stats.TotalGenerations, &stats.PeakPopulation)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
