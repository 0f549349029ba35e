// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is the outcome of one simulation run. Only results are stored,
// never the simulation state.
type RunRecord struct {
	ID        int64
	Input     string // path of the input file as given on the command line
	Format    string
	Width     int
	Height    int
	X         int
	Y         int
	Removed   int
	DustTotal int
	Steps     int
	Host      string
	CreatedAt time.Time
}

// RunStats contains aggregated statistics for one input file.
type RunStats struct {
	Input       string
	Runs        int
	BestRemoved int
	AvgRemoved  float64
	LastRun     time.Time
}

// HostID returns a stable, app-scoped identifier of this machine.
func HostID() string {
	id, err := machineid.ProtectedID("roomba")
	if err != nil || id == "" {
		return "unknown"
	}
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			format TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			final_x INTEGER NOT NULL,
			final_y INTEGER NOT NULL,
			removed INTEGER NOT NULL,
			dust_total INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			host TEXT NOT NULL DEFAULT 'unknown',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(input, removed DESC);
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

// SaveRun records a finished run and returns the ID of the inserted row.
// An empty Host is filled in with HostID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.Host == "" {
		r.Host = HostID()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (input, format, width, height, final_x, final_y, removed, dust_total, steps, host)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Input, r.Format, r.Width, r.Height, r.X, r.Y, r.Removed, r.DustTotal, r.Steps, r.Host,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, input, format, width, height, final_x, final_y, removed, dust_total, steps, host, created_at`

// RecentRuns retrieves the most recent runs across all inputs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// RunsForInput retrieves the most recent runs of one input file, newest first.
func (s *Store) RunsForInput(input string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE input = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		input, limit,
	)
}

// BestRun returns the run of input that removed the most dust, earliest first
// on ties. Returns nil if the input has never been run.
func (s *Store) BestRun(input string) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE input = ? ORDER BY removed DESC, id ASC LIMIT 1`,
		input,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes the history of one input. An empty input clears everything.
func (s *Store) ClearRuns(input string) error {
	var err error
	if input == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE input = ?", input)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for one input.
func (s *Store) Stats(input string) (*RunStats, error) {
	stats := &RunStats{Input: input}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(removed), 0), COALESCE(AVG(removed), 0), MAX(created_at)
		 FROM runs WHERE input = ?`,
		input,
	).Scan(&stats.Runs, &stats.BestRemoved, &stats.AvgRemoved, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.Input, &r.Format, &r.Width, &r.Height,
		&r.X, &r.Y, &r.Removed, &r.DustTotal, &r.Steps, &r.Host, &createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
