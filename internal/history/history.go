// Package history handles SQLite persistence of past analysis runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Run is one recorded analysis execution.
type Run struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	Structure  string
	Trajectory []string
	Kind       string
	OutputYAML string
	Document   string
	Success    bool
	Error      string
	DurationMs int64
}

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			structure TEXT NOT NULL,
			trajectory TEXT NOT NULL,
			kind TEXT NOT NULL,
			output_yaml TEXT NOT NULL,
			document TEXT NOT NULL,
			success INTEGER NOT NULL,
			error TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_finished_at ON runs(finished_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

const runColumns = `id, started_at, finished_at, structure, trajectory, kind, output_yaml, document, success, error, duration_ms`

// InsertRun stores a finished run.
func (s *Store) InsertRun(ctx context.Context, run Run) (int64, error) {
	success := 0
	if run.Success {
		success = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, finished_at, structure, trajectory, kind, output_yaml, document, success, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.Format(time.RFC3339Nano),
		run.FinishedAt.Format(time.RFC3339Nano),
		run.Structure,
		strings.Join(run.Trajectory, "\n"),
		run.Kind,
		run.OutputYAML,
		run.Document,
		success,
		run.Error,
		run.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first. A non-positive
// limit returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := fmt.Sprintf(`SELECT %s FROM runs ORDER BY finished_at DESC, id DESC`, runColumns)
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanRuns(rows)
}

// GetRun returns a single run by id.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	query := fmt.Sprintf(`SELECT %s FROM runs WHERE id = ?`, runColumns)
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return Run{}, err
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, sql.ErrNoRows
	}
	return runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			started    string
			finished   string
			trajectory string
			success    int
		)
		if err := rows.Scan(&run.ID, &started, &finished, &run.Structure, &trajectory,
			&run.Kind, &run.OutputYAML, &run.Document, &success, &run.Error, &run.DurationMs); err != nil {
			return nil, err
		}
		var err error
		run.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run start time: %w", err)
		}
		run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run finish time: %w", err)
		}
		if trajectory != "" {
			run.Trajectory = strings.Split(trajectory, "\n")
		}
		run.Success = success != 0
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}
