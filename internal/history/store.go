// Package history persists switchcheck verification runs in a local
// SQLite database so past matrix outcomes can be listed and compared.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/retroctrl/platform-switch/internal/buildmatrix"
)

// Store state errors.
var (
	ErrAlreadyOpen = errors.New("history store already open")
	ErrNotOpen     = errors.New("history store not open")
	ErrRunNotFound = errors.New("run not found")
)

// timeLayout is the stored timestamp format.
const timeLayout = time.RFC3339Nano

// Run summarizes one recorded verification run.
type Run struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Passed    int       `json:"passed"`
	Total     int       `json:"total"`
}

// EntryResult is one recorded matrix-entry outcome.
type EntryResult struct {
	EntryName string `json:"entry_name"`
	Tags      string `json:"tags"`
	Target    string `json:"target"`
	WantFail  bool   `json:"want_fail"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
}

// Store records verification runs. Not open until Open is called.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	open bool
}

// NewStore returns an unopened Store.
func NewStore() *Store {
	return &Store{}
}

// Open creates the database file (and its parent directory) if needed
// and initializes the schema. Returns ErrAlreadyOpen on a second call.
func (s *Store) Open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return ErrAlreadyOpen
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}

	for _, ddl := range []string{createRuns, createResults} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("init history schema: %w", err)
		}
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database. Returns ErrNotOpen if never opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrNotOpen
	}
	s.open = false
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("close history db: %w", err)
	}
	return nil
}

// RecordRun persists a report and its per-entry results atomically.
func (s *Store) RecordRun(report *buildmatrix.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrNotOpen
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	passed, total := report.Counts()
	if _, err := tx.Exec(
		`INSERT INTO runs (run_id, started_at, passed, total) VALUES (?, ?, ?, ?)`,
		report.RunID, report.StartedAt.Format(timeLayout), passed, total,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, res := range report.Results {
		if _, err := tx.Exec(
			`INSERT INTO results (run_id, entry_name, tags, target, want_fail, outcome, detail)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			report.RunID, res.Entry.Name, res.Entry.TagString(), res.Entry.Target,
			res.Entry.WantFail, res.Outcome, res.Detail,
		); err != nil {
			return fmt.Errorf("insert result %q: %w", res.Entry.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Runs returns recorded runs, newest first.
func (s *Store) Runs() ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrNotOpen
	}

	rows, err := s.db.Query(
		`SELECT run_id, started_at, passed, total FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.RunID, &started, &r.Passed, &r.Total); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, err = time.Parse(timeLayout, started)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-entry outcomes of one run in entry-name
// order. Returns ErrRunNotFound for an unknown run ID.
func (s *Store) Results(runID string) ([]EntryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrNotOpen
	}

	var exists int
	err := s.db.QueryRow(`SELECT COUNT(1) FROM runs WHERE run_id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("lookup run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, strings.TrimSpace(runID))
	}

	rows, err := s.db.Query(
		`SELECT entry_name, tags, target, want_fail, outcome, detail
         FROM results WHERE run_id = ? ORDER BY entry_name`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []EntryResult
	for rows.Next() {
		var r EntryResult
		var detail sql.NullString
		if err := rows.Scan(&r.EntryName, &r.Tags, &r.Target, &r.WantFail, &r.Outcome, &detail); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Detail = detail.String
		results = append(results, r)
	}
	return results, rows.Err()
}
