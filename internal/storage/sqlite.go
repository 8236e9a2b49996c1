// Package storage provides SQLite-based persistence for finished runs and
// their message logs. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-rogue/internal/message"
)

// ErrRunNotFound is returned when no run matches an ID or prefix.
var ErrRunNotFound = errors.New("run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished game.
type Run struct {
	ID          uuid.UUID
	Seed        int64
	Turns       int
	MapsVisited int
	Player      string // SSH user, or empty for local games
	StartedAt   time.Time
	EndedAt     time.Time
	Messages    int // number of archived messages, filled by queries
}

// Duration returns how long the run lasted.
func (r Run) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
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
// Times are stored as unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			maps_visited INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);

		CREATE TABLE IF NOT EXISTS messages (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			contents TEXT NOT NULL,
			severity TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
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

// SaveRun records a finished run and its messages, oldest first, in one
// transaction.
func (s *Store) SaveRun(run Run, msgs []message.Message) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, seed, turns, maps_visited, player, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.Seed, run.Turns, run.MapsVisited, run.Player,
		run.StartedAt.UnixMilli(), run.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO messages (run_id, seq, contents, severity) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare message insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range msgs {
		if _, err := stmt.Exec(run.ID.String(), i, m.Contents, m.Severity.String()); err != nil {
			return fmt.Errorf("storage: cannot save message %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return nil
}

const runColumns = `r.id, r.seed, r.turns, r.maps_visited, r.player, r.started_at, r.ended_at,
	(SELECT COUNT(*) FROM messages m WHERE m.run_id = r.id)`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		r          Run
		id         string
		start, end int64
	)
	if err := row.Scan(&id, &r.Seed, &r.Turns, &r.MapsVisited, &r.Player, &start, &end, &r.Messages); err != nil {
		return Run{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Run{}, fmt.Errorf("storage: bad run id %q: %w", id, err)
	}
	r.ID = parsed
	r.StartedAt = time.UnixMilli(start)
	r.EndedAt = time.UnixMilli(end)
	return r, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs r
		 ORDER BY r.started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
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

// FindRun looks a run up by full ID or unique ID prefix.
func (s *Store) FindRun(idOrPrefix string) (Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs r
		 WHERE r.id LIKE ? || '%'
		 LIMIT 2`,
		idOrPrefix,
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return Run{}, fmt.Errorf("storage: %q: %w", idOrPrefix, ErrRunNotFound)
	case 1:
		return found[0], nil
	default:
		return Run{}, fmt.Errorf("storage: run prefix %q is ambiguous", idOrPrefix)
	}
}

// RunMessages returns the archived messages of a run, oldest first.
func (s *Store) RunMessages(id uuid.UUID) ([]message.Message, error) {
	rows, err := s.db.Query(
		`SELECT contents, severity FROM messages WHERE run_id = ? ORDER BY seq`,
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query messages: %w", err)
	}
	defer rows.Close()

	var msgs []message.Message
	for rows.Next() {
		var contents, severity string
		if err := rows.Scan(&contents, &severity); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		msgs = append(msgs, message.New(contents, message.ParseSeverity(severity)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return msgs, nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	TotalTurns int64
	LongestRun int
	MostMaps   int
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics over the whole journal.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var last sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(turns), 0), COALESCE(MAX(turns), 0),
		        COALESCE(MAX(maps_visited), 0), MAX(ended_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.TotalTurns, &stats.LongestRun, &stats.MostMaps, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if last.Valid {
		stats.LastPlayed = time.UnixMilli(last.Int64)
	}

	return stats, nil
}

// DeleteRun removes a run and its messages.
func (s *Store) DeleteRun(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages WHERE run_id = ?", id.String()); err != nil {
		return fmt.Errorf("storage: cannot delete messages: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: %s: %w", id, ErrRunNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}
