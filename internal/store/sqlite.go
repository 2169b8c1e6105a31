// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the embedded migrations (golang-migrate, recorded in
//     schema_migrations).
//   - Inserting and querying results.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	msqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/kbseah/spelling-wasp/internal/store/migrations"
)

// timeLayout has fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite stores results in a database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at path and migrates it.
func OpenSQLite(path string) (*SQLite, error) {
	// Ensure directory exists for ./data/results.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// migrateUp applies the embedded schema migrations.
func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	drv, err := msqlite.WithInstance(db, &msqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: %w", err)
	}
	v, _, _ := m.Version()
	log.Debug().Uint("version", v).Msg("results schema ready")
	return nil
}

// Save inserts r; an existing row for the same session is left untouched.
func (s *SQLite) Save(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (session_id, date, key_letter, letters, score, found, total, guesses, hints,
             solved, started_at, finished_at, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Date, r.Key, r.Letters, r.Score, r.Found, r.Total, r.Guesses, r.Hints,
		r.Solved, r.StartedAt.UTC().Format(timeLayout), r.FinishedAt.UTC().Format(timeLayout),
		r.Elapsed().Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save result %s: %w", r.SessionID, err)
	}
	return nil
}

const selectResults = `
        SELECT session_id, date, key_letter, letters, score, found, total, guesses, hints,
               solved, started_at, finished_at
        FROM results`

// Recent returns the newest results first.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, selectResults+`
        ORDER BY finished_at DESC
        LIMIT ?`, normLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent results: %w", err)
	}
	return scanResults(rows)
}

// Leaderboard ranks the results of one daily date.
func (s *SQLite) Leaderboard(ctx context.Context, date string, limit int) ([]Result, error) {
	if date == "" {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, selectResults+`
        WHERE date = ?
        ORDER BY score DESC, found DESC, elapsed_ms ASC
        LIMIT ?`, date, normLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("leaderboard %s: %w", date, err)
	}
	return scanResults(rows)
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()
	var out []Result
	for rows.Next() {
		var r Result
		var started, finished string
		if err := rows.Scan(&r.SessionID, &r.Date, &r.Key, &r.Letters, &r.Score, &r.Found, &r.Total,
			&r.Guesses, &r.Hints, &r.Solved, &started, &finished); err != nil {
			return nil, err
		}
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// parseTime parses stored timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
