package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	draw INTEGER NOT NULL DEFAULT 0,
	winner TEXT NOT NULL DEFAULT '',
	teams TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_finished ON results(finished_at);`

// SQLiteStore keeps results in a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection.
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare history database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Record(ctx context.Context, r Result) error {
	teams, err := json.Marshal(r.Teams)
	if err != nil {
		return fmt.Errorf("encode teams: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (game_id, finished_at, draw, winner, teams) VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.FinishedAt.UTC().Format(time.RFC3339Nano), r.Draw, r.Winner, string(teams),
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, finished_at, draw, winner, teams FROM results ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var (
			r          Result
			finishedAt string
			teams      string
		)
		if err := rows.Scan(&r.GameID, &finishedAt, &r.Draw, &r.Winner, &teams); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		if err := json.Unmarshal([]byte(teams), &r.Teams); err != nil {
			return nil, fmt.Errorf("decode teams: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
