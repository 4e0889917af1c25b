// Package scores implements the append-only permadeath ledger. One row
// is written per death, never otherwise.
package scores

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Entry is one finished run.
type Entry struct {
	Player    string
	Depth     int
	Shards    int
	Cause     string
	CreatedAt string // RFC 3339, UTC
}

// Store records and lists final scores.
type Store interface {
	Append(ctx context.Context, e Entry) error
	Recent(ctx context.Context, n int) ([]Entry, error)
}

// SQLiteStore persists scores in the game_scores meta table, which it
// creates on open. The content tables are never touched.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore ensures the ledger table exists on the shared handle.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	const schema = `
	CREATE TABLE IF NOT EXISTS game_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		depth INTEGER NOT NULL,
		sauce_shards INTEGER NOT NULL,
		cause_of_death TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create game_scores: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes one score row. An empty CreatedAt is filled with the
// current UTC time.
func (s *SQLiteStore) Append(ctx context.Context, e Entry) error {
	if e.CreatedAt == "" {
		e.CreatedAt = Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_scores (player_name, depth, sauce_shards, cause_of_death, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.Player, e.Depth, e.Shards, e.Cause, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return nil
}

// Recent returns the latest n entries, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_name, depth, sauce_shards, cause_of_death, created_at
		FROM game_scores ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Player, &e.Depth, &e.Shards, &e.Cause, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MemoryStore keeps the ledger in process memory, for DB-less play.
type MemoryStore struct {
	entries []Entry
}

// NewMemoryStore creates an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(ctx context.Context, e Entry) error {
	if e.CreatedAt == "" {
		e.CreatedAt = Now()
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *MemoryStore) Recent(ctx context.Context, n int) ([]Entry, error) {
	out := make([]Entry, 0, n)
	for i := len(m.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// Now returns the current time formatted for the ledger.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
