package save

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nathoo/saucequest/types"
)

// Slots for the game_saves table.
const (
	slotRun   = "run"
	slotGrave = "grave"
)

// Store persists run state between turns and archives the final state
// of a dead run.
type Store interface {
	LoadRun(ctx context.Context, runID string) (*types.GameState, bool)
	StoreRun(ctx context.Context, runID string, s *types.GameState) error
	ClearRun(ctx context.Context, runID string) error
	Archive(ctx context.Context, runID string, s *types.GameState) error
	LoadGrave(ctx context.Context, runID string) (*types.GameState, bool)
}

// SQLiteStore keeps one row per (run, slot) in the game_saves meta
// table, created on open.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore ensures the save table exists on the shared handle.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	const schema = `
	CREATE TABLE IF NOT EXISTS game_saves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		slot TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE (session_id, slot)
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create game_saves: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (st *SQLiteStore) load(ctx context.Context, runID, slot string) (*types.GameState, bool) {
	var payload []byte
	err := st.db.QueryRowContext(ctx,
		"SELECT payload FROM game_saves WHERE session_id = ? AND slot = ?",
		runID, slot).Scan(&payload)
	if err != nil {
		return nil, false
	}
	s, err := Unmarshal(payload)
	if err != nil {
		return nil, false
	}
	return s, true
}

func (st *SQLiteStore) store(ctx context.Context, runID, slot string, s *types.GameState) error {
	payload, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = st.db.ExecContext(ctx, `
		INSERT INTO game_saves (session_id, slot, payload, created_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT (session_id, slot) DO UPDATE SET
			payload = excluded.payload,
			created_at = excluded.created_at`,
		runID, slot, payload)
	if err != nil {
		return fmt.Errorf("store %s state: %w", slot, err)
	}
	return nil
}

func (st *SQLiteStore) LoadRun(ctx context.Context, runID string) (*types.GameState, bool) {
	return st.load(ctx, runID, slotRun)
}

func (st *SQLiteStore) StoreRun(ctx context.Context, runID string, s *types.GameState) error {
	return st.store(ctx, runID, slotRun, s)
}

func (st *SQLiteStore) ClearRun(ctx context.Context, runID string) error {
	_, err := st.db.ExecContext(ctx,
		"DELETE FROM game_saves WHERE session_id = ? AND slot = ?", runID, slotRun)
	if err != nil {
		return fmt.Errorf("clear run state: %w", err)
	}
	return nil
}

func (st *SQLiteStore) Archive(ctx context.Context, runID string, s *types.GameState) error {
	return st.store(ctx, runID, slotGrave, s)
}

func (st *SQLiteStore) LoadGrave(ctx context.Context, runID string) (*types.GameState, bool) {
	return st.load(ctx, runID, slotGrave)
}

// MemoryStore is an in-process Store for tests and throwaway runs.
type MemoryStore struct {
	runs   map[string][]byte
	graves map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:   map[string][]byte{},
		graves: map[string][]byte{},
	}
}

func (m *MemoryStore) LoadRun(ctx context.Context, runID string) (*types.GameState, bool) {
	payload, ok := m.runs[runID]
	if !ok {
		return nil, false
	}
	s, err := Unmarshal(payload)
	if err != nil {
		return nil, false
	}
	return s, true
}

func (m *MemoryStore) StoreRun(ctx context.Context, runID string, s *types.GameState) error {
	payload, err := Marshal(s)
	if err != nil {
		return err
	}
	m.runs[runID] = payload
	return nil
}

func (m *MemoryStore) ClearRun(ctx context.Context, runID string) error {
	delete(m.runs, runID)
	return nil
}

func (m *MemoryStore) Archive(ctx context.Context, runID string, s *types.GameState) error {
	payload, err := Marshal(s)
	if err != nil {
		return err
	}
	m.graves[runID] = payload
	return nil
}

func (m *MemoryStore) LoadGrave(ctx context.Context, runID string) (*types.GameState, bool) {
	payload, ok := m.graves[runID]
	if !ok {
		return nil, false
	}
	s, err := Unmarshal(payload)
	if err != nil {
		return nil, false
	}
	return s, true
}
