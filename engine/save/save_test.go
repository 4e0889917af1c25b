package save

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/saucequest/types"
)

func sampleState() *types.GameState {
	return &types.GameState{
		Player: types.Player{
			Name: "Riley Knifehands", HP: 7, MaxHP: 10,
			Hunger: 3, MaxHunger: 10, Sanity: 8, MaxSanity: 12,
			SauceShards: 2,
			Inventory:   []types.Item{{Name: "Spicy Miso", Qty: 2, Kind: "food"}},
		},
		Pos:           4,
		Visited:       []int64{1, 4},
		Depth:         3,
		Log:           []string{"You wake in a neon-lit alley."},
		PendingRiddle: &types.PendingRiddle{Answer: "odd", Mode: "hard"},
		ShardVenues:   []int64{1, 4},
		RNGSeed:       42,
		RNGPos:        17,
	}
}

func TestRoundTrip(t *testing.T) {
	orig := sampleState()

	data, err := Marshal(orig)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestUnmarshal_NormalizesNilSlices(t *testing.T) {
	got, err := Unmarshal([]byte(`{"player":{"name":"X"}}`))
	require.NoError(t, err)

	assert.NotNil(t, got.Player.Inventory)
	assert.NotNil(t, got.Visited)
	assert.NotNil(t, got.Log)
	assert.NotNil(t, got.ShardVenues)
}

func openSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteStore(context.Background(), db)
	require.NoError(t, err)
	return store
}

func TestSQLiteStore_StoreAndLoad(t *testing.T) {
	store := openSQLiteStore(t)
	ctx := context.Background()
	s := sampleState()

	require.NoError(t, store.StoreRun(ctx, "run-1", s))

	got, ok := store.LoadRun(ctx, "run-1")
	require.True(t, ok)
	assert.Equal(t, s, got)

	_, ok = store.LoadRun(ctx, "run-2")
	assert.False(t, ok)
}

func TestSQLiteStore_OverwritesRunSlot(t *testing.T) {
	store := openSQLiteStore(t)
	ctx := context.Background()
	s := sampleState()

	require.NoError(t, store.StoreRun(ctx, "run-1", s))
	s.Depth = 9
	require.NoError(t, store.StoreRun(ctx, "run-1", s))

	got, ok := store.LoadRun(ctx, "run-1")
	require.True(t, ok)
	assert.Equal(t, 9, got.Depth)
}

func TestSQLiteStore_ArchiveAndClear(t *testing.T) {
	store := openSQLiteStore(t)
	ctx := context.Background()
	s := sampleState()

	require.NoError(t, store.StoreRun(ctx, "run-1", s))
	require.NoError(t, store.Archive(ctx, "run-1", s))
	require.NoError(t, store.ClearRun(ctx, "run-1"))

	_, ok := store.LoadRun(ctx, "run-1")
	assert.False(t, ok, "run slot should be gone")

	grave, ok := store.LoadGrave(ctx, "run-1")
	require.True(t, ok, "grave slot should survive the clear")
	assert.Equal(t, s, grave)
}

func TestMemoryStore_MatchesContract(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	s := sampleState()

	require.NoError(t, store.StoreRun(ctx, "m1", s))
	got, ok := store.LoadRun(ctx, "m1")
	require.True(t, ok)
	assert.Equal(t, s, got)

	require.NoError(t, store.Archive(ctx, "m1", s))
	require.NoError(t, store.ClearRun(ctx, "m1"))
	_, ok = store.LoadRun(ctx, "m1")
	assert.False(t, ok)
	_, ok = store.LoadGrave(ctx, "m1")
	assert.True(t, ok)
}
