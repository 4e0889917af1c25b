// Package save implements serialization and persistence of run state.
// The active run is stored after every processed command; on death the
// final state is archived as a grave snapshot for the death screen.
package save

import (
	"encoding/json"

	"github.com/nathoo/saucequest/types"
)

// Marshal serializes a game state to JSON bytes.
func Marshal(s *types.GameState) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal deserializes JSON bytes into a game state, normalizing
// nil slices so callers never check for them.
func Unmarshal(data []byte) (*types.GameState, error) {
	var s types.GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Player.Inventory == nil {
		s.Player.Inventory = []types.Item{}
	}
	if s.Visited == nil {
		s.Visited = []int64{}
	}
	if s.Log == nil {
		s.Log = []string{}
	}
	if s.ShardVenues == nil {
		s.ShardVenues = []int64{}
	}
	return &s, nil
}
