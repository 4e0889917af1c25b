// Package state owns run construction and the small mutations on a
// run's player and inventory that the engine verbs share.
package state

import (
	"strings"

	"github.com/nathoo/saucequest/types"
)

// Starting vitals for a fresh run.
const (
	StartHP     = 10
	StartMaxHP  = 10
	MaxHunger   = 10
	StartSanity = 8
	MaxSanity   = 12

	// ShardsToWin is how many sauce shards end the run in victory.
	ShardsToWin = 20
)

// NewRun builds the initial state for a player standing at startPos.
func NewRun(playerName string, startPos int64, seed int64) *types.GameState {
	if playerName == "" {
		playerName = "Chef"
	}
	return &types.GameState{
		Player: types.Player{
			Name:      playerName,
			HP:        StartHP,
			MaxHP:     StartMaxHP,
			Hunger:    0,
			MaxHunger: MaxHunger,
			Sanity:    StartSanity,
			MaxSanity: MaxSanity,
			Inventory: []types.Item{},
		},
		Pos:         startPos,
		Visited:     []int64{startPos},
		Depth:       1,
		Log:         []string{`You wake in a neon-lit alley. A whisper: "Where is the Lamb Sauce?"`},
		ShardVenues: []int64{},
		RNGSeed:     seed,
	}
}

// Clamp pins a value into [0, max].
func Clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// ClampVitals normalizes all player vitals after a mutation.
func ClampVitals(p *types.Player) {
	p.HP = Clamp(p.HP, p.MaxHP)
	p.Hunger = Clamp(p.Hunger, p.MaxHunger)
	p.Sanity = Clamp(p.Sanity, p.MaxSanity)
}

// AddItem merges qty into an existing stack of the same name and kind,
// or appends a new stack.
func AddItem(p *types.Player, name string, qty int, kind string) {
	if qty <= 0 {
		return
	}
	for i := range p.Inventory {
		if strings.EqualFold(p.Inventory[i].Name, name) && p.Inventory[i].Kind == kind {
			p.Inventory[i].Qty += qty
			return
		}
	}
	p.Inventory = append(p.Inventory, types.Item{Name: name, Qty: qty, Kind: kind})
}

// FindFood returns the index of the first food stack whose name
// contains the query, case-insensitively. An empty query matches the
// first food stack. Returns -1 when nothing matches.
func FindFood(p *types.Player, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	for i, item := range p.Inventory {
		if item.Kind != "food" || item.Qty <= 0 {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(item.Name), q) {
			return i
		}
	}
	return -1
}

// ConsumeItem decrements the stack at index and drops it when emptied.
func ConsumeItem(p *types.Player, i int) {
	if i < 0 || i >= len(p.Inventory) {
		return
	}
	p.Inventory[i].Qty--
	if p.Inventory[i].Qty <= 0 {
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
	}
}

// HasShard reports whether the venue's shard was already claimed this run.
func HasShard(s *types.GameState, venueID int64) bool {
	for _, id := range s.ShardVenues {
		if id == venueID {
			return true
		}
	}
	return false
}

// ClaimShard records the venue and recounts the player's shards.
// Returns false if the venue's shard was already claimed.
func ClaimShard(s *types.GameState, venueID int64) bool {
	if HasShard(s, venueID) {
		return false
	}
	s.ShardVenues = append(s.ShardVenues, venueID)
	s.Player.SauceShards = len(s.ShardVenues)
	return true
}
