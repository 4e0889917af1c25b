// Package types defines the shared data structures for the SauceQuest engine.
// It contains only type definitions, no logic.
package types

// Item is a single inventory entry.
type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
	Kind string `json:"kind"` // "food" is the only kind the engine acts on
}

// Player holds the player's mutable resource state.
type Player struct {
	Name        string `json:"name"`
	HP          int    `json:"hp"`
	MaxHP       int    `json:"max_hp"`
	Hunger      int    `json:"hunger"`
	MaxHunger   int    `json:"max_hunger"`
	Sanity      int    `json:"sanity"`
	MaxSanity   int    `json:"max_sanity"`
	SauceShards int    `json:"sauce_shards"`
	Inventory   []Item `json:"inventory"`
}

// PendingRiddle is an outstanding chant parity rite.
// Answer is always exactly "even" or "odd".
type PendingRiddle struct {
	Answer string `json:"answer"`
	Mode   string `json:"mode"` // "normal" or "hard"
	Source string `json:"source,omitempty"`
}

// PendingEnemy is an outstanding monster riddle encounter.
type PendingEnemy struct {
	Name     string `json:"name"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GameState is the complete mutable state of one run.
type GameState struct {
	Player        Player         `json:"player"`
	Pos           int64          `json:"pos"` // current venue ID, 0 = no content
	Visited       []int64        `json:"visited"`
	Depth         int            `json:"depth"`
	Log           []string       `json:"log"`
	PendingRiddle *PendingRiddle `json:"pending_riddle,omitempty"`
	PendingEnemy  *PendingEnemy  `json:"pending_enemy,omitempty"`
	ShardVenues   []int64        `json:"shard_venues"` // venues whose hard shard is claimed
	Win           bool           `json:"win"`
	RNGSeed       int64          `json:"rng_seed"`
	RNGPos        int64          `json:"rng_pos"`
}

// Result is the narrative output of a single processed command.
type Result struct {
	Output []string
	Dead   bool // the run ended during this command
}
