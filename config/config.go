// Package config loads runtime configuration from environment variables.
// Flags in cmd/saucequest override whatever is loaded here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the saucequest binary.
type Config struct {
	// DBPath is the SQLite database holding the content store and the
	// engine's meta tables (scores, saves).
	DBPath string `env:"SAUCEQUEST_DB" envDefault:"saucequest.db"`
	// RunID identifies the active run for save/restore. Empty means a
	// fresh UUID per process.
	RunID string `env:"SAUCEQUEST_RUN"`
	// Seed seeds the engine RNG. 0 means derive from the clock.
	Seed int64 `env:"SAUCEQUEST_SEED"`
	// LogLevel is one of error, warn, info, debug.
	LogLevel string `env:"SAUCEQUEST_LOG_LEVEL" envDefault:"warn"`
	// Plain forces the line-based CLI instead of the TUI.
	Plain bool `env:"SAUCEQUEST_PLAIN"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
