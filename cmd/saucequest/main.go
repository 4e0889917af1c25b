// SauceQuest is a permadeath dungeon crawl derived from a food-delivery
// database: restaurants become rooms, reviews become moods, and order
// totals become the riddles that guard Sauce Shards.
//
// Usage: saucequest [--version] [--plain] [--db <file>] [--run <id>]
//
//	[--seed <n>] [--world <dir>] [--memory]
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nathoo/saucequest/cli"
	"github.com/nathoo/saucequest/config"
	"github.com/nathoo/saucequest/content"
	"github.com/nathoo/saucequest/engine"
	"github.com/nathoo/saucequest/engine/save"
	"github.com/nathoo/saucequest/loader"
	"github.com/nathoo/saucequest/log"
	"github.com/nathoo/saucequest/scores"
	"github.com/nathoo/saucequest/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var worldDir string
	memory := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("saucequest %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			cfg.Plain = true
		case "--memory":
			memory = true
		case "--db":
			cfg.DBPath = flagValue(args, &i)
		case "--run":
			cfg.RunID = flagValue(args, &i)
		case "--seed":
			n, err := strconv.ParseInt(flagValue(args, &i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed requires an integer\n")
				os.Exit(1)
			}
			cfg.Seed = n
		case "--world":
			worldDir = flagValue(args, &i)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag %s\nUsage: saucequest [--version] [--plain] [--db <file>] [--run <id>] [--seed <n>] [--world <dir>] [--memory]\n", args[i])
			os.Exit(1)
		}
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.SetLevel(level)
	logger := log.Default()

	ctx := context.Background()

	var world *loader.World
	if worldDir != "" {
		world, err = loader.Load(worldDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
			os.Exit(1)
		}
		logger.Info("loaded world %q: %d venue(s)", world.Name, len(world.Restaurants))
	}
	if memory && world == nil {
		fmt.Fprintf(os.Stderr, "--memory requires --world <dir>\n")
		os.Exit(1)
	}

	var repo content.Repository
	var scoreStore scores.Store
	var saveStore save.Store

	if memory {
		repo = world.ToMemory()
		scoreStore = scores.NewMemoryStore()
		saveStore = save.NewMemoryStore()
	} else {
		db, err := sql.Open("sqlite3", cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if world != nil {
			if err := world.Apply(ctx, db); err != nil {
				fmt.Fprintf(os.Stderr, "Error seeding world: %v\n", err)
				os.Exit(1)
			}
		}

		repo = content.NewSQLiteRepository(db, logger)
		scoreStore, err = scores.NewSQLiteStore(ctx, db)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
			os.Exit(1)
		}
		saveStore, err = save.NewSQLiteStore(ctx, db)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening save store: %v\n", err)
			os.Exit(1)
		}
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng := engine.New(ctx, engine.Options{
		Repo:   repo,
		Scores: scoreStore,
		Saves:  saveStore,
		RunID:  runID,
		Seed:   seed,
		Logger: logger,
	})

	// Use plain CLI if forced or stdout is not a terminal.
	if cfg.Plain || !isTerminal() {
		fmt.Printf("SauceQuest %s — run %s\n\n", version, runID)
		c := cli.New(eng, scoreStore)
		c.Echo = !stdinIsTerminal() // echo piped script commands
		c.Run(ctx)
		return
	}

	if err := tui.Run(ctx, eng, repo, scoreStore); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func flagValue(args []string, i *int) string {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "%s requires a value\n", args[*i])
		os.Exit(1)
	}
	*i++
	return args[*i]
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
