// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the SauceQuest engine.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathoo/saucequest/engine"
	"github.com/nathoo/saucequest/scores"
	"github.com/nathoo/saucequest/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine  *engine.Engine
	Scores  scores.Store
	In      io.Reader
	Out     io.Writer
	Echo    bool   // echo commands after the prompt, for piped scripts
	lastCmd string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, scoreStore scores.Store) *CLI {
	return &CLI{
		Engine: eng,
		Scores: scoreStore,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop: prompt, input, dispatch, output. It returns
// when the input stream ends or the player types /quit.
func (c *CLI) Run(ctx context.Context) {
	if s := c.Engine.State; s != nil {
		for _, line := range s.Log {
			c.printLine(line)
		}
		c.printLine("")
		c.printLine(c.Engine.Stats())
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.Echo {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(ctx, input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Process(ctx, input)
		c.printResult(result)

		if result.Dead {
			c.printDeathScreen(ctx)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/scores":
		c.cmdScores(ctx, arg)

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /scores [n]   — Show the most recent runs (default: 5)",
		"  /state        — Debug: dump current state",
		"  /quit         — Exit (abandoning counts as death on 'quit')",
		"  /help         — Show this help",
		"",
	}
	for _, line := range help {
		c.printLine(line)
	}
	for _, line := range engine.Help() {
		c.printLine(line)
	}
}

func (c *CLI) cmdScores(ctx context.Context, arg string) {
	n := 5
	if arg != "" {
		if v, err := strconv.Atoi(arg); err == nil && v > 0 {
			n = v
		}
	}
	entries, err := c.Scores.Recent(ctx, n)
	if err != nil {
		c.printSystem(fmt.Sprintf("Scores unavailable: %v", err))
		return
	}
	if len(entries) == 0 {
		c.printLine("No fallen chefs yet.")
		return
	}
	c.printLine("Hall of the Fallen:")
	for _, e := range entries {
		c.printLine(fmt.Sprintf("  %s — depth %d, %d shard(s) — %s", e.Player, e.Depth, e.Shards, e.Cause))
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	if s == nil {
		c.printSystem("No run in progress.")
		return
	}
	c.printSystem(fmt.Sprintf("Run: %s", c.Engine.RunID()))
	c.printSystem(fmt.Sprintf("Position: %d (depth %d)", s.Pos, s.Depth))
	c.printSystem(fmt.Sprintf("Visited: %d venue(s)", len(s.Visited)))
	c.printSystem(c.Engine.Stats())
	if s.PendingRiddle != nil {
		c.printSystem(fmt.Sprintf("Pending rite: %s (%s)", s.PendingRiddle.Source, s.PendingRiddle.Mode))
	}
	if s.PendingEnemy != nil {
		c.printSystem(fmt.Sprintf("Pending enemy: %s", s.PendingEnemy.Name))
	}
}

func (c *CLI) printDeathScreen(ctx context.Context) {
	c.printLine("")
	c.printLine("The neon dims. Your run is over.")
	c.cmdScores(ctx, "")
	c.printLine("Whisper 'new' to rise again, or /quit to leave the city.")
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
