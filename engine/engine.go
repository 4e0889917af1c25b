// Package engine provides the Process() orchestrator that turns one
// player command into narrative output, mutating the run state and
// persisting it after every command.
package engine

import (
	"context"
	"fmt"

	"github.com/nathoo/saucequest/content"
	"github.com/nathoo/saucequest/engine/encounter"
	"github.com/nathoo/saucequest/engine/parser"
	"github.com/nathoo/saucequest/engine/rng"
	"github.com/nathoo/saucequest/engine/save"
	"github.com/nathoo/saucequest/engine/state"
	"github.com/nathoo/saucequest/log"
	"github.com/nathoo/saucequest/scores"
	"github.com/nathoo/saucequest/types"
)

// Engine holds the stores and the mutable state of one run.
// State is nil between a death and the next "new".
type Engine struct {
	repo   content.Repository
	scores scores.Store
	saves  save.Store
	runID  string
	logger *log.Logger

	State *types.GameState
	rng   *rng.RNG

	turn []string // lines produced by the command in flight
}

// Options configures a new Engine.
type Options struct {
	Repo   content.Repository
	Scores scores.Store
	Saves  save.Store
	RunID  string
	Seed   int64
	Player string // optional; a patron name is drawn when empty
	Logger *log.Logger
}

// New creates an engine, resuming the run saved under RunID if one
// exists and starting a fresh run otherwise.
func New(ctx context.Context, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		repo:   opts.Repo,
		scores: opts.Scores,
		saves:  opts.Saves,
		runID:  opts.RunID,
		logger: logger,
	}
	if s, ok := e.saves.LoadRun(ctx, e.runID); ok {
		e.State = s
		e.rng = rng.Restore(s.RNGSeed, s.RNGPos)
		logger.Info("resumed run %s at venue %d, depth %d", e.runID, s.Pos, s.Depth)
		return e
	}
	e.newRun(ctx, opts.Seed, opts.Player)
	return e
}

// RunID returns the session identifier this engine persists under.
func (e *Engine) RunID() string { return e.runID }

func (e *Engine) newRun(ctx context.Context, seed int64, playerName string) {
	e.rng = rng.New(seed)
	if playerName == "" {
		playerName = e.pickPlayerName(ctx)
	}

	var startPos int64
	var start *content.Venue
	if active := e.repo.ActiveVenues(ctx); len(active) > 0 {
		v := active[e.rng.Intn(len(active))]
		start = &v
		startPos = v.ID
	}

	e.State = state.NewRun(playerName, startPos, seed)
	if start != nil {
		e.State.Log = append(e.State.Log,
			fmt.Sprintf("You smell %s from %s.", start.Cuisine, start.Name))
	}
	e.persist(ctx)
	e.logger.Info("new run %s for %q, seed %d", e.runID, playerName, seed)
}

var fallbackFirst = []string{"Alex", "Sam", "Riley", "Jordan", "Taylor", "Morgan", "Quinn", "Charlie"}
var fallbackLast = []string{"Flambe", "Sous", "Knifehands", "Pepper"}

func (e *Engine) pickPlayerName(ctx context.Context) string {
	if patrons := e.repo.PatronNames(ctx); len(patrons) > 0 {
		return patrons[e.rng.Intn(len(patrons))]
	}
	return fallbackFirst[e.rng.Intn(len(fallbackFirst))] + " " + fallbackLast[e.rng.Intn(len(fallbackLast))]
}

// Process runs one player command and returns the lines it produced.
func (e *Engine) Process(ctx context.Context, raw string) types.Result {
	e.turn = nil
	intent := parser.Parse(raw)

	if e.State == nil {
		if intent.Verb == "new" {
			e.newRun(ctx, e.rng.Seed()+1, "")
			return types.Result{Output: e.State.Log}
		}
		return types.Result{Output: []string{"You are dead. Whisper 'new' to rise again."}}
	}

	if intent.Verb == "" {
		return types.Result{}
	}

	switch intent.Verb {
	case "look":
		e.look(ctx)
	case "map":
		for _, line := range e.RenderMap(ctx) {
			e.say("%s", line)
		}
	case "go":
		e.move(ctx, intent.Arg)
	case "scavenge":
		e.scavenge(ctx)
	case "eat":
		e.eat(ctx, intent.Arg)
	case "chant":
		e.chant(ctx, intent.Arg)
	case "solve":
		e.solve(ctx, intent.Arg)
	case "answer":
		e.answer(ctx, intent.Arg)
	case "inv":
		e.inventory()
	case "rest":
		e.rest(ctx)
	case "stats":
		e.say("%s", e.Stats())
	case "help":
		for _, line := range Help() {
			e.say("%s", line)
		}
	case "new":
		e.newRun(ctx, e.rng.Seed()+1, "")
		return types.Result{Output: e.State.Log}
	case "quit":
		e.die(ctx, "abandonment")
	default:
		e.say("Unknown incantation. Try 'help'.")
	}

	if e.State == nil {
		return types.Result{Output: e.turn, Dead: true}
	}
	e.persist(ctx)
	return types.Result{Output: e.turn}
}

func (e *Engine) persist(ctx context.Context) {
	e.State.RNGSeed = e.rng.Seed()
	e.State.RNGPos = e.rng.Position()
	if err := e.saves.StoreRun(ctx, e.runID, e.State); err != nil {
		e.logger.Warn("persist run %s: %v", e.runID, err)
	}
}

// say records a line both in the turn output and the run log.
func (e *Engine) say(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	e.turn = append(e.turn, line)
	if e.State != nil {
		e.State.Log = append(e.State.Log, line)
	}
}

// hungerTick runs once per world-advancing command. An empty stomach
// costs a point of health instead of ticking further down.
func (e *Engine) hungerTick(ctx context.Context) {
	if e.State == nil {
		return
	}
	if e.State.Player.Hunger <= 0 {
		e.takeDamage(ctx, 1, "starvation")
		return
	}
	e.State.Player.Hunger--
}

func (e *Engine) takeDamage(ctx context.Context, dmg int, why string) {
	if e.State == nil {
		return
	}
	p := &e.State.Player
	p.HP -= dmg
	if p.HP < 0 {
		p.HP = 0
	}
	e.say("You take %d damage from %s.", dmg, why)
	if p.HP <= 0 {
		e.die(ctx, "Perished by "+why)
	}
}

// die ends the run: the score is recorded, the final state is archived
// as a grave for the death screen, and the live save is cleared.
func (e *Engine) die(ctx context.Context, cause string) {
	entry := scores.Entry{
		Player:    e.State.Player.Name,
		Depth:     e.State.Depth,
		Shards:    e.State.Player.SauceShards,
		Cause:     cause,
		CreatedAt: scores.Now(),
	}
	if err := e.scores.Append(ctx, entry); err != nil {
		e.logger.Warn("record score for run %s: %v", e.runID, err)
	}
	e.say("*** YOU DIED: %s ***  (Permadeath active)", cause)
	if err := e.saves.Archive(ctx, e.runID, e.State); err != nil {
		e.logger.Warn("archive grave for run %s: %v", e.runID, err)
	}
	if err := e.saves.ClearRun(ctx, e.runID); err != nil {
		e.logger.Warn("clear run %s: %v", e.runID, err)
	}
	e.logger.Info("run %s ended: %s", e.runID, cause)
	e.State = nil
}

// spawnMonster binds a riddle enemy and announces it.
func (e *Engine) spawnMonster() {
	m := encounter.SpawnMonster(e.rng)
	e.State.PendingEnemy = &m
	e.say("%s appears! It hisses a riddle: %q  (answer with: answer <your guess>)", m.Name, m.Question)
}

// monsterCheck rolls a d6 and spawns an enemy when the roll is at or
// under the threshold. More dangerous verbs pass higher thresholds.
func (e *Engine) monsterCheck(threshold int) {
	if e.State == nil {
		return
	}
	if e.rng.Roll(6) <= threshold {
		e.spawnMonster()
	}
}

func (e *Engine) currentVenue(ctx context.Context) *content.Venue {
	if e.State == nil || e.State.Pos == 0 {
		return nil
	}
	v, ok := e.repo.VenueByID(ctx, e.State.Pos)
	if !ok {
		return nil
	}
	return v
}

// Stats renders the one-line vitals summary.
func (e *Engine) Stats() string {
	if e.State == nil {
		return "No run in progress."
	}
	p := e.State.Player
	return fmt.Sprintf("HP %d/%d | Hunger %d/%d | Sanity %d/%d | Shards %d | Depth %d",
		p.HP, p.MaxHP, p.Hunger, p.MaxHunger, p.Sanity, p.MaxSanity, p.SauceShards, e.State.Depth)
}

// Help lists the available incantations.
func Help() []string {
	return []string{
		"Commands: look, map, go north|east|south|west, scavenge, eat [item],",
		"          chant [hard], solve even|odd, answer [text], inv, rest, stats, help, new, quit",
		"Goal: Bind Sauce Shards by decoding urban receipts. Permadeath. Good luck.",
	}
}
