package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/nathoo/saucequest/engine/encounter"
	"github.com/nathoo/saucequest/engine/state"
	"github.com/nathoo/saucequest/types"
)

func (e *Engine) chant(ctx context.Context, arg string) {
	venue := e.currentVenue(ctx)
	var rite encounter.Rite
	if strings.EqualFold(arg, "hard") {
		rite = encounter.ChantHard(ctx, e.repo, e.rng, venue)
	} else {
		rite = encounter.Chant(ctx, e.repo, e.rng, venue)
	}
	e.State.PendingRiddle = &types.PendingRiddle{
		Answer: rite.Answer,
		Mode:   rite.Mode,
		Source: rite.Source,
	}
	e.say("%s", rite.Line)
	e.logger.Debug("rite bound from %s (%s)", rite.Source, rite.Mode)
}

// solve resolves the pending parity rite. Hard rites bind the venue's
// sauce shard, normal rites pay out food. A wrong call costs 3 health.
func (e *Engine) solve(ctx context.Context, parity string) {
	if e.State.PendingRiddle == nil {
		e.say("No riddle is bound.")
		return
	}
	riddle := *e.State.PendingRiddle
	e.State.PendingRiddle = nil

	if !strings.EqualFold(strings.TrimSpace(parity), riddle.Answer) {
		e.say("The rite backfires.")
		e.takeDamage(ctx, 3, "backfired receipt magic")
		return
	}

	if riddle.Mode == encounter.ModeHard {
		e.bindShard(ctx)
		return
	}

	name, qty := e.foodReward(ctx)
	e.say("The spirits are appeased. You receive %dx %s.", qty, name)
}

// bindShard claims the current venue's shard, at most once per venue
// per run, and flips the win flag at the twentieth.
func (e *Engine) bindShard(ctx context.Context) {
	if !state.ClaimShard(e.State, e.State.Pos) {
		e.say("The shard here has already been claimed.")
		return
	}
	n := e.State.Player.SauceShards
	e.say("A Sauce Shard crystallizes here. (%d/%d)", n, state.ShardsToWin)
	if n >= state.ShardsToWin {
		e.State.Win = true
		e.say("All %d shards resonate. You win!", state.ShardsToWin)
		e.logger.Info("run %s won at depth %d", e.runID, e.State.Depth)
		return
	}
	e.say("%d shard(s) remain.", state.ShardsToWin-n)
}

// foodReward draws a random menu item from the current venue, falling
// back to a Mysterious Spice when the venue has no menu.
func (e *Engine) foodReward(ctx context.Context) (string, int) {
	name := "Mysterious Spice"
	if items := e.repo.ItemsAt(ctx, e.State.Pos); len(items) > 0 {
		name = items[e.rng.Intn(len(items))].DisplayName
	}
	qty := e.rng.Roll(2)
	state.AddItem(&e.State.Player, name, qty, "food")
	return name, qty
}

func (e *Engine) answer(ctx context.Context, guess string) {
	if e.State.PendingEnemy == nil {
		e.say("No enemy's riddle awaits an answer.")
		return
	}
	enemy := *e.State.PendingEnemy
	e.State.PendingEnemy = nil

	if encounter.Normalize(guess) == encounter.Normalize(enemy.Answer) {
		name, qty := e.foodReward(ctx)
		e.say("You solve it! %s drops %dx %s into your pack.", enemy.Name, qty, name)
	} else {
		dmg := e.rng.Roll(4)
		e.say("%s screeches at your mistake!", enemy.Name)
		e.takeDamage(ctx, dmg, enemy.Name)
	}
	e.hungerTick(ctx)
}

func (e *Engine) eat(ctx context.Context, what string) {
	p := &e.State.Player
	index := state.FindFood(p, what)
	if index < 0 {
		if len(p.Inventory) == 0 {
			e.say("Nothing to eat.")
		} else {
			e.say("You can't find that to eat.")
		}
		return
	}
	name := p.Inventory[index].Name

	heal := e.healFor(ctx, name)
	heal += e.rng.Roll(2) - 1
	if heal > 10 {
		heal = 10
	}

	p.HP = state.Clamp(p.HP+heal, p.MaxHP)
	p.Hunger = state.Clamp(p.Hunger+1+heal, p.MaxHunger)
	state.ConsumeItem(p, index)
	e.say("You eat %s. (+%d hp, hunger soothed)", name, heal)
	e.monsterCheck(3)
}

// healFor derives healing from the store: roughly one point per 200
// calories, else half the menu price, else a single point.
func (e *Engine) healFor(ctx context.Context, name string) int {
	item, ok := e.repo.ItemNamed(ctx, e.State.Pos, name)
	if ok {
		if item.Calories != nil && *item.Calories > 0 {
			if h := int(math.Round(float64(*item.Calories) / 200.0)); h > 1 {
				return h
			}
			return 1
		}
		if item.Price != nil && *item.Price > 0 {
			if h := int(math.Round(*item.Price / 2.0)); h > 1 {
				return h
			}
			return 1
		}
	}
	return 1
}

func (e *Engine) inventory() {
	inv := e.State.Player.Inventory
	if len(inv) == 0 {
		e.say("Inventory empty. The city laughs.")
		return
	}
	entries := make([]string, len(inv))
	for i, item := range inv {
		entries[i] = fmt.Sprintf("%s x%d", item.Name, item.Qty)
	}
	e.say("Backpack: %s", strings.Join(entries, ", "))
}
