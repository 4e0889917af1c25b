package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathoo/saucequest/engine/state"
	"github.com/nathoo/saucequest/engine/topology"
)

func (e *Engine) look(ctx context.Context) {
	name := "a nameless spot"
	if v := e.currentVenue(ctx); v != nil {
		name = v.Name
	}
	e.say("You step into %s.", name)

	items := e.repo.ItemsAt(ctx, e.State.Pos)
	if len(items) > 0 {
		sample := items
		if len(sample) > 3 {
			sample = sample[:3]
		}
		names := make([]string, len(sample))
		for i, it := range sample {
			names[i] = it.DisplayName
		}
		e.say("On the chalkboard menu: %s ...and more.", strings.Join(names, ", "))
	} else {
		e.say("Dusty menu. Nothing listed.")
	}

	if state.HasShard(e.State, e.State.Pos) {
		e.say("Shard here: claimed")
	} else {
		e.say("Shard here: unclaimed")
	}

	e.hungerTick(ctx)
	e.monsterCheck(3)
}

func (e *Engine) move(ctx context.Context, dir string) {
	venue := e.currentVenue(ctx)
	neighbors := topology.Neighbors(ctx, e.repo, e.rng, venue)

	index := -1
	for i, d := range topology.Directions {
		if d == dir {
			index = i
			break
		}
	}

	if index < 0 || index >= len(neighbors) {
		e.detour(ctx)
		return
	}

	next := neighbors[index]
	e.State.Pos = next.ID
	e.State.Visited = append(e.State.Visited, next.ID)
	e.State.Depth++
	mood := topology.MoodOf(ctx, e.repo, next.ID)
	p := &e.State.Player
	p.Sanity = state.Clamp(p.Sanity+mood.Effect, p.MaxSanity)
	e.say("You slip %s to %s (%s).", dir, next.Name, mood.Name)
	e.hungerTick(ctx)
	e.monsterCheck(4)
}

// detour handles a blocked direction: instead of a hard dead-end the
// player is dragged through 1-4 back-alley hops to a random venue,
// each hop counting toward depth.
func (e *Engine) detour(ctx context.Context) {
	steps := e.rng.Roll(4)
	last := e.State.Pos
	for i := 0; i < steps; i++ {
		candidates := e.repo.AllVenues(ctx, []int64{last})
		if len(candidates) == 0 {
			break
		}
		last = candidates[e.rng.Intn(len(candidates))].ID
	}

	if last != e.State.Pos {
		e.State.Pos = last
		e.State.Visited = append(e.State.Visited, last)
		e.State.Depth += steps
		dest := "an unmarked doorway"
		if v, ok := e.repo.VenueByID(ctx, last); ok {
			dest = v.Name
		}
		mood := topology.MoodOf(ctx, e.repo, last)
		p := &e.State.Player
		p.Sanity = state.Clamp(p.Sanity+mood.Effect, p.MaxSanity)
		e.say("The main street is blocked. You squeeze through %d shadowy back-alley step(s) and reach %s.", steps, dest)
	} else {
		e.say("A dumpster blocks that way. You turn back.")
	}
	e.hungerTick(ctx)
	e.monsterCheck(2)
}

func (e *Engine) scavenge(ctx context.Context) {
	items := e.repo.ItemsAt(ctx, e.State.Pos)
	if len(items) == 0 {
		e.say("No edible relics here.")
		e.hungerTick(ctx)
		return
	}
	found := items[e.rng.Intn(len(items))]
	gain := e.rng.Roll(2)
	state.AddItem(&e.State.Player, found.DisplayName, gain, "food")
	e.say("You scavenge %dx %s.", gain, found.DisplayName)
	e.monsterCheck(4)
	e.hungerTick(ctx)
}

func (e *Engine) rest(ctx context.Context) {
	if e.rng.Roll(6) <= 3 {
		e.say("You try to rest, but the nightlife finds you.")
		e.spawnMonster()
	} else {
		heal := e.rng.Roll(3)
		p := &e.State.Player
		p.HP = state.Clamp(p.HP+heal, p.MaxHP)
		e.say("You steal %d winks behind a dumpster.", heal)
	}
	e.hungerTick(ctx)
}

// RenderMap draws the local heatmap: the current venue, its aura and
// danger, and the 1-4 outgoing paths.
func (e *Engine) RenderMap(ctx context.Context) []string {
	if e.State == nil || e.State.Pos == 0 {
		return []string{"[No map data]"}
	}
	center := e.currentVenue(ctx)
	city := "Unknown City"
	name, cuisine := "???", "?"
	if center != nil {
		if center.City != "" {
			city = center.City
		}
		name, cuisine = center.Name, center.Cuisine
	}

	lines := []string{
		"+-------------------- CITY HEATMAP ---------------------+",
		fmt.Sprintf("| %-54s|", city),
		"+-------------------------------------------------------+",
		fmt.Sprintf(" You are at: %s [%s]", name, cuisine),
	}
	mood := topology.MoodOf(ctx, e.repo, e.State.Pos)
	lines = append(lines,
		fmt.Sprintf(" Emotion aura: %s (samples: %d)", mood.Name, mood.Samples),
		fmt.Sprintf(" Danger level: %d", topology.DangerOf(ctx, e.repo, e.State.Pos)),
		"",
		" Paths:")

	neighbors := topology.Neighbors(ctx, e.repo, e.rng, center)
	for i, n := range neighbors {
		dir := "side-street"
		if i < len(topology.Directions) {
			dir = topology.Directions[i]
		}
		lines = append(lines, fmt.Sprintf("  - %s: %s (%s) ★%d", dir, n.Name, n.Cuisine, int(n.Rating)))
	}
	if len(neighbors) == 0 {
		lines = append(lines, "  None. The alley is a dead end.")
	}
	return lines
}
