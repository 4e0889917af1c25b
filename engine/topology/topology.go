// Package topology derives the dungeon graph around the player's
// position: reachable neighbors, ambient mood, and danger. Nothing is
// authored; every edge is inferred from the content store through a
// cascading locality heuristic.
package topology

import (
	"context"
	"math"

	"github.com/nathoo/saucequest/content"
	"github.com/nathoo/saucequest/engine/rng"
)

// Directions maps neighbor list positions to compass directions.
// A position with no neighbor is a blocked direction.
var Directions = []string{"north", "east", "south", "west"}

// maxNeighbors bounds the derived adjacency per venue.
const maxNeighbors = 4

// Mood is the ambient emotional aura of a venue, derived from its
// aggregated reviews. Effect is applied to sanity on arrival.
type Mood struct {
	Name    string
	Effect  int
	Samples int64
}

// Neighbors derives 1..4 reachable venues for the given venue.
//
// Precedence: same city first; if that yields fewer than two, extend
// with shared cuisine; pad with arbitrary venues up to four; if all
// else fails, fall back to any single other venue. The result never
// contains the venue itself or duplicates, and is empty only when the
// store holds no other venue at all.
func Neighbors(ctx context.Context, repo content.Repository, r *rng.RNG, venue *content.Venue) []content.Venue {
	if venue == nil {
		return nil
	}

	exclude := []int64{venue.ID}
	neighbors := sample(r, repo.VenuesInCity(ctx, venue.City, exclude), maxNeighbors)

	if len(neighbors) < 2 {
		exclude = withIDs(exclude, neighbors)
		more := sample(r, repo.VenuesByCuisine(ctx, venue.Cuisine, exclude), maxNeighbors)
		neighbors = append(neighbors, more...)
	}

	if need := maxNeighbors - len(neighbors); need > 0 {
		exclude = withIDs([]int64{venue.ID}, neighbors)
		pad := sample(r, repo.AllVenues(ctx, exclude), need)
		neighbors = append(neighbors, pad...)
	}

	if len(neighbors) == 0 {
		if solo := sample(r, repo.AllVenues(ctx, []int64{venue.ID}), 1); len(solo) > 0 {
			neighbors = solo
		}
	}

	if len(neighbors) > maxNeighbors {
		neighbors = neighbors[:maxNeighbors]
	}
	return neighbors
}

// MoodOf derives a venue's emotion aura from its average rating.
func MoodOf(ctx context.Context, repo content.Repository, venueID int64) Mood {
	summary := repo.RatingAt(ctx, venueID)
	if summary.Count == 0 {
		return Mood{Name: "Neutral Craving", Effect: 0, Samples: 0}
	}
	switch {
	case summary.Average >= 4.5:
		return Mood{Name: "Elation", Effect: 2, Samples: summary.Count}
	case summary.Average >= 3.5:
		return Mood{Name: "Comfort", Effect: 1, Samples: summary.Count}
	case summary.Average >= 2.5:
		return Mood{Name: "Melancholy", Effect: -1, Samples: summary.Count}
	default:
		return Mood{Name: "Rage of the Hangry", Effect: -2, Samples: summary.Count}
	}
}

// DangerOf scales danger with transaction traffic: ceil(sqrt(orders)),
// never below 1.
func DangerOf(ctx context.Context, repo content.Repository, venueID int64) int {
	count := repo.OrderCountAt(ctx, venueID)
	if count <= 0 {
		return 1
	}
	danger := int(math.Ceil(math.Sqrt(float64(count))))
	if danger < 1 {
		danger = 1
	}
	return danger
}

// sample picks up to n venues from candidates without replacement,
// consuming the engine RNG so topology is reproducible from a seed.
func sample(r *rng.RNG, candidates []content.Venue, n int) []content.Venue {
	if len(candidates) == 0 || n <= 0 {
		return nil
	}
	pool := make([]content.Venue, len(candidates))
	copy(pool, candidates)

	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]content.Venue, 0, n)
	for len(picked) < n {
		i := r.Intn(len(pool))
		picked = append(picked, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return picked
}

func withIDs(exclude []int64, venues []content.Venue) []int64 {
	for _, v := range venues {
		exclude = append(exclude, v.ID)
	}
	return exclude
}
