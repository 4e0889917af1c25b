// Package encounter derives riddle monsters and parity rites from the
// content store. Every rite resolves to an even/odd answer so the chant
// verbs can never dead-end, whatever shape the store is in.
package encounter

import (
	"context"
	"math"
	"strings"

	"github.com/nathoo/saucequest/content"
	"github.com/nathoo/saucequest/engine/rng"
	"github.com/nathoo/saucequest/types"
)

// Rite modes. Hard rites pay out in sauce shards, normal rites in food.
const (
	ModeNormal = "normal"
	ModeHard   = "hard"
)

// Rite is a bound parity riddle plus the line announcing it.
type Rite struct {
	Answer string // "even" or "odd"
	Mode   string
	Source string
	Line   string
}

// SpawnMonster picks a themed enemy and one riddle from the bank.
func SpawnMonster(r *rng.RNG) types.PendingEnemy {
	name := monsterNames[r.Intn(len(monsterNames))]
	riddle := riddleBank[r.Intn(len(riddleBank))]
	return types.PendingEnemy{
		Name:     name,
		Question: riddle.Question,
		Answer:   riddle.Answer,
	}
}

// Normalize lowercases and strips everything but letters and digits, so
// "The Left Hand!" matches "left hand".
func Normalize(s string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(s) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func parityOf(n int64) string {
	if n%2 == 0 {
		return "even"
	}
	return "odd"
}

func roundTo(f float64) int64 {
	return int64(math.Round(f))
}

// Chant derives a normal rite from the first data source that yields a
// value: order totals (venue, city, global), then review averages scaled
// by ten, then menu item counts, then the venue name's letter count, and
// finally a coin flip. venue may be nil, which skips the local tiers.
func Chant(ctx context.Context, repo content.Repository, r *rng.RNG, venue *content.Venue) Rite {
	city := ""
	if venue != nil {
		city = venue.City
	}

	if venue != nil {
		if totals := repo.OrderTotalsAt(ctx, venue.ID); len(totals) > 0 {
			v := roundTo(totals[r.Intn(len(totals))])
			return Rite{Answer: parityOf(v), Mode: ModeNormal, Source: "orders@venue",
				Line: "A spectral receipt unfurls here. Its sum flickers. Speak: 'solve even' or 'solve odd'."}
		}
	}
	if city != "" {
		if totals := repo.OrderTotalsInCity(ctx, city); len(totals) > 0 {
			v := roundTo(totals[r.Intn(len(totals))])
			return Rite{Answer: parityOf(v), Mode: ModeNormal, Source: "orders@city",
				Line: "Receipts echo across the city. Choose: 'solve even' or 'solve odd'."}
		}
	}
	if totals := repo.OrderTotalsGlobal(ctx); len(totals) > 0 {
		v := roundTo(totals[r.Intn(len(totals))])
		return Rite{Answer: parityOf(v), Mode: ModeNormal, Source: "orders@global",
			Line: "Distant delivery totals whisper. Decide: 'solve even' or 'solve odd'."}
	}

	if venue != nil {
		if rs := repo.RatingAt(ctx, venue.ID); rs.Count > 0 {
			return Rite{Answer: parityOf(roundTo(rs.Average * 10)), Mode: ModeNormal, Source: "reviews@venue",
				Line: "Review spirits gather here. Judge their mood: 'solve even' or 'solve odd'."}
		}
	}
	if city != "" {
		if rs := repo.RatingInCity(ctx, city); rs.Count > 0 {
			return Rite{Answer: parityOf(roundTo(rs.Average * 10)), Mode: ModeNormal, Source: "reviews@city",
				Line: "The city's appetite hums. Divine it: 'solve even' or 'solve odd'."}
		}
	}
	if rs := repo.RatingGlobal(ctx); rs.Count > 0 {
		return Rite{Answer: parityOf(roundTo(rs.Average * 10)), Mode: ModeNormal, Source: "reviews@global",
			Line: "All reviews in chorus sing. Decide: 'solve even' or 'solve odd'."}
	}

	if venue != nil {
		if cnt := repo.ItemCountAt(ctx, venue.ID); cnt > 0 {
			return Rite{Answer: parityOf(cnt), Mode: ModeNormal, Source: "menu@venue",
				Line: "Menus rustle here. Count their rhythm: 'solve even' or 'solve odd'."}
		}
	}
	if city != "" {
		if cnt := repo.ItemCountInCity(ctx, city); cnt > 0 {
			return Rite{Answer: parityOf(cnt), Mode: ModeNormal, Source: "menu@city",
				Line: "City menus cascade like rain. Choose: 'solve even' or 'solve odd'."}
		}
	}
	if cnt := repo.ItemCountGlobal(ctx); cnt > 0 {
		return Rite{Answer: parityOf(cnt), Mode: ModeNormal, Source: "menu@global",
			Line: "The grand menu of the metropolis unfurls. Answer: 'solve even' or 'solve odd'."}
	}

	if venue != nil && venue.Name != "" {
		n := int64(len(strings.Join(strings.Fields(venue.Name), "")))
		return Rite{Answer: parityOf(n), Mode: ModeNormal, Source: "name@venue",
			Line: "Neon letters swirl from the sign. Their parity beckons: 'solve even' or 'solve odd'."}
	}

	return Rite{Answer: r.Flip(), Mode: ModeNormal, Source: "synthetic",
		Line: "Fate flips a greasy coin. Call it: 'solve even' or 'solve odd'."}
}

// ChantHard derives the shard rite from tougher sources: the sum of the
// two priciest items here in cents, then the city's review count times
// its average rating times ten, then three random delivery fees in
// cents, then a coin flip.
func ChantHard(ctx context.Context, repo content.Repository, r *rng.RNG, venue *content.Venue) Rite {
	if venue != nil {
		if prices := repo.TopItemPricesAt(ctx, venue.ID, 2); len(prices) >= 2 {
			cents := roundTo((prices[0] + prices[1]) * 100)
			return Rite{Answer: parityOf(cents), Mode: ModeHard, Source: "prices@venue",
				Line: "High-heat rite: judge the sum of top flavors (in cents). 'solve even' or 'solve odd'."}
		}
		if venue.City != "" {
			if rs := repo.RatingInCity(ctx, venue.City); rs.Count > 0 {
				v := roundTo(float64(rs.Count) * rs.Average * 10)
				return Rite{Answer: parityOf(v), Mode: ModeHard, Source: "reviews@city",
					Line: "The city's chorus rises. 'solve even' or 'solve odd'."}
			}
		}
	}

	if fees := repo.DeliveryFees(ctx); len(fees) > 0 {
		sum := 0.0
		for i := 0; i < 3; i++ {
			sum += fees[r.Intn(len(fees))]
		}
		return Rite{Answer: parityOf(roundTo(sum * 100)), Mode: ModeHard, Source: "fees@global",
			Line: "Three couriers tithe their fees. 'solve even' or 'solve odd'."}
	}

	return Rite{Answer: r.Flip(), Mode: ModeHard, Source: "synthetic",
		Line: "The grease oracle flips a coin. 'solve even' or 'solve odd'."}
}
