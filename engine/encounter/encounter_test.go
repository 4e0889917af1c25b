package encounter

import (
	"context"
	"testing"

	"github.com/nathoo/saucequest/content"
	"github.com/nathoo/saucequest/engine/rng"
)

func fptr(f float64) *float64 { return &f }

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Piano", "piano"},
		{"  your name!  ", "yourname"},
		{"The Left-Hand", "thelefthand"},
		{"a statement.", "astatement"},
		{"88 keys", "88keys"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSpawnMonster(t *testing.T) {
	r := rng.New(7)
	seenName := map[string]bool{}
	for i := 0; i < 50; i++ {
		m := SpawnMonster(r)
		if m.Name == "" || m.Question == "" || m.Answer == "" {
			t.Fatalf("incomplete monster: %+v", m)
		}
		seenName[m.Name] = true
	}
	if len(seenName) < 2 {
		t.Errorf("expected varied monster names, got %d distinct", len(seenName))
	}
}

func TestSpawnMonsterDeterministic(t *testing.T) {
	a := SpawnMonster(rng.New(99))
	b := SpawnMonster(rng.New(99))
	if a != b {
		t.Errorf("same seed produced different monsters: %+v vs %+v", a, b)
	}
}

func TestRiddleBankAnswersNormalized(t *testing.T) {
	for _, rd := range riddleBank {
		if Normalize(rd.Answer) == "" {
			t.Errorf("riddle %q has answer that normalizes to empty", rd.Question)
		}
	}
}

func TestChantOrdersAtVenue(t *testing.T) {
	repo := &content.MemoryRepository{
		Venues: []content.Venue{{ID: 1, Name: "Saffron House", City: "Dubai"}},
		Orders: []content.Order{{VenueID: 1, Total: 42.0}},
	}
	venue, _ := repo.VenueByID(context.Background(), 1)
	rite := Chant(context.Background(), repo, rng.New(1), venue)
	if rite.Source != "orders@venue" {
		t.Fatalf("source = %q, want orders@venue", rite.Source)
	}
	if rite.Answer != "even" {
		t.Errorf("42 should bind even, got %q", rite.Answer)
	}
	if rite.Mode != ModeNormal {
		t.Errorf("mode = %q", rite.Mode)
	}
	if rite.Line == "" {
		t.Error("rite has no announcement line")
	}
}

func TestChantFallsBackThroughTiers(t *testing.T) {
	// No orders anywhere, one review in the same city: reviews@city wins.
	repo := &content.MemoryRepository{
		Venues: []content.Venue{
			{ID: 1, Name: "Saffron House", City: "Dubai"},
			{ID: 2, Name: "Gulf Grill", City: "Dubai"},
		},
		Reviews: []content.Review{{VenueID: 2, Rating: 3.5}},
	}
	venue, _ := repo.VenueByID(context.Background(), 1)
	rite := Chant(context.Background(), repo, rng.New(1), venue)
	if rite.Source != "reviews@city" {
		t.Fatalf("source = %q, want reviews@city", rite.Source)
	}
	// 3.5 * 10 = 35, odd.
	if rite.Answer != "odd" {
		t.Errorf("answer = %q, want odd", rite.Answer)
	}
}

func TestChantNameFallback(t *testing.T) {
	repo := &content.MemoryRepository{
		Venues: []content.Venue{{ID: 1, Name: "Al Mandi", City: ""}},
	}
	venue, _ := repo.VenueByID(context.Background(), 1)
	rite := Chant(context.Background(), repo, rng.New(1), venue)
	if rite.Source != "name@venue" {
		t.Fatalf("source = %q, want name@venue", rite.Source)
	}
	// "AlMandi" is 7 letters, odd.
	if rite.Answer != "odd" {
		t.Errorf("answer = %q, want odd", rite.Answer)
	}
}

func TestChantEmptyStoreCoinFlip(t *testing.T) {
	repo := content.NewMemoryRepository()
	rite := Chant(context.Background(), repo, rng.New(1), nil)
	if rite.Source != "synthetic" {
		t.Fatalf("source = %q, want synthetic", rite.Source)
	}
	if rite.Answer != "even" && rite.Answer != "odd" {
		t.Errorf("answer = %q", rite.Answer)
	}
}

func TestChantHardTopPrices(t *testing.T) {
	repo := &content.MemoryRepository{
		Venues: []content.Venue{{ID: 1, Name: "Saffron House", City: "Dubai"}},
		Items: []content.MenuItem{
			{ID: 1, VenueID: 1, DisplayName: "Machboos", Price: fptr(12.50)},
			{ID: 2, VenueID: 1, DisplayName: "Harees", Price: fptr(9.25)},
			{ID: 3, VenueID: 1, DisplayName: "Gahwa", Price: fptr(2.00)},
		},
	}
	venue, _ := repo.VenueByID(context.Background(), 1)
	rite := ChantHard(context.Background(), repo, rng.New(1), venue)
	if rite.Source != "prices@venue" {
		t.Fatalf("source = %q, want prices@venue", rite.Source)
	}
	// (12.50 + 9.25) * 100 = 2175, odd.
	if rite.Answer != "odd" {
		t.Errorf("answer = %q, want odd", rite.Answer)
	}
	if rite.Mode != ModeHard {
		t.Errorf("mode = %q", rite.Mode)
	}
}

func TestChantHardNeedsTwoPrices(t *testing.T) {
	// One priced item is not enough; drops to the city review tier.
	repo := &content.MemoryRepository{
		Venues:  []content.Venue{{ID: 1, Name: "Saffron House", City: "Dubai"}},
		Items:   []content.MenuItem{{ID: 1, VenueID: 1, DisplayName: "Machboos", Price: fptr(12.50)}},
		Reviews: []content.Review{{VenueID: 1, Rating: 4.0}, {VenueID: 1, Rating: 4.0}},
	}
	venue, _ := repo.VenueByID(context.Background(), 1)
	rite := ChantHard(context.Background(), repo, rng.New(1), venue)
	if rite.Source != "reviews@city" {
		t.Fatalf("source = %q, want reviews@city", rite.Source)
	}
	// 2 * 4.0 * 10 = 80, even.
	if rite.Answer != "even" {
		t.Errorf("answer = %q, want even", rite.Answer)
	}
}

func TestChantHardFeesFallback(t *testing.T) {
	repo := &content.MemoryRepository{
		Orders: []content.Order{{VenueID: 9, DeliveryFee: 1.50}},
	}
	rite := ChantHard(context.Background(), repo, rng.New(1), nil)
	if rite.Source != "fees@global" {
		t.Fatalf("source = %q, want fees@global", rite.Source)
	}
	// 3 * 1.50 * 100 = 450, even.
	if rite.Answer != "even" {
		t.Errorf("answer = %q, want even", rite.Answer)
	}
}

func TestChantHardEmptyStoreCoinFlip(t *testing.T) {
	rite := ChantHard(context.Background(), content.NewMemoryRepository(), rng.New(3), nil)
	if rite.Source != "synthetic" {
		t.Fatalf("source = %q, want synthetic", rite.Source)
	}
	if rite.Answer != "even" && rite.Answer != "odd" {
		t.Errorf("answer = %q", rite.Answer)
	}
}
