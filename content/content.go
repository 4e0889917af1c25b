// Package content implements read-only queries against the relational
// content store the dungeon is derived from: restaurants, menu items,
// reviews, and orders.
//
// The store is externally owned and its schema is not trusted. Every
// query degrades gracefully: a failed or empty query yields a zero
// value, never an error. Callers treat "no data" as a normal condition
// and fall through to their next data source.
package content

import "context"

// Venue is one restaurant record — a node in the derived dungeon graph.
type Venue struct {
	ID      int64
	Name    string
	Cuisine string
	City    string
	Rating  float64
}

// MenuItem is one item listed at a venue. Price and Calories are nil
// when the store doesn't carry those columns (or carries NULLs).
type MenuItem struct {
	ID          int64
	VenueID     int64
	DisplayName string
	Description string
	Price       *float64
	Calories    *int64
}

// Review is one rating left at a venue.
type Review struct {
	VenueID int64
	Rating  float64
}

// Order is one transaction at a venue.
type Order struct {
	VenueID     int64
	Total       float64
	DeliveryFee float64
}

// RatingSummary aggregates reviews over some scope.
type RatingSummary struct {
	Average float64
	Count   int64
}

// Repository is the read-only query contract over the content store.
//
// Methods return candidate sets in a deterministic order rather than
// sampling in the store; callers sample through the engine RNG so runs
// stay reproducible from a seed.
type Repository interface {
	Close(ctx context.Context) error

	// VenueByID returns the venue with the given ID, if present.
	VenueByID(ctx context.Context, id int64) (*Venue, bool)
	// ActiveVenues returns venues eligible as a starting position.
	ActiveVenues(ctx context.Context) []Venue
	// VenuesInCity returns venues sharing a city, minus exclusions.
	VenuesInCity(ctx context.Context, city string, exclude []int64) []Venue
	// VenuesByCuisine returns venues sharing a cuisine tag, minus exclusions.
	VenuesByCuisine(ctx context.Context, cuisine string, exclude []int64) []Venue
	// AllVenues returns every venue minus exclusions.
	AllVenues(ctx context.Context, exclude []int64) []Venue

	// ItemsAt lists a venue's menu using adaptive column projection.
	ItemsAt(ctx context.Context, venueID int64) []MenuItem
	// ItemNamed finds a venue's menu item by display name.
	ItemNamed(ctx context.Context, venueID int64, name string) (*MenuItem, bool)

	RatingAt(ctx context.Context, venueID int64) RatingSummary
	RatingInCity(ctx context.Context, city string) RatingSummary
	RatingGlobal(ctx context.Context) RatingSummary

	// OrderCountAt counts transactions at a venue, joining through menu
	// items when the orders table has no direct venue reference.
	OrderCountAt(ctx context.Context, venueID int64) int64
	OrderTotalsAt(ctx context.Context, venueID int64) []float64
	OrderTotalsInCity(ctx context.Context, city string) []float64
	OrderTotalsGlobal(ctx context.Context) []float64
	DeliveryFees(ctx context.Context) []float64

	// TopItemPricesAt returns up to limit item prices at a venue,
	// highest first.
	TopItemPricesAt(ctx context.Context, venueID int64, limit int) []float64

	ItemCountAt(ctx context.Context, venueID int64) int64
	ItemCountInCity(ctx context.Context, city string) int64
	ItemCountGlobal(ctx context.Context) int64

	// PatronNames returns "first last" names usable for naming a chef.
	PatronNames(ctx context.Context) []string
}

func excludeSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
