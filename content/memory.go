package content

import (
	"context"
	"sort"
	"strings"
)

// MemoryRepository serves the Repository contract from in-memory
// slices. It backs tests and DB-less play with a seeded world.
type MemoryRepository struct {
	Venues   []Venue
	Items    []MenuItem
	Reviews  []Review
	Orders   []Order
	Patrons  []string
	Inactive map[int64]bool // venue IDs excluded from ActiveVenues
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Close(ctx context.Context) error { return nil }

func (r *MemoryRepository) VenueByID(ctx context.Context, id int64) (*Venue, bool) {
	for i := range r.Venues {
		if r.Venues[i].ID == id {
			v := r.Venues[i]
			return &v, true
		}
	}
	return nil, false
}

func (r *MemoryRepository) ActiveVenues(ctx context.Context) []Venue {
	var venues []Venue
	for _, v := range r.Venues {
		if r.Inactive[v.ID] {
			continue
		}
		venues = append(venues, v)
	}
	return venues
}

func (r *MemoryRepository) filterVenues(keep func(Venue) bool, exclude []int64) []Venue {
	skip := excludeSet(exclude)
	var venues []Venue
	for _, v := range r.Venues {
		if skip[v.ID] || !keep(v) {
			continue
		}
		venues = append(venues, v)
	}
	return venues
}

func (r *MemoryRepository) VenuesInCity(ctx context.Context, city string, exclude []int64) []Venue {
	return r.filterVenues(func(v Venue) bool { return v.City == city }, exclude)
}

func (r *MemoryRepository) VenuesByCuisine(ctx context.Context, cuisine string, exclude []int64) []Venue {
	return r.filterVenues(func(v Venue) bool { return v.Cuisine == cuisine }, exclude)
}

func (r *MemoryRepository) AllVenues(ctx context.Context, exclude []int64) []Venue {
	return r.filterVenues(func(Venue) bool { return true }, exclude)
}

func (r *MemoryRepository) ItemsAt(ctx context.Context, venueID int64) []MenuItem {
	var items []MenuItem
	for _, item := range r.Items {
		if item.VenueID == venueID {
			items = append(items, item)
		}
	}
	return items
}

func (r *MemoryRepository) ItemNamed(ctx context.Context, venueID int64, name string) (*MenuItem, bool) {
	for _, item := range r.ItemsAt(ctx, venueID) {
		if strings.EqualFold(item.DisplayName, name) {
			it := item
			return &it, true
		}
	}
	return nil, false
}

func (r *MemoryRepository) cityOf(venueID int64) string {
	for _, v := range r.Venues {
		if v.ID == venueID {
			return v.City
		}
	}
	return ""
}

func (r *MemoryRepository) summarize(keep func(Review) bool) RatingSummary {
	var sum float64
	var count int64
	for _, rv := range r.Reviews {
		if keep(rv) {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return RatingSummary{}
	}
	return RatingSummary{Average: sum / float64(count), Count: count}
}

func (r *MemoryRepository) RatingAt(ctx context.Context, venueID int64) RatingSummary {
	return r.summarize(func(rv Review) bool { return rv.VenueID == venueID })
}

func (r *MemoryRepository) RatingInCity(ctx context.Context, city string) RatingSummary {
	return r.summarize(func(rv Review) bool { return r.cityOf(rv.VenueID) == city })
}

func (r *MemoryRepository) RatingGlobal(ctx context.Context) RatingSummary {
	return r.summarize(func(Review) bool { return true })
}

func (r *MemoryRepository) OrderCountAt(ctx context.Context, venueID int64) int64 {
	var count int64
	for _, o := range r.Orders {
		if o.VenueID == venueID {
			count++
		}
	}
	return count
}

func (r *MemoryRepository) orderTotals(keep func(Order) bool) []float64 {
	var totals []float64
	for _, o := range r.Orders {
		if keep(o) {
			totals = append(totals, o.Total)
		}
	}
	return totals
}

func (r *MemoryRepository) OrderTotalsAt(ctx context.Context, venueID int64) []float64 {
	return r.orderTotals(func(o Order) bool { return o.VenueID == venueID })
}

func (r *MemoryRepository) OrderTotalsInCity(ctx context.Context, city string) []float64 {
	return r.orderTotals(func(o Order) bool { return r.cityOf(o.VenueID) == city })
}

func (r *MemoryRepository) OrderTotalsGlobal(ctx context.Context) []float64 {
	return r.orderTotals(func(Order) bool { return true })
}

func (r *MemoryRepository) DeliveryFees(ctx context.Context) []float64 {
	var fees []float64
	for _, o := range r.Orders {
		fees = append(fees, o.DeliveryFee)
	}
	return fees
}

func (r *MemoryRepository) TopItemPricesAt(ctx context.Context, venueID int64, limit int) []float64 {
	var prices []float64
	for _, item := range r.ItemsAt(ctx, venueID) {
		if item.Price != nil {
			prices = append(prices, *item.Price)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(prices)))
	if len(prices) > limit {
		prices = prices[:limit]
	}
	return prices
}

func (r *MemoryRepository) ItemCountAt(ctx context.Context, venueID int64) int64 {
	return int64(len(r.ItemsAt(ctx, venueID)))
}

func (r *MemoryRepository) ItemCountInCity(ctx context.Context, city string) int64 {
	var count int64
	for _, item := range r.Items {
		if r.cityOf(item.VenueID) == city {
			count++
		}
	}
	return count
}

func (r *MemoryRepository) ItemCountGlobal(ctx context.Context) int64 {
	return int64(len(r.Items))
}

func (r *MemoryRepository) PatronNames(ctx context.Context) []string {
	return r.Patrons
}
