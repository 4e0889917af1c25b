package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nathoo/saucequest/log"
)

// sampleCap bounds how many candidate rows a store-wide query pulls
// back for caller-side sampling.
const sampleCap = 512

// safeItemColumns is the known-safe projection for the menu items
// table. The store's actual columns are intersected with this set.
var safeItemColumns = []string{
	"id", "name", "title", "item_name", "description",
	"price", "restaurant_id", "is_vegetarian", "is_spicy", "calories",
}

// SQLiteRepository queries a SQLite content store. It discovers the
// physical schema at query time and never assumes optional columns.
type SQLiteRepository struct {
	db          *sql.DB
	logger      *log.Logger
	colsByTable map[string][]string
}

// NewSQLiteRepository wraps an open database handle. The handle is
// shared with the score and save stores and closed through Close.
func NewSQLiteRepository(db *sql.DB, logger *log.Logger) *SQLiteRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &SQLiteRepository{
		db:          db,
		logger:      logger,
		colsByTable: map[string][]string{},
	}
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

// columnList returns the table's column names, cached per table.
func (r *SQLiteRepository) columnList(ctx context.Context, table string) []string {
	if cols, ok := r.colsByTable[table]; ok {
		return cols
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		r.logger.Debug("content: table_info %s: %v", table, err)
		return nil
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			r.logger.Debug("content: table_info %s scan: %v", table, err)
			return nil
		}
		cols = append(cols, name)
	}
	r.colsByTable[table] = cols
	return cols
}

func (r *SQLiteRepository) hasColumn(ctx context.Context, table, column string) bool {
	for _, c := range r.columnList(ctx, table) {
		if strings.EqualFold(c, column) {
			return true
		}
	}
	return false
}

// venueSelect is the fixed projection for restaurant rows.
const venueSelect = "SELECT id, name, IFNULL(cuisine_type,''), IFNULL(city,''), IFNULL(rating,0) FROM restaurants"

func (r *SQLiteRepository) queryVenues(ctx context.Context, query string, args ...any) []Venue {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Debug("content: venues: %v", err)
		return nil
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Cuisine, &v.City, &v.Rating); err != nil {
			r.logger.Debug("content: venue scan: %v", err)
			return venues
		}
		venues = append(venues, v)
	}
	return venues
}

// notIn renders an exclusion clause, or an always-true clause when
// there is nothing to exclude.
func notIn(column string, ids []int64) (string, []any) {
	if len(ids) == 0 {
		return "1=1", nil
	}
	marks := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		marks[i] = "?"
		args[i] = id
	}
	return fmt.Sprintf("%s NOT IN (%s)", column, strings.Join(marks, ",")), args
}

func (r *SQLiteRepository) VenueByID(ctx context.Context, id int64) (*Venue, bool) {
	venues := r.queryVenues(ctx, venueSelect+" WHERE id = ?", id)
	if len(venues) == 0 {
		return nil, false
	}
	return &venues[0], true
}

func (r *SQLiteRepository) ActiveVenues(ctx context.Context) []Venue {
	query := venueSelect
	if r.hasColumn(ctx, "restaurants", "is_active") {
		query += " WHERE IFNULL(is_active,1) = 1"
	}
	return r.queryVenues(ctx, query+" ORDER BY id")
}

func (r *SQLiteRepository) VenuesInCity(ctx context.Context, city string, exclude []int64) []Venue {
	clause, args := notIn("id", exclude)
	query := fmt.Sprintf("%s WHERE city = ? AND %s ORDER BY id", venueSelect, clause)
	return r.queryVenues(ctx, query, append([]any{city}, args...)...)
}

func (r *SQLiteRepository) VenuesByCuisine(ctx context.Context, cuisine string, exclude []int64) []Venue {
	clause, args := notIn("id", exclude)
	query := fmt.Sprintf("%s WHERE cuisine_type = ? AND %s ORDER BY id", venueSelect, clause)
	return r.queryVenues(ctx, query, append([]any{cuisine}, args...)...)
}

func (r *SQLiteRepository) AllVenues(ctx context.Context, exclude []int64) []Venue {
	clause, args := notIn("id", exclude)
	query := fmt.Sprintf("%s WHERE %s ORDER BY id", venueSelect, clause)
	return r.queryVenues(ctx, query, args...)
}

// itemProjection intersects the discovered menu_items columns with the
// known-safe set, preserving the safe set's order.
func (r *SQLiteRepository) itemProjection(ctx context.Context) []string {
	actual := r.columnList(ctx, "menu_items")
	var cols []string
	for _, safe := range safeItemColumns {
		for _, have := range actual {
			if strings.EqualFold(have, safe) {
				cols = append(cols, safe)
				break
			}
		}
	}
	if len(cols) == 0 {
		cols = []string{"id"}
	}
	return cols
}

func (r *SQLiteRepository) ItemsAt(ctx context.Context, venueID int64) []MenuItem {
	cols := r.itemProjection(ctx)
	query := fmt.Sprintf("SELECT %s FROM menu_items WHERE restaurant_id = ? ORDER BY id",
		strings.Join(cols, ","))
	rows, err := r.db.QueryContext(ctx, query, venueID)
	if err != nil {
		r.logger.Debug("content: items at %d: %v", venueID, err)
		return nil
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		item, err := scanItem(rows, cols)
		if err != nil {
			r.logger.Debug("content: item scan: %v", err)
			return items
		}
		items = append(items, item)
	}
	return items
}

// scanItem reads one row of the adaptive projection and normalizes it
// into the fixed MenuItem shape.
func scanItem(rows *sql.Rows, cols []string) (MenuItem, error) {
	dest := make([]any, len(cols))
	var (
		id, restaurantID, calories sql.NullInt64
		name, title, itemName      sql.NullString
		description                sql.NullString
		price                      sql.NullFloat64
		spare                      sql.NullString
	)
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &id
		case "restaurant_id":
			dest[i] = &restaurantID
		case "calories":
			dest[i] = &calories
		case "name":
			dest[i] = &name
		case "title":
			dest[i] = &title
		case "item_name":
			dest[i] = &itemName
		case "description":
			dest[i] = &description
		case "price":
			dest[i] = &price
		default:
			dest[i] = &spare
		}
	}
	if err := rows.Scan(dest...); err != nil {
		return MenuItem{}, err
	}

	item := MenuItem{
		ID:          id.Int64,
		VenueID:     restaurantID.Int64,
		Description: description.String,
	}
	switch {
	case name.Valid && name.String != "":
		item.DisplayName = name.String
	case title.Valid && title.String != "":
		item.DisplayName = title.String
	case itemName.Valid && itemName.String != "":
		item.DisplayName = itemName.String
	default:
		item.DisplayName = fmt.Sprintf("Item#%d", id.Int64)
	}
	if price.Valid {
		p := price.Float64
		item.Price = &p
	}
	if calories.Valid {
		c := calories.Int64
		item.Calories = &c
	}
	return item, nil
}

func (r *SQLiteRepository) ItemNamed(ctx context.Context, venueID int64, name string) (*MenuItem, bool) {
	for _, item := range r.ItemsAt(ctx, venueID) {
		if strings.EqualFold(item.DisplayName, name) {
			return &item, true
		}
	}
	return nil, false
}

func (r *SQLiteRepository) ratingQuery(ctx context.Context, query string, args ...any) RatingSummary {
	var avg sql.NullFloat64
	var count sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&avg, &count); err != nil {
		r.logger.Debug("content: rating: %v", err)
		return RatingSummary{}
	}
	return RatingSummary{Average: avg.Float64, Count: count.Int64}
}

func (r *SQLiteRepository) RatingAt(ctx context.Context, venueID int64) RatingSummary {
	return r.ratingQuery(ctx,
		"SELECT AVG(rating), COUNT(*) FROM reviews WHERE restaurant_id = ?", venueID)
}

func (r *SQLiteRepository) RatingInCity(ctx context.Context, city string) RatingSummary {
	return r.ratingQuery(ctx, `
		SELECT AVG(rv.rating), COUNT(*)
		FROM reviews rv
		JOIN restaurants rs ON rs.id = rv.restaurant_id
		WHERE rs.city = ?`, city)
}

func (r *SQLiteRepository) RatingGlobal(ctx context.Context) RatingSummary {
	return r.ratingQuery(ctx, "SELECT AVG(rating), COUNT(*) FROM reviews")
}

func (r *SQLiteRepository) OrderCountAt(ctx context.Context, venueID int64) int64 {
	if r.hasColumn(ctx, "orders", "restaurant_id") {
		return r.countQuery(ctx,
			"SELECT COUNT(*) FROM orders WHERE restaurant_id = ?", venueID)
	}
	// No direct venue reference: infer through order items.
	return r.countQuery(ctx, `
		SELECT COUNT(DISTINCT o.id)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE mi.restaurant_id = ?`, venueID)
}

func (r *SQLiteRepository) countQuery(ctx context.Context, query string, args ...any) int64 {
	var count sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Debug("content: count: %v", err)
		return 0
	}
	return count.Int64
}

func (r *SQLiteRepository) floatsQuery(ctx context.Context, query string, args ...any) []float64 {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Debug("content: floats: %v", err)
		return nil
	}
	defer rows.Close()

	var values []float64
	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			r.logger.Debug("content: float scan: %v", err)
			return values
		}
		if v.Valid {
			values = append(values, v.Float64)
		}
	}
	return values
}

func (r *SQLiteRepository) OrderTotalsAt(ctx context.Context, venueID int64) []float64 {
	return r.floatsQuery(ctx, fmt.Sprintf(
		"SELECT total_amount FROM orders WHERE restaurant_id = ? ORDER BY id LIMIT %d", sampleCap),
		venueID)
}

func (r *SQLiteRepository) OrderTotalsInCity(ctx context.Context, city string) []float64 {
	return r.floatsQuery(ctx, fmt.Sprintf(`
		SELECT o.total_amount
		FROM orders o
		JOIN restaurants rs ON rs.id = o.restaurant_id
		WHERE rs.city = ?
		ORDER BY o.id LIMIT %d`, sampleCap), city)
}

func (r *SQLiteRepository) OrderTotalsGlobal(ctx context.Context) []float64 {
	return r.floatsQuery(ctx, fmt.Sprintf(
		"SELECT total_amount FROM orders ORDER BY id LIMIT %d", sampleCap))
}

func (r *SQLiteRepository) DeliveryFees(ctx context.Context) []float64 {
	return r.floatsQuery(ctx, fmt.Sprintf(
		"SELECT delivery_fee FROM orders ORDER BY id LIMIT %d", sampleCap))
}

func (r *SQLiteRepository) TopItemPricesAt(ctx context.Context, venueID int64, limit int) []float64 {
	return r.floatsQuery(ctx,
		"SELECT price FROM menu_items WHERE restaurant_id = ? ORDER BY price DESC LIMIT ?",
		venueID, limit)
}

func (r *SQLiteRepository) ItemCountAt(ctx context.Context, venueID int64) int64 {
	return r.countQuery(ctx,
		"SELECT COUNT(*) FROM menu_items WHERE restaurant_id = ?", venueID)
}

func (r *SQLiteRepository) ItemCountInCity(ctx context.Context, city string) int64 {
	return r.countQuery(ctx, `
		SELECT COUNT(*)
		FROM menu_items mi
		JOIN restaurants rs ON rs.id = mi.restaurant_id
		WHERE rs.city = ?`, city)
}

func (r *SQLiteRepository) ItemCountGlobal(ctx context.Context) int64 {
	return r.countQuery(ctx, "SELECT COUNT(*) FROM menu_items")
}

func (r *SQLiteRepository) PatronNames(ctx context.Context) []string {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT IFNULL(first_name,''), IFNULL(last_name,'') FROM users ORDER BY id LIMIT %d", sampleCap))
	if err != nil {
		r.logger.Debug("content: patrons: %v", err)
		return nil
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var first, last string
		if err := rows.Scan(&first, &last); err != nil {
			r.logger.Debug("content: patron scan: %v", err)
			return names
		}
		if first == "" {
			continue
		}
		names = append(names, strings.TrimSpace(first+" "+last))
	}
	return names
}
