package loader

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nathoo/saucequest/content"
)

var seedSchema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		cuisine_type TEXT,
		city TEXT,
		rating REAL,
		is_active INTEGER DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		restaurant_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price REAL,
		calories INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		restaurant_id INTEGER NOT NULL,
		rating REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		restaurant_id INTEGER NOT NULL,
		total_amount REAL,
		delivery_fee REAL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT,
		last_name TEXT
	)`,
}

// Apply writes the world into a SQLite content database, creating the
// tables when missing. Everything runs in one transaction; restaurant
// keys resolve to the generated row IDs.
func (w *World) Apply(ctx context.Context, db *sql.DB) error {
	for _, stmt := range seedSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating seed schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make(map[string]int64, len(w.Restaurants))
	for _, r := range w.Restaurants {
		active := 0
		if r.Active {
			active = 1
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO restaurants (name, cuisine_type, city, rating, is_active) VALUES (?, ?, ?, ?, ?)`,
			r.Name, r.Cuisine, r.City, r.Rating, active)
		if err != nil {
			return fmt.Errorf("inserting restaurant %q: %w", r.Key, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("restaurant %q id: %w", r.Key, err)
		}
		ids[r.Key] = id
	}

	for _, item := range w.Items {
		var price, calories any
		if item.Price != nil {
			price = *item.Price
		}
		if item.Calories != nil {
			calories = *item.Calories
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO menu_items (restaurant_id, name, description, price, calories) VALUES (?, ?, ?, ?, ?)`,
			ids[item.Restaurant], item.Name, item.Description, price, calories)
		if err != nil {
			return fmt.Errorf("inserting menu item %q: %w", item.Name, err)
		}
	}

	for _, rv := range w.Reviews {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reviews (restaurant_id, rating) VALUES (?, ?)`,
			ids[rv.Restaurant], rv.Rating); err != nil {
			return fmt.Errorf("inserting review of %q: %w", rv.Restaurant, err)
		}
	}

	for _, o := range w.Orders {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (restaurant_id, total_amount, delivery_fee) VALUES (?, ?, ?)`,
			ids[o.Restaurant], o.Total, o.DeliveryFee); err != nil {
			return fmt.Errorf("inserting order at %q: %w", o.Restaurant, err)
		}
	}

	for _, p := range w.Patrons {
		first, last := splitName(p)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (first_name, last_name) VALUES (?, ?)`,
			first, last); err != nil {
			return fmt.Errorf("inserting patron %q: %w", p, err)
		}
	}

	return tx.Commit()
}

// ToMemory builds an in-memory repository from the world for play
// without a database. IDs are assigned in definition order.
func (w *World) ToMemory() *content.MemoryRepository {
	repo := content.NewMemoryRepository()
	repo.Inactive = map[int64]bool{}

	ids := make(map[string]int64, len(w.Restaurants))
	for i, r := range w.Restaurants {
		id := int64(i + 1)
		ids[r.Key] = id
		repo.Venues = append(repo.Venues, content.Venue{
			ID: id, Name: r.Name, Cuisine: r.Cuisine, City: r.City, Rating: r.Rating,
		})
		if !r.Active {
			repo.Inactive[id] = true
		}
	}

	for i, item := range w.Items {
		repo.Items = append(repo.Items, content.MenuItem{
			ID:          int64(i + 1),
			VenueID:     ids[item.Restaurant],
			DisplayName: item.Name,
			Description: item.Description,
			Price:       item.Price,
			Calories:    item.Calories,
		})
	}

	for _, rv := range w.Reviews {
		repo.Reviews = append(repo.Reviews, content.Review{VenueID: ids[rv.Restaurant], Rating: rv.Rating})
	}
	for _, o := range w.Orders {
		repo.Orders = append(repo.Orders, content.Order{VenueID: ids[o.Restaurant], Total: o.Total, DeliveryFee: o.DeliveryFee})
	}
	repo.Patrons = append(repo.Patrons, w.Patrons...)
	return repo
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
