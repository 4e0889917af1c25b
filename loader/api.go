package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// World is a compiled content world keyed by restaurant handles.
type World struct {
	Name        string
	Restaurants []Restaurant
	Items       []Item
	Reviews     []Review
	Orders      []Order
	Patrons     []string
}

// Restaurant is one venue definition. Key is the Lua handle other
// definitions reference it by.
type Restaurant struct {
	Key     string
	Name    string
	Cuisine string
	City    string
	Rating  float64
	Active  bool
}

// Item is one menu entry belonging to a restaurant.
type Item struct {
	Restaurant  string
	Name        string
	Description string
	Price       *float64
	Calories    *int64
}

// Review is a single rating of a restaurant.
type Review struct {
	Restaurant string
	Rating     float64
}

// Order is one past delivery from a restaurant.
type Order struct {
	Restaurant  string
	Total       float64
	DeliveryFee float64
}

// registerAPI registers the Lua world constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// World { name = "..." }
	L.SetGlobal("World", L.NewFunction(func(L *lua.LState) int {
		coll.world = L.CheckTable(1)
		return 0
	}))

	// Restaurant "key" { ... } — curried: Restaurant("key") returns a
	// function that takes the definition table.
	L.SetGlobal("Restaurant", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.restaurants = append(coll.restaurants, rawRestaurant{key: key, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// MenuItem "restaurant-key" { ... } — curried.
	L.SetGlobal("MenuItem", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.items = append(coll.items, rawItem{key: key, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Review { restaurant = "key", rating = 4.0 }
	L.SetGlobal("Review", L.NewFunction(func(L *lua.LState) int {
		coll.reviews = append(coll.reviews, L.CheckTable(1))
		return 0
	}))

	// Order { restaurant = "key", total = 42.0, delivery_fee = 1.5 }
	L.SetGlobal("Order", L.NewFunction(func(L *lua.LState) int {
		coll.orders = append(coll.orders, L.CheckTable(1))
		return 0
	}))

	// Patron "Full Name"
	L.SetGlobal("Patron", L.NewFunction(func(L *lua.LState) int {
		coll.patrons = append(coll.patrons, L.CheckString(1))
		return 0
	}))
}

func compile(coll *collector) (*World, error) {
	w := &World{Patrons: coll.patrons}

	if coll.world != nil {
		w.Name = tblString(coll.world, "name", "")
	}

	for _, raw := range coll.restaurants {
		r := Restaurant{
			Key:     raw.key,
			Name:    tblString(raw.table, "name", ""),
			Cuisine: tblString(raw.table, "cuisine", ""),
			City:    tblString(raw.table, "city", ""),
			Rating:  tblFloat(raw.table, "rating", 0),
			Active:  tblBool(raw.table, "active", true),
		}
		w.Restaurants = append(w.Restaurants, r)
	}

	for _, raw := range coll.items {
		item := Item{
			Restaurant:  raw.key,
			Name:        tblString(raw.table, "name", ""),
			Description: tblString(raw.table, "description", ""),
		}
		if v := raw.table.RawGetString("price"); v != lua.LNil {
			n, ok := v.(lua.LNumber)
			if !ok {
				return nil, fmt.Errorf("menu item %q: price must be a number", item.Name)
			}
			f := float64(n)
			item.Price = &f
		}
		if v := raw.table.RawGetString("calories"); v != lua.LNil {
			n, ok := v.(lua.LNumber)
			if !ok {
				return nil, fmt.Errorf("menu item %q: calories must be a number", item.Name)
			}
			c := int64(n)
			item.Calories = &c
		}
		w.Items = append(w.Items, item)
	}

	for _, tbl := range coll.reviews {
		w.Reviews = append(w.Reviews, Review{
			Restaurant: tblString(tbl, "restaurant", ""),
			Rating:     tblFloat(tbl, "rating", 0),
		})
	}

	for _, tbl := range coll.orders {
		w.Orders = append(w.Orders, Order{
			Restaurant:  tblString(tbl, "restaurant", ""),
			Total:       tblFloat(tbl, "total", 0),
			DeliveryFee: tblFloat(tbl, "delivery_fee", 0),
		})
	}

	return w, nil
}

func tblString(tbl *lua.LTable, key, fallback string) string {
	if v := tbl.RawGetString(key); v != lua.LNil {
		if s, ok := v.(lua.LString); ok {
			return string(s)
		}
	}
	return fallback
}

func tblFloat(tbl *lua.LTable, key string, fallback float64) float64 {
	if v := tbl.RawGetString(key); v != lua.LNil {
		if n, ok := v.(lua.LNumber); ok {
			return float64(n)
		}
	}
	return fallback
}

func tblBool(tbl *lua.LTable, key string, fallback bool) bool {
	if v := tbl.RawGetString(key); v != lua.LNil {
		if b, ok := v.(lua.LBool); ok {
			return bool(b)
		}
	}
	return fallback
}
