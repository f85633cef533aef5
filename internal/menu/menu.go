// Package menu holds the pure operations over a menu value. Every request
// loads the full menu, transforms it here, and saves it back; nothing in this
// package touches storage.
package menu

import (
	"math"

	"github.com/pizzaa/pizza-store/internal/models"
)

// Names returns the name of every pizza, preserving menu order.
func Names(m models.Menu) []string {
	names := make([]string, 0, len(m))
	for _, p := range m {
		names = append(names, p.Name)
	}
	return names
}

// FindByID returns the first pizza with the given id. Ids are unique, so the
// first match is the only one. Linear scan; the menu is small.
func FindByID(m models.Menu, id int) (models.Pizza, bool) {
	for _, p := range m {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pizza{}, false
}

// NextID is 1 for an empty menu, otherwise max(id)+1. Removing the
// highest-numbered pizza frees its id for the next addition; do not replace
// this with a persistent counter.
func NextID(m models.Menu) int {
	next := 1
	for _, p := range m {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// PriceOrder totals price*quantity over the items that resolve against the
// menu and collects the ids that do not, in order of appearance with
// duplicates kept. Quantity is trusted as given. The total is rounded to two
// decimals once, at the end.
func PriceOrder(m models.Menu, items []models.OrderItem) (float64, []int) {
	total := 0.0
	notFound := make([]int, 0)
	for _, item := range items {
		p, ok := FindByID(m, item.ID)
		if ok {
			total += p.Price * float64(item.Quantity)
		} else {
			notFound = append(notFound, item.ID)
		}
	}
	return math.Round(total*100) / 100, notFound
}

// Add appends pizza with a freshly assigned id and returns that id.
func Add(m models.Menu, p models.Pizza) (models.Menu, int) {
	p.ID = NextID(m)
	return append(m, p), p.ID
}

// RemoveByID drops the first pizza with the given id. The menu comes back
// unchanged when the id is absent.
func RemoveByID(m models.Menu, id int) (models.Menu, bool) {
	for i, p := range m {
		if p.ID == id {
			return append(m[:i:i], m[i+1:]...), true
		}
	}
	return m, false
}

// UpdatePrice overwrites the price of the pizza with the given id, leaving
// every other field and every other record untouched.
func UpdatePrice(m models.Menu, id int, price float64) (models.Menu, bool) {
	for i := range m {
		if m[i].ID == id {
			m[i].Price = price
			return m, true
		}
	}
	return m, false
}
