package models

import "errors"

var (
	ErrNonPositivePrice = errors.New("price must be greater than zero")
	ErrMissingName      = errors.New("name must not be empty")
	ErrMissingSize      = errors.New("size must not be empty")
)

// Pizza represents a single menu record.
// A zero ID means "not yet assigned"; ids are handed out by the menu package
// when a pizza is added.
type Pizza struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Size     string   `json:"size"`
	Price    float64  `json:"price"`
	Toppings []string `json:"toppings"`
}

// Menu is the full ordered list of pizzas, persisted as one unit.
// All ids are unique and positive; order is insertion order.
type Menu []Pizza

// Validate checks a pizza submitted for creation. It runs before any storage
// access so a rejected request never touches the store.
func (p *Pizza) Validate() error {
	if p.Name == "" {
		return ErrMissingName
	}
	if p.Size == "" {
		return ErrMissingSize
	}
	if p.Price <= 0 {
		return ErrNonPositivePrice
	}
	return nil
}
