package service

import (
	"context"
	"errors"
	"sync"

	"github.com/pizzaa/pizza-store/internal/menu"
	"github.com/pizzaa/pizza-store/internal/models"
	"github.com/pizzaa/pizza-store/internal/storage"
)

// ErrNoItemsFound means not a single order item resolved to a menu record.
// An empty item list lands here too.
var ErrNoItemsFound = errors.New("no order items matched the menu")

// MenuService runs each request as an independent load, transform, save cycle
// against the store; no state is kept between requests. The default mode is
// lock-free, so two concurrent mutations can compute the same next id and the
// later save wins (lost update). With strict writes enabled the mutating
// cycles of this process are serialized behind a mutex; that does not protect
// against multiple processes sharing one store.
type MenuService struct {
	store storage.MenuStore
	mu    *sync.Mutex
}

// NewMenuService creates a menu service over the given store.
func NewMenuService(store storage.MenuStore, strictWrites bool) *MenuService {
	s := &MenuService{store: store}
	if strictWrites {
		s.mu = &sync.Mutex{}
	}
	return s
}

// lock serializes a mutating cycle in strict mode and is a no-op otherwise.
func (s *MenuService) lock() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// PizzaNames returns every pizza name in menu order.
func (s *MenuService) PizzaNames(ctx context.Context) ([]string, error) {
	m, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return menu.Names(m), nil
}

// PizzaDetails returns the pizza with the given id; found reports a miss.
func (s *MenuService) PizzaDetails(ctx context.Context, id int) (models.Pizza, bool, error) {
	m, err := s.store.Load(ctx)
	if err != nil {
		return models.Pizza{}, false, err
	}
	p, found := menu.FindByID(m, id)
	return p, found, nil
}

// PlaceOrder prices the requested items against the current menu. Nothing is
// persisted. When zero items resolve the receipt still carries the unresolved
// ids alongside ErrNoItemsFound so callers can report them.
func (s *MenuService) PlaceOrder(ctx context.Context, items []models.OrderItem) (models.OrderReceipt, error) {
	m, err := s.store.Load(ctx)
	if err != nil {
		return models.OrderReceipt{}, err
	}

	total, notFound := menu.PriceOrder(m, items)
	receipt := models.OrderReceipt{TotalPrice: total, NotFoundIDs: notFound}
	if len(items)-len(notFound) == 0 {
		return receipt, ErrNoItemsFound
	}
	return receipt, nil
}

// AddPizza validates and appends a new pizza, returning its assigned id.
// Validation runs before the store is touched.
func (s *MenuService) AddPizza(ctx context.Context, p models.Pizza) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	defer s.lock()()
	m, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	m, id := menu.Add(m, p)
	if err := s.store.Save(ctx, m); err != nil {
		return 0, err
	}
	return id, nil
}

// RemovePizza removes the pizza with the given id and reports whether one was
// removed. A miss saves nothing.
func (s *MenuService) RemovePizza(ctx context.Context, id int) (bool, error) {
	defer s.lock()()
	m, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	m, found := menu.RemoveByID(m, id)
	if !found {
		return false, nil
	}
	if err := s.store.Save(ctx, m); err != nil {
		return false, err
	}
	return true, nil
}

// UpdatePrice overwrites one pizza's price and reports whether the id was
// found. Validation runs before the store is touched; a miss saves nothing.
func (s *MenuService) UpdatePrice(ctx context.Context, upd models.PriceUpdate) (bool, error) {
	if err := upd.Validate(); err != nil {
		return false, err
	}

	defer s.lock()()
	m, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	m, found := menu.UpdatePrice(m, upd.PizzaID, upd.NewPrice)
	if !found {
		return false, nil
	}
	if err := s.store.Save(ctx, m); err != nil {
		return false, err
	}
	return true, nil
}
