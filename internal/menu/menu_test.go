package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzaa/pizza-store/internal/models"
)

func sampleMenu() models.Menu {
	return models.Menu{
		{ID: 1, Name: "Margherita", Size: "Medium", Price: 12.99, Toppings: []string{"tomato sauce", "mozzarella", "basil"}},
		{ID: 2, Name: "Pepperoni", Size: "Large", Price: 15.99, Toppings: []string{"tomato sauce", "mozzarella", "pepperoni"}},
		{ID: 3, Name: "Veggie Supreme", Size: "Medium", Price: 13.99, Toppings: []string{"tomato sauce", "mozzarella", "peppers", "onions", "mushrooms"}},
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Margherita", "Pepperoni", "Veggie Supreme"}, Names(sampleMenu()))
	assert.Equal(t, []string{}, Names(models.Menu{}))
}

func TestFindByID(t *testing.T) {
	m := sampleMenu()

	p, found := FindByID(m, 2)
	require.True(t, found)
	assert.Equal(t, "Pepperoni", p.Name)
	assert.Equal(t, 15.99, p.Price)

	_, found = FindByID(m, 999)
	assert.False(t, found)

	_, found = FindByID(models.Menu{}, 1)
	assert.False(t, found)
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		menu models.Menu
		want int
	}{
		{"empty menu", models.Menu{}, 1},
		{"sequential ids", sampleMenu(), 4},
		{"gap below max", models.Menu{{ID: 1}, {ID: 5}}, 6},
		{"single record", models.Menu{{ID: 7}}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.menu))
		})
	}
}

// Removing the highest id must free it for reuse; the next id is derived from
// the current menu, not a counter.
func TestNextID_ReuseAfterRemovingMax(t *testing.T) {
	m := sampleMenu()

	m, found := RemoveByID(m, 3)
	require.True(t, found)
	assert.Equal(t, 3, NextID(m))

	m, id := Add(m, models.Pizza{Name: "Quattro Formaggi", Size: "Large", Price: 16.49, Toppings: []string{"mozzarella", "gorgonzola", "parmesan", "fontina"}})
	assert.Equal(t, 3, id)
	assert.Equal(t, 4, NextID(m))
}

func TestAdd(t *testing.T) {
	m := sampleMenu()
	pizza := models.Pizza{Name: "Supreme", Size: "Medium", Price: 14.99, Toppings: []string{"pepperoni", "sausage", "peppers"}}

	wantID := NextID(m)
	m, id := Add(m, pizza)

	assert.Equal(t, wantID, id)
	require.Len(t, m, 4)

	got, found := FindByID(m, id)
	require.True(t, found)
	assert.Equal(t, pizza.Name, got.Name)
	assert.Equal(t, pizza.Size, got.Size)
	assert.Equal(t, pizza.Price, got.Price)
	assert.Equal(t, pizza.Toppings, got.Toppings)
}

func TestPriceOrder(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.OrderItem
		wantTotal    float64
		wantNotFound []int
	}{
		{
			name:         "single item",
			items:        []models.OrderItem{{ID: 1, Quantity: 2}},
			wantTotal:    25.98,
			wantNotFound: []int{},
		},
		{
			name:         "multiple items",
			items:        []models.OrderItem{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 2}},
			wantTotal:    57.96,
			wantNotFound: []int{},
		},
		{
			name:         "partially resolved",
			items:        []models.OrderItem{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 2}, {ID: 20220, Quantity: 12}},
			wantTotal:    57.96,
			wantNotFound: []int{20220},
		},
		{
			name:         "nothing resolved",
			items:        []models.OrderItem{{ID: 12, Quantity: 2}, {ID: 33, Quantity: 2}},
			wantTotal:    0,
			wantNotFound: []int{12, 33},
		},
		{
			name:         "duplicate misses kept in order",
			items:        []models.OrderItem{{ID: 50, Quantity: 1}, {ID: 1, Quantity: 1}, {ID: 50, Quantity: 1}},
			wantTotal:    12.99,
			wantNotFound: []int{50, 50},
		},
		{
			name:         "empty order",
			items:        []models.OrderItem{},
			wantTotal:    0,
			wantNotFound: []int{},
		},
		{
			name:         "zero quantity trusted as given",
			items:        []models.OrderItem{{ID: 1, Quantity: 0}},
			wantTotal:    0,
			wantNotFound: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, notFound := PriceOrder(sampleMenu(), tt.items)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantNotFound, notFound)
		})
	}
}

// The running total accumulates raw float products; rounding happens once at
// the end, not per item.
func TestPriceOrder_RoundsFinalTotal(t *testing.T) {
	m := models.Menu{{ID: 1, Name: "Mini", Size: "Small", Price: 0.10, Toppings: []string{}}}

	total, notFound := PriceOrder(m, []models.OrderItem{{ID: 1, Quantity: 3}})
	assert.Equal(t, 0.3, total)
	assert.Empty(t, notFound)
}

func TestRemoveByID(t *testing.T) {
	m := sampleMenu()

	m, found := RemoveByID(m, 2)
	require.True(t, found)
	require.Len(t, m, 2)
	assert.Equal(t, []string{"Margherita", "Veggie Supreme"}, Names(m))

	_, stillThere := FindByID(m, 2)
	assert.False(t, stillThere)
}

func TestRemoveByID_MissLeavesMenuUnchanged(t *testing.T) {
	before := sampleMenu()

	after, found := RemoveByID(sampleMenu(), 999)
	assert.False(t, found)
	assert.Equal(t, before, after)
}

func TestUpdatePrice(t *testing.T) {
	m := sampleMenu()

	m, found := UpdatePrice(m, 1, 13.49)
	require.True(t, found)

	got, ok := FindByID(m, 1)
	require.True(t, ok)
	assert.Equal(t, 13.49, got.Price)

	// Every other field and record stays untouched
	want := sampleMenu()
	want[0].Price = 13.49
	assert.Equal(t, want, m)
}

func TestUpdatePrice_MissLeavesMenuUnchanged(t *testing.T) {
	before := sampleMenu()

	after, found := UpdatePrice(sampleMenu(), 999, 9.99)
	assert.False(t, found)
	assert.Equal(t, before, after)
}
