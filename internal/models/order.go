package models

// OrderItem references a menu record by id. Quantity is trusted as given;
// order items are never persisted.
type OrderItem struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// OrderReceipt is the response to a priced order.
type OrderReceipt struct {
	TotalPrice  float64 `json:"total_price"`
	NotFoundIDs []int   `json:"not_found_ids"`
}

// PriceUpdate asks for one pizza's price to be overwritten.
type PriceUpdate struct {
	PizzaID  int     `json:"pizza_id"`
	NewPrice float64 `json:"new_price"`
}

// Validate rejects non-positive replacement prices.
func (u *PriceUpdate) Validate() error {
	if u.NewPrice <= 0 {
		return ErrNonPositivePrice
	}
	return nil
}
