package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pizzaa/pizza-store/internal/models"
	"github.com/pizzaa/pizza-store/internal/service"
)

// OrderHandler prices incoming orders against the menu.
type OrderHandler struct {
	service *service.MenuService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.MenuService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// PlaceOrder handles POST /order
// When zero items resolve (an empty array included) the response is a 404
// whose detail lists the unresolved ids.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var items []models.OrderItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Invalid request body", h.log)
		return
	}

	receipt, err := h.service.PlaceOrder(r.Context(), items)
	if err != nil {
		if errors.Is(err, service.ErrNoItemsFound) {
			WriteJSON(w, http.StatusNotFound, map[string]string{
				"detail": fmt.Sprintf("Pizzas with IDs %v not found.", receipt.NotFoundIDs),
			}, h.log)
			return
		}
		h.log.Error("failed to price order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, receipt, h.log)
	h.log.Info("order priced",
		"items", len(items),
		"total_price", receipt.TotalPrice,
		"not_found", len(receipt.NotFoundIDs),
	)
}
