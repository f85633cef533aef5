package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pizzaa/pizza-store/internal/models"
	"github.com/pizzaa/pizza-store/internal/service"
)

// PizzaHandler handles the menu-management HTTP endpoints.
type PizzaHandler struct {
	service *service.MenuService
	log     *slog.Logger
}

// NewPizzaHandler creates a new pizza handler
func NewPizzaHandler(service *service.MenuService, log *slog.Logger) *PizzaHandler {
	return &PizzaHandler{
		service: service,
		log:     log,
	}
}

// ListNames handles GET /pizza_names
func (h *PizzaHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.PizzaNames(r.Context())
	if err != nil {
		h.log.Error("failed to list pizza names", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"pizza_list": names}, h.log)
}

// GetDetails handles GET /pizza_details?id=
// A miss still answers 200 with a message body; only a malformed query is
// rejected.
func (h *PizzaHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	id, err := intQueryParam(r, "id")
	if err != nil {
		h.log.Warn("invalid pizza details query", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Query parameter 'id' must be an integer", h.log)
		return
	}

	pizza, found, err := h.service.PizzaDetails(r.Context(), id)
	if err != nil {
		h.log.Error("failed to get pizza details", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if !found {
		WriteJSON(w, http.StatusOK, map[string]string{"message": "id not found"}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, pizza, h.log)
}

// AddPizza handles PUT /add_pizza
func (h *PizzaHandler) AddPizza(w http.ResponseWriter, r *http.Request) {
	var pizza models.Pizza
	if err := json.NewDecoder(r.Body).Decode(&pizza); err != nil {
		h.log.Warn("failed to decode add_pizza request", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Invalid request body", h.log)
		return
	}
	if pizza.Toppings == nil {
		pizza.Toppings = []string{}
	}

	id, err := h.service.AddPizza(r.Context(), pizza)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, http.StatusUnprocessableEntity, err.Error(), h.log)
			return
		}
		h.log.Error("failed to add pizza", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "New pizza added successfully",
		"pizza_id": id,
	}, h.log)
	h.log.Info("pizza added", "pizza_id", id, "name", pizza.Name)
}

// RemovePizza handles DELETE /remove_pizza?pizza_id=
// Answers 200 whether or not the id existed; the message tells them apart.
func (h *PizzaHandler) RemovePizza(w http.ResponseWriter, r *http.Request) {
	id, err := intQueryParam(r, "pizza_id")
	if err != nil {
		h.log.Warn("invalid remove_pizza query", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Query parameter 'pizza_id' must be an integer", h.log)
		return
	}

	found, err := h.service.RemovePizza(r.Context(), id)
	if err != nil {
		h.log.Error("failed to remove pizza", "pizza_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if !found {
		WriteJSON(w, http.StatusOK, map[string]string{"message": "Pizza ID not found"}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "Pizza removed successfully"}, h.log)
	h.log.Info("pizza removed", "pizza_id", id)
}

// UpdatePrice handles PATCH /update_price
func (h *PizzaHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	var upd models.PriceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.log.Warn("failed to decode update_price request", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Invalid request body", h.log)
		return
	}

	found, err := h.service.UpdatePrice(r.Context(), upd)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, http.StatusUnprocessableEntity, err.Error(), h.log)
			return
		}
		h.log.Error("failed to update pizza price", "pizza_id", upd.PizzaID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if !found {
		WriteJSON(w, http.StatusOK, map[string]string{"message": "Pizza ID not found"}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "Pizza price updated successfully"}, h.log)
	h.log.Info("pizza price updated", "pizza_id", upd.PizzaID, "new_price", upd.NewPrice)
}

// isValidationError reports whether err is a request-validation failure that
// maps to a 422.
func isValidationError(err error) bool {
	return errors.Is(err, models.ErrNonPositivePrice) ||
		errors.Is(err, models.ErrMissingName) ||
		errors.Is(err, models.ErrMissingSize)
}
