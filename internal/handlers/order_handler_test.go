package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzaa/pizza-store/internal/models"
)

type orderResponse struct {
	TotalPrice  float64 `json:"total_price"`
	NotFoundIDs []int   `json:"not_found_ids"`
}

func TestPlaceOrder_SingleItem(t *testing.T) {
	router := newTestRouter(t, sampleMenu())

	w := doJSON(t, router, http.MethodPost, "/order", []models.OrderItem{{ID: 1, Quantity: 2}})
	require.Equal(t, http.StatusOK, w.Code)

	var body orderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 25.98, body.TotalPrice)
	assert.Empty(t, body.NotFoundIDs)
}

func TestPlaceOrder_MultipleItems(t *testing.T) {
	router := newTestRouter(t, sampleMenu())

	w := doJSON(t, router, http.MethodPost, "/order", []models.OrderItem{
		{ID: 1, Quantity: 2},
		{ID: 2, Quantity: 2},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body orderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 57.96, body.TotalPrice)
	assert.Empty(t, body.NotFoundIDs)
}

// Orders that resolve at least one item succeed; the misses ride along in
// not_found_ids.
func TestPlaceOrder_PartiallyResolved(t *testing.T) {
	router := newTestRouter(t, sampleMenu())

	w := doJSON(t, router, http.MethodPost, "/order", []models.OrderItem{
		{ID: 1, Quantity: 2},
		{ID: 2, Quantity: 2},
		{ID: 20220, Quantity: 12},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body orderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 57.96, body.TotalPrice)
	assert.Equal(t, []int{20220}, body.NotFoundIDs)
}

func TestPlaceOrder_NothingResolved(t *testing.T) {
	router := newTestRouter(t, sampleMenu())

	w := doJSON(t, router, http.MethodPost, "/order", []models.OrderItem{
		{ID: 12, Quantity: 2},
		{ID: 33, Quantity: 2},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	detail, ok := decodeBody(t, w)["detail"].(string)
	require.True(t, ok)
	assert.Contains(t, detail, "not found")
	assert.Contains(t, detail, "12")
	assert.Contains(t, detail, "33")
}

// An empty order rides the same 404 path as "nothing resolved".
func TestPlaceOrder_EmptyOrder(t *testing.T) {
	router := newTestRouter(t, sampleMenu())

	w := doJSON(t, router, http.MethodPost, "/order", []models.OrderItem{})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w)["detail"], "not found")
}

func TestPlaceOrder_EmptyMenu(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/order", []models.OrderItem{{ID: 1, Quantity: 1}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	router := newTestRouter(t, sampleMenu())

	req := httptest.NewRequest(http.MethodPost, "/order", bytes.NewReader([]byte(`{"id": 1}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
