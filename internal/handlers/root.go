package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

const apiVersion = "1.0.0"

// RootHandler serves the static welcome document.
type RootHandler struct {
	log *slog.Logger
}

// NewRootHandler creates a new root handler
func NewRootHandler(log *slog.Logger) *RootHandler {
	return &RootHandler{log: log}
}

// ServeHTTP handles GET /
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Pizza Store API",
		"version": apiVersion,
		"docs":    "/docs",
	}, h.log)
}

// HealthHandler provides the health check endpoint.
type HealthHandler struct {
	log *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(log *slog.Logger) *HealthHandler {
	return &HealthHandler{log: log}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ServeHTTP handles GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   apiVersion,
	}, h.log)
}
