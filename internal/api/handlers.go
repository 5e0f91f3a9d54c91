// Package api provides the HTTP handlers for the discovery server
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alexbotov/discovery/internal/domain"
)

// Discoverer produces the current subproject mapping
type Discoverer interface {
	Scan(ctx context.Context) map[string]domain.ServiceAddress
}

// Handler contains all HTTP handlers
type Handler struct {
	discoverer Discoverer
	main       domain.ServiceAddress
	logger     *slog.Logger
}

// New creates a new API handler
func New(discoverer Discoverer, main domain.ServiceAddress, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		discoverer: discoverer,
		main:       main,
		logger:     logger,
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// Discover handles GET /
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	doc := domain.NewDocument(h.main, h.discoverer.Scan(r.Context()))

	if err := respondJSON(w, http.StatusOK, doc); err != nil {
		h.logger.Error("write discovery response", "error", err, "request_id", RequestID(r.Context()))
	}
}

// NotFound answers every unknown path or method with an empty 404
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
