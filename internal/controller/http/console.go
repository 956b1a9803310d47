package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/engage-metric/internal/domain/console/entity"
	"github.com/vadim/engage-metric/internal/httpx/response"
)

// ConsoleProvider generates the mocked infrastructure metrics
type ConsoleProvider interface {
	Snapshot() entity.Metrics
}

// ConsoleHandler handles HTTP requests for the NOC console page
type ConsoleHandler struct {
	provider ConsoleProvider
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(p ConsoleProvider) *ConsoleHandler {
	return &ConsoleHandler{provider: p}
}

// RegisterRoutes registers console routes
func (h *ConsoleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/console", h.Get())
}

// Get handles GET /api/console
func (h *ConsoleHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, h.provider.Snapshot())
	}
}
