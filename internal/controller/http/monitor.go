package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/engage-metric/internal/domain/monitor/entity"
	"github.com/vadim/engage-metric/internal/httpx/response"
)

// MonitorPolicy defines the interface for user lookups
type MonitorPolicy interface {
	LookupUser(ctx context.Context, query string) (*entity.LookupResult, error)
}

// MonitorHandler handles HTTP requests for the user monitor page
type MonitorHandler struct {
	policy MonitorPolicy
	logger *slog.Logger
}

// NewMonitorHandler creates a new monitor handler
func NewMonitorHandler(p MonitorPolicy, logger *slog.Logger) *MonitorHandler {
	return &MonitorHandler{policy: p, logger: logger}
}

// RegisterRoutes registers monitor routes
func (h *MonitorHandler) RegisterRoutes(r chi.Router) {
	r.Get("/monitor/user", h.LookupUser())
}

// LookupUser handles GET /api/monitor/user?q=. A query matching nothing is
// a 200 with found=false; only a missing query is a client error.
func (h *MonitorHandler) LookupUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.policy.LookupUser(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			if errors.Is(err, entity.ErrQueryMissing) {
				response.BadRequest(w, err.Error())
				return
			}
			h.logger.Error("user lookup failed", "error", err)
			response.InternalError(w, "internal server error")
			return
		}

		response.OK(w, result)
	}
}
