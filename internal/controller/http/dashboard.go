package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
	"github.com/vadim/engage-metric/internal/httpx/response"
)

// DashboardPolicy defines the interface for dashboard aggregation
type DashboardPolicy interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
}

// DashboardHandler handles HTTP requests for the engagement dashboard
type DashboardHandler struct {
	policy DashboardPolicy
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(p DashboardPolicy, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{policy: p, logger: logger}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Get())
}

// Get handles GET /api/dashboard. Any failure of the row source aborts the
// whole request; no partial payloads.
func (h *DashboardHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := h.policy.Dashboard(r.Context())
		if err != nil {
			h.logger.Error("dashboard aggregation failed", "error", err)
			response.InternalError(w, "internal server error")
			return
		}

		response.OK(w, dashboard)
	}
}
