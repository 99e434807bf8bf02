package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"deskflow/internal/dashboard"
	"deskflow/internal/platform/middleware"
	"deskflow/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service lists schools with orders.
type Service interface {
	Schools(ctx context.Context, formTypes []string) (dashboard.Listing, error)
}

// Handler serves the schools dashboard.
type Handler struct {
	logger    *slog.Logger
	dashboard Service
}

func New(dashboard Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{logger: logger, dashboard: dashboard}
}

// Register registers the dashboard routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/dashboard/escolas", h.handleListSchools)
}

func (h *Handler) handleListSchools(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listing, err := h.dashboard.Schools(ctx, r.URL.Query()["tipo_formulario"])
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list schools",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, listing)
}
