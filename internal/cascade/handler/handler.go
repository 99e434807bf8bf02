package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"deskflow/internal/cascade"
	"deskflow/internal/platform/middleware"
	dErrors "deskflow/pkg/domain-errors"
	"deskflow/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service builds school cascades.
type Service interface {
	SchoolCascade(ctx context.Context, schoolID int64, formType string) ([]cascade.Division, error)
}

// Handler serves the order cascade endpoint.
type Handler struct {
	logger  *slog.Logger
	cascade Service
}

// New creates a new cascade Handler.
func New(cascade Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		logger:  logger,
		cascade: cascade,
	}
}

// Register registers the cascade routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/pedidos/escola/{escola_id}/cascata", h.handleSchoolCascade)
}

// Response is the body of a successful cascade request.
type Response struct {
	Dashboard []cascade.Division `json:"dashboard_completo"`
}

func (h *Handler) handleSchoolCascade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	schoolID, err := parseSchoolID(chi.URLParam(r, "escola_id"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid escola_id",
			"request_id", requestID,
			"escola_id", chi.URLParam(r, "escola_id"),
		)
		httputil.WriteError(w, err)
		return
	}

	tree, err := h.cascade.SchoolCascade(ctx, schoolID, r.URL.Query().Get("tipo_formulario"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build cascade",
			"request_id", requestID,
			"escola_id", schoolID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, Response{Dashboard: tree})
}

func parseSchoolID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "escola_id must be a positive integer")
	}
	return id, nil
}
