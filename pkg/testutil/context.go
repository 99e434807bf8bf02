package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"deskflow/internal/platform/middleware"
)

// WithURLParams attaches chi route parameters so handlers can be called
// directly without mounting a router.
func WithURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// WithRequestID simulates the request id middleware.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyRequestID, requestID)
	return req.WithContext(ctx)
}
