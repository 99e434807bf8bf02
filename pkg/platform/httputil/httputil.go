// Package httputil renders JSON bodies and domain errors for HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "deskflow/pkg/domain-errors"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into a status and error body. Server
// side failures never echo their description to the client.
func WriteError(w http.ResponseWriter, err error) {
	status, code := StatusFor(err)
	resp := errorResponse{Error: code}
	if status < http.StatusInternalServerError {
		var de *dErrors.Error
		if errors.As(err, &de) {
			resp.ErrorDescription = de.Message
		}
	}
	WriteJSON(w, status, resp)
}

// StatusFor maps err to an HTTP status and public error code. Invalid input
// here means malformed upstream data, so it is reported as an internal error.
func StatusFor(err error) (int, string) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest, "bad_request"
	case dErrors.CodeNotFound:
		return http.StatusNotFound, "not_found"
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable, "service_unavailable"
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
