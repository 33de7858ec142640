package handler

import (
	"errors"
	"net/http"

	"docgate/internal/domain"
	"docgate/internal/httputil"
)

// handleError converts domain errors to HTTP responses. The three denial
// kinds all map to 403 but keep their own detail text; a tenant mismatch
// stays distinguishable from a missing document (403 vs 404).
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidIdentity):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotAdmin),
		errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrTenantMismatch):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// RPC-style status code names used by the streaming binding's error events.
// Mirrors the gRPC status taxonomy so a streaming client loses nothing
// relative to the synchronous binding.
const (
	codeInvalidArgument  = "INVALID_ARGUMENT"
	codeUnauthenticated  = "UNAUTHENTICATED"
	codePermissionDenied = "PERMISSION_DENIED"
	codeNotFound         = "NOT_FOUND"
	codeUnknown          = "UNKNOWN"
)

// streamCode maps a domain error to its RPC-style status code name.
func streamCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return codeInvalidArgument
	case errors.Is(err, domain.ErrInvalidIdentity),
		errors.Is(err, domain.ErrUnauthorized):
		return codeUnauthenticated
	case errors.Is(err, domain.ErrNotAdmin),
		errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrTenantMismatch):
		return codePermissionDenied
	case errors.Is(err, domain.ErrNotFound):
		return codeNotFound
	default:
		return codeUnknown
	}
}
