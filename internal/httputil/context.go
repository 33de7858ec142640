package httputil

import (
	"context"
	"net/http"

	"docgate/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	identityKey contextKey = "callerIdentity"
)

// WithIdentity adds the caller identity to the request context
func WithIdentity(r *http.Request, identity models.CallerIdentity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, identity)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the caller identity from the request context.
// ok is false when no authenticated identity was attached.
func GetIdentity(r *http.Request) (models.CallerIdentity, bool) {
	identity, ok := r.Context().Value(identityKey).(models.CallerIdentity)
	return identity, ok
}
