package handler

import (
	"net/http"

	"github.com/google/uuid"

	"docgate/internal/domain/models"
	"docgate/internal/httputil"
)

// documentID extracts and syntax-checks the {id} path parameter. Malformed
// IDs are rejected here so the service layer only ever sees well-formed ones.
func documentID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid document ID format")
		return "", false
	}
	return id, true
}

// callerIdentity fetches the identity the auth middleware attached.
func callerIdentity(w http.ResponseWriter, r *http.Request) (models.CallerIdentity, bool) {
	identity, ok := httputil.GetIdentity(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "missing caller identity")
		return models.CallerIdentity{}, false
	}
	return identity, true
}
