package handler

import (
	"log/slog"
	"net/http"

	"docgate/internal/auth"
	"docgate/internal/httputil"
)

// AuthHandler issues access tokens for users in the credential directory.
type AuthHandler struct {
	directory *auth.Directory
	issuer    *auth.TokenIssuer
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(directory *auth.Directory, issuer *auth.TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		directory: directory,
		issuer:    issuer,
		logger:    logger,
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials against the directory and returns a signed token
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, ok := h.directory.Authenticate(req.Username, req.Password)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		h.logger.Error("token issue failed", "username", req.Username, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("user logged in",
		"username", user.Username,
		"tenant_id", user.TenantID,
	)

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}
