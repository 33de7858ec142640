package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"docgate/internal/auth"
	"docgate/internal/httputil"
)

// Paths reachable without a token: the login endpoint that mints tokens and
// the health probe.
var publicPaths = map[string]bool{
	"/login":  true,
	"/health": true,
}

// Auth verifies the request's bearer token and attaches the resulting
// CallerIdentity to the request context. Identity construction happens
// exactly once here; handlers only ever see the finished value.
//
// The REST binding carries the token in the Authorization header. The
// streaming binding carries it in the access_token query parameter, because
// EventSource clients cannot set headers. Both shapes funnel into the same
// verifier and the same identity constructor.
func Auth(verifier auth.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("token rejected",
					"path", r.URL.Path,
					"error", err,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, claims.Identity()))
		})
	}
}

// bearerToken extracts the token from the Authorization header, falling back
// to the access_token query parameter for streaming clients.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}
