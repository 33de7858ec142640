package auth

import "docgate/internal/domain/models"

// TokenVerifier defines the interface for access-token verification.
// This abstraction allows different verification implementations (local
// HMAC key, remote JWKS) while keeping the transport adapters agnostic to
// the verification details.
type TokenVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.AccessClaims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	// Should be called when the verifier is no longer needed.
	Close() error
}
