package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"docgate/internal/domain"
	"docgate/internal/domain/models"
)

// HMACVerifier implements TokenVerifier for self-issued HS256 tokens signed
// with a shared key. Pairs with TokenIssuer, which signs with the same key.
type HMACVerifier struct {
	key    []byte
	issuer string
	logger *slog.Logger
}

// NewHMACVerifier creates a verifier for locally issued tokens.
func NewHMACVerifier(signingKey, issuer string, logger *slog.Logger) (*HMACVerifier, error) {
	if signingKey == "" {
		return nil, errors.New("signing key cannot be empty")
	}
	return &HMACVerifier{
		key:    []byte(signingKey),
		issuer: issuer,
		logger: logger,
	}, nil
}

// VerifyToken validates a token's signature, expiry and issuer and extracts
// the access claims. All verification failures collapse to
// domain.ErrUnauthorized; callers never learn which check failed.
func (v *HMACVerifier) VerifyToken(tokenString string) (*models.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks - HS256 only for local tokens
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return v.key, nil
	}, jwt.WithIssuer(v.issuer))
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok {
		v.logger.Error("failed to extract claims from token")
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close is a no-op; the verifier holds no external resources.
func (v *HMACVerifier) Close() error {
	return nil
}

// Ensure HMACVerifier implements TokenVerifier.
var _ TokenVerifier = (*HMACVerifier)(nil)
