package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"docgate/internal/domain/models"
)

// TokenIssuer signs short-lived HS256 access tokens for users authenticated
// against the credential directory. The tenant and role claims it stamps are
// what the verifier later turns into a CallerIdentity.
type TokenIssuer struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing key, issuer
// name and token lifetime.
func NewTokenIssuer(signingKey, issuer string, ttl time.Duration) (*TokenIssuer, error) {
	if signingKey == "" {
		return nil, errors.New("signing key cannot be empty")
	}
	return &TokenIssuer{
		key:    []byte(signingKey),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue returns a signed token for the given user.
func (i *TokenIssuer) Issue(user User) (string, error) {
	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		TenantID: user.TenantID,
		Groups:   user.Roles,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}
