package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the JWT claims schema both transport bindings accept.
// Tenant membership and roles are first-class fields rather than ad hoc
// lookups in a generic claim bag.
type AccessClaims struct {
	jwt.RegisteredClaims          // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	TenantID             string   `json:"tenant_id"`
	Groups               []string `json:"groups"`
}

// Identity builds the per-request CallerIdentity from the verified claims.
// This is the single construction step every transport adapter funnels
// through; the core never sees a raw token.
func (c *AccessClaims) Identity() CallerIdentity {
	return CallerIdentity{
		TenantID: c.TenantID,
		Roles:    c.Groups,
		Username: c.Subject,
	}
}
