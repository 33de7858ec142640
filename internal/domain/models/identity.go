package models

import (
	"fmt"

	"docgate/internal/domain"
)

// Recognized role values. Any other role string on an identity is preserved
// but grants nothing.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// CallerIdentity is the transport-independent representation of "who is
// making this request".
//
// It is immutable after construction: a transport adapter builds one value
// per request from a verified token and discards it at request exit. Roles
// are resolved once at that point and never modified, so authorization
// checks never touch shared mutable state.
type CallerIdentity struct {
	// TenantID is the isolation boundary the caller belongs to.
	TenantID string

	// Roles is the caller's role set as carried by the token. Unrecognized
	// values ride along untouched.
	Roles []string

	// Username is the caller's stable identity key (token subject).
	Username string
}

// HasRole reports whether the identity carries the given role.
func (c CallerIdentity) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanRead reports whether the identity carries any role that allows reading
// documents.
func (c CallerIdentity) CanRead() bool {
	return c.HasRole(RoleAdmin) || c.HasRole(RoleViewer)
}

// Validate checks the identity invariants every operation requires: a
// non-empty tenant and subject. A failure here means the credential was
// malformed or incomplete, not that the caller lacks permission.
func (c CallerIdentity) Validate() error {
	if c.TenantID == "" {
		return fmt.Errorf("%w: missing tenant", domain.ErrInvalidIdentity)
	}
	if c.Username == "" {
		return fmt.Errorf("%w: missing subject", domain.ErrInvalidIdentity)
	}
	return nil
}
