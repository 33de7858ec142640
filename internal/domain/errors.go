package domain

import (
	"errors"
)

// Sentinel errors for the access-control outcome taxonomy - use with errors.Is().
// The service layer returns these (usually wrapped); transport adapters map
// them to wire statuses. NotAdmin, InsufficientRole and TenantMismatch all
// render as the same coarse "forbidden" status but stay distinct so adapters
// and tests can tell a role denial from a tenant denial.
var (
	// ErrInvalidIdentity means the verified credential is missing a required
	// attribute (tenant or subject). Different failure class from a denial:
	// the caller is malformed, not merely unprivileged.
	ErrInvalidIdentity = errors.New("invalid caller identity")

	// ErrNotAdmin is the RBAC denial for create operations.
	ErrNotAdmin = errors.New("admin role required")

	// ErrInsufficientRole is the RBAC denial for read operations.
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrTenantMismatch is the ABAC denial for cross-tenant access.
	ErrTenantMismatch = errors.New("document belongs to another tenant")

	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)
