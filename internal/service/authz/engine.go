// Package authz implements the RBAC+ABAC decision rules as code, so the
// policies live in one auditable place and can be asserted in tests without
// a transport in the loop.
package authz

import (
	"fmt"

	"docgate/internal/domain"
	"docgate/internal/domain/models"
	"docgate/internal/domain/services"
)

// RoleTenantAuthorizer implements DocumentAuthorizer by combining role
// membership (RBAC) with tenant equality between caller and document (ABAC).
//
// For future extensibility:
// - PermissionBasedAuthorizer: check fine-grained per-document grants
// - SharingAuthorizer: check if a document is shared across tenants
type RoleTenantAuthorizer struct{}

// NewRoleTenantAuthorizer creates the role+tenant decision engine.
func NewRoleTenantAuthorizer() *RoleTenantAuthorizer {
	return &RoleTenantAuthorizer{}
}

// CanCreate allows creation for admins only.
func (a *RoleTenantAuthorizer) CanCreate(identity models.CallerIdentity) error {
	if !identity.HasRole(models.RoleAdmin) {
		return fmt.Errorf("only admin users can create documents: %w", domain.ErrNotAdmin)
	}
	return nil
}

// CanRead allows reads for admins and viewers within the document's tenant.
// The tenant check runs first: a cross-tenant caller is denied for the
// tenant, not the role, even when they hold admin elsewhere.
func (a *RoleTenantAuthorizer) CanRead(identity models.CallerIdentity, doc *models.Document) error {
	if identity.TenantID != doc.TenantID {
		return fmt.Errorf("cannot access documents from other tenants: %w", domain.ErrTenantMismatch)
	}
	if !identity.CanRead() {
		return fmt.Errorf("user does not have permission to read documents: %w", domain.ErrInsufficientRole)
	}
	return nil
}

// VisibleInTenantListing includes same-tenant documents for admins and viewers.
func (a *RoleTenantAuthorizer) VisibleInTenantListing(identity models.CallerIdentity, doc *models.Document) bool {
	if identity.TenantID != doc.TenantID {
		return false
	}
	return identity.CanRead()
}

// VisibleInUserListing includes same-tenant documents the caller created;
// admins see every document in their tenant.
func (a *RoleTenantAuthorizer) VisibleInUserListing(identity models.CallerIdentity, doc *models.Document) bool {
	if identity.TenantID != doc.TenantID {
		return false
	}
	return identity.HasRole(models.RoleAdmin) || doc.CreatedBy == identity.Username
}

// Ensure RoleTenantAuthorizer implements DocumentAuthorizer.
var _ services.DocumentAuthorizer = (*RoleTenantAuthorizer)(nil)
