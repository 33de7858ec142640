package services

import (
	"context"

	"docgate/internal/domain/models"
)

// DocumentService is the transport-agnostic API surface. Every operation
// validates the caller identity before any authorization rule runs and
// returns typed outcomes (see internal/domain errors) instead of raising;
// adapters map those outcomes onto their own error model.
type DocumentService interface {
	// Create stores a new document stamped with the caller's tenant and
	// username. RBAC: admin only.
	Create(ctx context.Context, req *CreateDocumentRequest, identity models.CallerIdentity) (*models.Document, error)

	// GetByID fetches a single document. Existence is checked before any
	// authorization rule, so denials are only produced for documents that
	// actually exist. RBAC: admin or viewer; ABAC: same tenant.
	GetByID(ctx context.Context, id string, identity models.CallerIdentity) (*models.Document, error)

	// ListForTenant returns every document in the caller's tenant the
	// caller's roles allow. Never fails for a valid identity; a role-less
	// caller gets an empty list.
	ListForTenant(ctx context.Context, identity models.CallerIdentity) ([]*models.Document, error)

	// ListForUser returns the caller's own documents, or every tenant
	// document for admins. Never fails for a valid identity.
	ListForUser(ctx context.Context, identity models.CallerIdentity) ([]*models.Document, error)
}

// CreateDocumentRequest represents a document creation request.
// TenantID and CreatedBy are accepted on the wire for compatibility but are
// always overwritten from the caller's identity.
type CreateDocumentRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	TenantID  string `json:"tenant_id,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}
