package services

import (
	"docgate/internal/domain/models"
)

// DocumentAuthorizer decides whether a caller may perform an operation on a
// document. Implementations are stateless: they never mutate the identity,
// the document, or any store, and consult nothing but their arguments.
type DocumentAuthorizer interface {
	// CanCreate returns nil if the identity may create documents,
	// domain.ErrNotAdmin otherwise.
	CanCreate(identity models.CallerIdentity) error

	// CanRead returns nil if the identity may read the document.
	// Tenant mismatch is reported before role insufficiency so callers can
	// distinguish "wrong tenant" from "wrong role".
	CanRead(identity models.CallerIdentity, doc *models.Document) error

	// VisibleInTenantListing reports whether the document appears in the
	// identity's tenant-wide listing. A filter, never an error.
	VisibleInTenantListing(identity models.CallerIdentity, doc *models.Document) bool

	// VisibleInUserListing reports whether the document appears in the
	// identity's own-documents listing. A filter, never an error.
	VisibleInUserListing(identity models.CallerIdentity, doc *models.Document) bool
}
