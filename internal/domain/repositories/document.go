package repositories

import (
	"context"

	"docgate/internal/domain/models"
)

// DocumentRepository is the storage seam for documents. Keys are globally
// unique across tenants; tenant isolation is enforced by the service layer's
// filtering, not by partitioning storage.
type DocumentRepository interface {
	// Insert stores a new document. IDs are generated server-side, so a
	// duplicate ID is a programming error: implementations panic rather
	// than return a user-facing error.
	Insert(ctx context.Context, doc *models.Document) error

	// GetByID returns the document with the given ID, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Document, error)

	// All returns a consistent point-in-time snapshot of every document.
	// Order is unspecified.
	All(ctx context.Context) ([]*models.Document, error)
}
