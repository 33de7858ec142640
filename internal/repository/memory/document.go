// Package memory provides the in-memory document repository. Documents are
// memory-resident and lost on restart; durability is out of scope.
package memory

import (
	"context"
	"fmt"
	"sync"

	"docgate/internal/domain"
	"docgate/internal/domain/models"
	"docgate/internal/domain/repositories"
)

// DocumentStore is a concurrency-safe in-memory implementation of
// DocumentRepository. All access goes through the internal lock; the map is
// never exposed, and documents are copied on the way in and out so no caller
// can observe or cause a torn write.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]models.Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]models.Document),
	}
}

// Insert stores a new document. IDs are generated server-side, so a
// duplicate is a bug in the caller, not a user-facing condition.
func (s *DocumentStore) Insert(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.documents[doc.ID]; exists {
		panic(fmt.Sprintf("memory: duplicate document id %q", doc.ID))
	}
	s.documents[doc.ID] = *doc

	return nil
}

// GetByID returns a copy of the document, or domain.ErrNotFound.
func (s *DocumentStore) GetByID(_ context.Context, id string) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.documents[id]
	if !exists {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return &doc, nil
}

// All returns a point-in-time snapshot of every document, in no particular
// order. The snapshot is taken under the read lock, so concurrent inserts
// are either fully present or fully absent.
func (s *DocumentStore) All(_ context.Context) ([]*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*models.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		d := doc
		snapshot = append(snapshot, &d)
	}

	return snapshot, nil
}

// Len returns the number of stored documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// Ensure DocumentStore implements DocumentRepository.
var _ repositories.DocumentRepository = (*DocumentStore)(nil)
