package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docgate/internal/config"
	"docgate/internal/domain"
	"docgate/internal/domain/models"
	"docgate/internal/domain/repositories"
	"docgate/internal/domain/services"
)

// documentService implements DocumentService by composing identity
// validation, the authorizer and the repository. It holds no state of its
// own and returns typed domain errors; it never logs a denial as a failure,
// retries, or recovers.
type documentService struct {
	repo       repositories.DocumentRepository
	authorizer services.DocumentAuthorizer
	logger     *slog.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	repo repositories.DocumentRepository,
	authorizer services.DocumentAuthorizer,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		repo:       repo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Create stores a new document for an admin caller. TenantID and CreatedBy
// are stamped from the identity, overwriting anything the caller supplied.
func (s *documentService) Create(ctx context.Context, req *services.CreateDocumentRequest, identity models.CallerIdentity) (*models.Document, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	if err := s.authorizer.CanCreate(identity); err != nil {
		return nil, err
	}

	doc := &models.Document{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		TenantID:  identity.TenantID,
		CreatedBy: identity.Username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	s.logger.Debug("document created",
		"document_id", doc.ID,
		"tenant_id", doc.TenantID,
		"created_by", doc.CreatedBy,
	)

	return doc, nil
}

// GetByID fetches a single document. Existence is checked before any
// authorization rule runs, so denial reasons are only produced for
// documents that actually exist.
func (s *documentService) GetByID(ctx context.Context, id string, identity models.CallerIdentity) (*models.Document, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.CanRead(identity, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// ListForTenant returns the documents in the caller's tenant their roles
// allow. A role-less caller gets an empty list, not an error.
func (s *documentService) ListForTenant(ctx context.Context, identity models.CallerIdentity) ([]*models.Document, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	return s.list(ctx, identity, s.authorizer.VisibleInTenantListing)
}

// ListForUser returns the caller's own documents; admins see every document
// in their tenant.
func (s *documentService) ListForUser(ctx context.Context, identity models.CallerIdentity) ([]*models.Document, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	return s.list(ctx, identity, s.authorizer.VisibleInUserListing)
}

func (s *documentService) list(ctx context.Context, identity models.CallerIdentity, visible func(models.CallerIdentity, *models.Document) bool) ([]*models.Document, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	result := make([]*models.Document, 0, len(all))
	for _, doc := range all {
		if visible(identity, doc) {
			result = append(result, doc)
		}
	}

	return result, nil
}

// validateCreateRequest validates a document creation request
func (s *documentService) validateCreateRequest(req *services.CreateDocumentRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxDocumentTitleLength),
		),
		validation.Field(&req.Content,
			validation.Length(0, config.MaxDocumentContentLength),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
