package handler

import (
	"log/slog"
	"net/http"

	"docgate/internal/domain/models"
	"docgate/internal/domain/services"
	"docgate/internal/httputil"
)

// DocumentHandler is the synchronous REST adapter over DocumentService.
type DocumentHandler struct {
	docService services.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService services.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// CreateDocument creates a new document
// POST /api/documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req services.CreateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.docService.Create(r.Context(), &req, identity)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// GetDocument retrieves a document by ID
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	id, ok := documentID(w, r)
	if !ok {
		return
	}

	doc, err := h.docService.GetByID(r.Context(), id, identity)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ListTenantDocuments lists every document in the caller's tenant
// GET /api/documents/tenant
func (h *DocumentHandler) ListTenantDocuments(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	docs, err := h.docService.ListForTenant(r.Context(), identity)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, nonNil(docs))
}

// ListUserDocuments lists the caller's own documents
// GET /api/documents/user
func (h *DocumentHandler) ListUserDocuments(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	docs, err := h.docService.ListForUser(r.Context(), identity)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, nonNil(docs))
}

// HealthCheck reports service liveness
// GET /health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// nonNil keeps empty listings rendering as [] rather than null.
func nonNil(docs []*models.Document) []*models.Document {
	if docs == nil {
		return []*models.Document{}
	}
	return docs
}
