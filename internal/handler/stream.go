package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"docgate/internal/domain/models"
	"docgate/internal/domain/services"
	"docgate/internal/handler/sse"
	"docgate/internal/httputil"
)

// StreamHandler is the asynchronous streaming adapter over DocumentService.
// It reaches the same service as the REST adapter; only the identity shape
// (query-parameter token) and the failure signaling (RPC-style status codes
// in terminal error events) differ.
type StreamHandler struct {
	docService services.DocumentService
	logger     *slog.Logger
	config     *sse.Config
}

// NewStreamHandler creates a new streaming handler
func NewStreamHandler(docService services.DocumentService, logger *slog.Logger, config *sse.Config) *StreamHandler {
	return &StreamHandler{
		docService: docService,
		logger:     logger,
		config:     config,
	}
}

// processEvent is the payload of processing/processed events.
type processEvent struct {
	DocumentID string `json:"document_id"`
	Status     string `json:"status,omitempty"`
}

// errorEvent is the payload of terminal error events. Code carries the
// RPC-style status name so no failure distinction is lost on this binding.
type errorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProcessDocument streams the processing of a single document
// GET /api/stream/documents/{id}/process
//
// Emits "processing", then either "processed" or a terminal "error" event.
// The stream is established before any validation so every failure is
// reported in-band, the way an RPC binding reports status codes.
func (h *StreamHandler) ProcessDocument(w http.ResponseWriter, r *http.Request) {
	writer, ok := sse.NewWriter(w)
	if !ok {
		httputil.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		h.logger.Warn("invalid document ID on stream", "document_id", id)
		writer.WriteEvent("error", errorEvent{Code: codeInvalidArgument, Message: "invalid document ID format"})
		return
	}

	identity, ok := httputil.GetIdentity(r)
	if !ok {
		writer.WriteEvent("error", errorEvent{Code: codeUnauthenticated, Message: "missing caller identity"})
		return
	}

	if err := writer.WriteEvent("processing", processEvent{DocumentID: id}); err != nil {
		return
	}

	// The lookup runs concurrently so the stream can keep the connection
	// alive and observe client disconnects while it is in flight.
	type result struct {
		doc *models.Document
		err error
	}
	resCh := make(chan result, 1)
	go func() {
		doc, err := h.docService.GetByID(r.Context(), id, identity)
		resCh <- result{doc: doc, err: err}
	}()

	ticker := time.NewTicker(h.config.KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Debug("stream client disconnected", "document_id", id)
			return
		case <-ticker.C:
			if err := writer.WriteKeepAlive(); err != nil {
				return
			}
		case res := <-resCh:
			if res.err != nil {
				writer.WriteEvent("error", errorEvent{Code: streamCode(res.err), Message: res.err.Error()})
				return
			}
			writer.WriteEvent("processed", processEvent{DocumentID: res.doc.ID, Status: "Processed"})
			return
		}
	}
}

// StreamTenantDocuments streams the caller's tenant listing one document per
// event, then a terminal "done" event with the count
// GET /api/stream/documents/tenant
func (h *StreamHandler) StreamTenantDocuments(w http.ResponseWriter, r *http.Request) {
	writer, ok := sse.NewWriter(w)
	if !ok {
		httputil.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	identity, ok := httputil.GetIdentity(r)
	if !ok {
		writer.WriteEvent("error", errorEvent{Code: codeUnauthenticated, Message: "missing caller identity"})
		return
	}

	docs, err := h.docService.ListForTenant(r.Context(), identity)
	if err != nil {
		writer.WriteEvent("error", errorEvent{Code: streamCode(err), Message: err.Error()})
		return
	}

	for _, doc := range docs {
		if r.Context().Err() != nil {
			return
		}
		if err := writer.WriteEvent("document", doc); err != nil {
			return
		}
	}

	writer.WriteEvent("done", map[string]int{"count": len(docs)})
}
