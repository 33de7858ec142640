package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"docgate/internal/domain/models"
	"docgate/internal/handler/sse"
	"docgate/internal/repository/memory"
	"docgate/internal/service"
	"docgate/internal/service/authz"
)

func newStreamFixture() (*StreamHandler, *DocumentHandler) {
	svc := service.NewDocumentService(memory.NewDocumentStore(), authz.NewRoleTenantAuthorizer(), testLogger())
	return NewStreamHandler(svc, testLogger(), sse.DefaultConfig()), NewDocumentHandler(svc, testLogger())
}

// events extracts the SSE event names from a recorded stream body.
func events(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "event: ") {
			names = append(names, strings.TrimPrefix(line, "event: "))
		}
	}
	return names
}

func processRequest(id string, identity models.CallerIdentity) *http.Request {
	r := authedRequest(http.MethodGet, "/api/stream/documents/"+id+"/process", "", identity)
	r.SetPathValue("id", id)
	return r
}

func TestProcessDocumentStream(t *testing.T) {
	stream, docs := newStreamFixture()
	created := createDocument(t, docs, identity("T1", "alice", "admin"), "D1")

	w := httptest.NewRecorder()
	stream.ProcessDocument(w, processRequest(created.ID, identity("T1", "bob", "viewer")))

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}

	got := events(w.Body.String())
	want := []string{"processing", "processed"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
	if !strings.Contains(w.Body.String(), `"status":"Processed"`) {
		t.Errorf("processed event missing status, body:\n%s", w.Body.String())
	}
}

func TestProcessDocumentStreamErrors(t *testing.T) {
	stream, docs := newStreamFixture()
	created := createDocument(t, docs, identity("T1", "alice", "admin"), "D1")

	tests := []struct {
		name     string
		id       string
		identity models.CallerIdentity
		wantCode string
	}{
		{"cross tenant", created.ID, identity("T2", "carol", "admin"), codePermissionDenied},
		{"role-less", created.ID, identity("T1", "mallory"), codePermissionDenied},
		{"unused id", uuid.New().String(), identity("T1", "bob", "viewer"), codeNotFound},
		{"malformed id", "not-a-uuid", identity("T1", "bob", "viewer"), codeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			stream.ProcessDocument(w, processRequest(tt.id, tt.identity))

			body := w.Body.String()
			got := events(body)
			if len(got) == 0 || got[len(got)-1] != "error" {
				t.Fatalf("events = %v, want terminal error event; body:\n%s", got, body)
			}
			if !strings.Contains(body, `"code":"`+tt.wantCode+`"`) {
				t.Errorf("error event missing code %s, body:\n%s", tt.wantCode, body)
			}
		})
	}
}

func TestStreamTenantDocuments(t *testing.T) {
	stream, docs := newStreamFixture()
	createDocument(t, docs, identity("T1", "alice", "admin"), "A1")
	createDocument(t, docs, identity("T1", "alice", "admin"), "A2")
	createDocument(t, docs, identity("T2", "carol", "admin"), "B1")

	w := httptest.NewRecorder()
	stream.StreamTenantDocuments(w, authedRequest(http.MethodGet, "/api/stream/documents/tenant", "", identity("T1", "bob", "viewer")))

	got := events(w.Body.String())
	docEvents := 0
	for _, name := range got {
		if name == "document" {
			docEvents++
		}
	}
	if docEvents != 2 {
		t.Errorf("stream emitted %d document events, want 2; events = %v", docEvents, got)
	}
	if len(got) == 0 || got[len(got)-1] != "done" {
		t.Errorf("events = %v, want terminal done event", got)
	}
	if !strings.Contains(w.Body.String(), `"count":2`) {
		t.Errorf("done event missing count, body:\n%s", w.Body.String())
	}
}
