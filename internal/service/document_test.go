package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"docgate/internal/domain"
	"docgate/internal/domain/models"
	"docgate/internal/domain/services"
	"docgate/internal/repository/memory"
	"docgate/internal/service/authz"
)

func newTestService() services.DocumentService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDocumentService(memory.NewDocumentStore(), authz.NewRoleTenantAuthorizer(), logger)
}

func identity(tenant, username string, roles ...string) models.CallerIdentity {
	return models.CallerIdentity{TenantID: tenant, Roles: roles, Username: username}
}

func mustCreate(t *testing.T, svc services.DocumentService, id models.CallerIdentity, title string) *models.Document {
	t.Helper()
	doc, err := svc.Create(context.Background(), &services.CreateDocumentRequest{Title: title, Content: "content of " + title}, id)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", title, err)
	}
	return doc
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		identity models.CallerIdentity
	}{
		{"viewer", identity("tenant-A", "bob", "viewer")},
		{"role-less", identity("tenant-A", "mallory")},
		{"unrecognized role", identity("tenant-B", "eve", "auditor")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &services.CreateDocumentRequest{Title: "D1"}, tt.identity)
			if !errors.Is(err, domain.ErrNotAdmin) {
				t.Errorf("Create() error = %v, want ErrNotAdmin", err)
			}
		})
	}
}

func TestCreateStampsTenantAndCreator(t *testing.T) {
	svc := newTestService()
	alice := identity("T1", "alice", "admin")

	// Caller-supplied tenant and creator must be overwritten.
	doc, err := svc.Create(context.Background(), &services.CreateDocumentRequest{
		Title:     "D1",
		Content:   "body",
		TenantID:  "spoofed-tenant",
		CreatedBy: "spoofed-user",
	}, alice)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if doc.TenantID != "T1" {
		t.Errorf("TenantID = %q, want %q", doc.TenantID, "T1")
	}
	if doc.CreatedBy != "alice" {
		t.Errorf("CreatedBy = %q, want %q", doc.CreatedBy, "alice")
	}
	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", doc.ID, err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	alice := identity("T1", "alice", "admin")

	_, err := svc.Create(context.Background(), &services.CreateDocumentRequest{Title: ""}, alice)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create() with empty title error = %v, want ErrValidation", err)
	}
}

func TestGetByIDRoundTrip(t *testing.T) {
	svc := newTestService()
	alice := identity("T1", "alice", "admin")

	created := mustCreate(t, svc, alice, "D1")

	got, err := svc.GetByID(context.Background(), created.ID, alice)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != created.Title || got.Content != created.Content ||
		got.TenantID != created.TenantID || got.CreatedBy != created.CreatedBy {
		t.Errorf("GetByID() = %+v, want %+v", got, created)
	}
}

// Mirrors the alice/bob/carol scenario: the creator's tenant-mate viewer can
// read the document, a foreign-tenant admin is denied for the tenant.
func TestGetByIDAcrossIdentities(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	alice := identity("T1", "alice", "admin")
	bob := identity("T1", "bob", "viewer")
	carol := identity("T2", "carol", "admin")

	created := mustCreate(t, svc, alice, "D1")

	got, err := svc.GetByID(ctx, created.ID, bob)
	if err != nil {
		t.Fatalf("GetByID() as viewer error = %v", err)
	}
	if got.Title != "D1" {
		t.Errorf("Title = %q, want %q", got.Title, "D1")
	}

	_, err = svc.GetByID(ctx, created.ID, carol)
	if !errors.Is(err, domain.ErrTenantMismatch) {
		t.Errorf("GetByID() cross-tenant error = %v, want ErrTenantMismatch", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("cross-tenant read reported as not found")
	}
}

func TestGetByIDNotFoundBeforeAuthorization(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetByID(context.Background(), uuid.New().String(), identity("T1", "mallory"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID() on unused id error = %v, want ErrNotFound", err)
	}
}

func TestGetByIDInsufficientRole(t *testing.T) {
	svc := newTestService()
	alice := identity("T1", "alice", "admin")
	created := mustCreate(t, svc, alice, "D1")

	_, err := svc.GetByID(context.Background(), created.ID, identity("T1", "mallory"))
	if !errors.Is(err, domain.ErrInsufficientRole) {
		t.Errorf("GetByID() role-less error = %v, want ErrInsufficientRole", err)
	}
}

func TestListForTenantIsolation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	adminA := identity("tenant-A", "adminA", "admin")
	adminB := identity("tenant-B", "adminB", "admin")

	wantA := map[string]bool{}
	for _, title := range []string{"A1", "A2", "A3"} {
		wantA[mustCreate(t, svc, adminA, title).ID] = true
	}
	mustCreate(t, svc, adminB, "B1")
	mustCreate(t, svc, adminB, "B2")

	viewerA := identity("tenant-A", "viewerA", "viewer")
	docs, err := svc.ListForTenant(ctx, viewerA)
	if err != nil {
		t.Fatalf("ListForTenant() error = %v", err)
	}
	if len(docs) != len(wantA) {
		t.Fatalf("ListForTenant() returned %d documents, want %d", len(docs), len(wantA))
	}
	for _, doc := range docs {
		if !wantA[doc.ID] {
			t.Errorf("ListForTenant() leaked document %s from another tenant", doc.ID)
		}
	}
}

func TestListForTenantRoleLessGetsEmpty(t *testing.T) {
	svc := newTestService()
	mustCreate(t, svc, identity("tenant-A", "adminA", "admin"), "A1")

	docs, err := svc.ListForTenant(context.Background(), identity("tenant-A", "mallory"))
	if err != nil {
		t.Fatalf("ListForTenant() error = %v, want empty list", err)
	}
	if len(docs) != 0 {
		t.Errorf("ListForTenant() returned %d documents for role-less caller, want 0", len(docs))
	}
}

func TestListForUserSelfVisibility(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Both bob and dana hold admin so they can create; bob's user listing
	// is then checked through a viewer identity carrying his username.
	bobAdmin := identity("tenant-A", "bob", "admin")
	danaAdmin := identity("tenant-A", "dana", "admin")

	docX := mustCreate(t, svc, bobAdmin, "X")
	docY := mustCreate(t, svc, danaAdmin, "Y")

	bobViewer := identity("tenant-A", "bob", "viewer")
	docs, err := svc.ListForUser(ctx, bobViewer)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(docs) != 1 || docs[0].ID != docX.ID {
		t.Errorf("ListForUser() as bob = %v, want exactly [%s]", docIDs(docs), docX.ID)
	}

	admin := identity("tenant-A", "root", "admin")
	docs, err = svc.ListForUser(ctx, admin)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("ListForUser() as admin returned %d documents, want 2 (%s, %s)", len(docs), docX.ID, docY.ID)
	}
}

func TestInvalidIdentityRejectedBeforeRules(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	noTenant := models.CallerIdentity{Roles: []string{"admin"}, Username: "alice"}
	noSubject := models.CallerIdentity{TenantID: "T1", Roles: []string{"admin"}}

	for name, id := range map[string]models.CallerIdentity{"missing tenant": noTenant, "missing subject": noSubject} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Create(ctx, &services.CreateDocumentRequest{Title: "D"}, id); !errors.Is(err, domain.ErrInvalidIdentity) {
				t.Errorf("Create() error = %v, want ErrInvalidIdentity", err)
			}
			if _, err := svc.GetByID(ctx, uuid.New().String(), id); !errors.Is(err, domain.ErrInvalidIdentity) {
				t.Errorf("GetByID() error = %v, want ErrInvalidIdentity", err)
			}
			if _, err := svc.ListForTenant(ctx, id); !errors.Is(err, domain.ErrInvalidIdentity) {
				t.Errorf("ListForTenant() error = %v, want ErrInvalidIdentity", err)
			}
			if _, err := svc.ListForUser(ctx, id); !errors.Is(err, domain.ErrInvalidIdentity) {
				t.Errorf("ListForUser() error = %v, want ErrInvalidIdentity", err)
			}
		})
	}
}

func docIDs(docs []*models.Document) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}
