package models

import (
	"time"
)

// Document is a tenant-scoped record. TenantID and CreatedBy are stamped from
// the creator's identity at creation time and are authoritative for the
// document's whole lifetime; no operation alters them afterwards.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TenantID  string    `json:"tenant_id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
