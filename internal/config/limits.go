package config

const (
	// MaxDocumentTitleLength is the maximum length for document titles.
	// Titles should be short and descriptive.
	MaxDocumentTitleLength = 255

	// MaxDocumentContentLength caps document content at 1MB. The store is
	// memory-resident, so unbounded content is an availability risk.
	MaxDocumentContentLength = 1 << 20
)
