package docshelf

import "context"

// CustomStoreKey names the persisted slot holding user-authored documents.
const CustomStoreKey = "docshelf-custom-docs"

// CustomStore persists user-authored documents that overlay the registry.
// There is no delete: documents are only created or replaced.
type CustomStore interface {
	// List returns the stored documents in insertion order. Missing data
	// yields an empty list; unreadable data is reported as ECORRUPT.
	// Callers treat a read error as an empty overlay.
	List(ctx context.Context) ([]*Document, error)

	// Upsert validates doc and replaces the stored document with the same
	// slug, or appends it. Returns EINVALID without writing when a required
	// field is missing.
	Upsert(ctx context.Context, doc *Document) error
}
