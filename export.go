package docshelf

import "context"

// DocumentExporter writes documents to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type DocumentExporter interface {
	Save(ctx context.Context, doc *Document) error
	Commit() error
	Abort() error
}
