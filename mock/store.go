package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.CustomStore = (*CustomStore)(nil)

// CustomStore is a mock implementation of docshelf.CustomStore.
type CustomStore struct {
	ListFn   func(ctx context.Context) ([]*docshelf.Document, error)
	UpsertFn func(ctx context.Context, doc *docshelf.Document) error
}

func (s *CustomStore) List(ctx context.Context) ([]*docshelf.Document, error) {
	return s.ListFn(ctx)
}

func (s *CustomStore) Upsert(ctx context.Context, doc *docshelf.Document) error {
	return s.UpsertFn(ctx, doc)
}
