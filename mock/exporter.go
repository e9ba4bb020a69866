package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.DocumentExporter = (*DocumentExporter)(nil)

// DocumentExporter is a mock implementation of docshelf.DocumentExporter.
type DocumentExporter struct {
	SaveFn   func(ctx context.Context, doc *docshelf.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (e *DocumentExporter) Save(ctx context.Context, doc *docshelf.Document) error {
	return e.SaveFn(ctx, doc)
}

func (e *DocumentExporter) Commit() error {
	return e.CommitFn()
}

func (e *DocumentExporter) Abort() error {
	return e.AbortFn()
}
