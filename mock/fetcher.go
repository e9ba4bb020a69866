package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docshelf.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, file string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, file string) (string, error) {
	return f.FetchFn(ctx, file)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
