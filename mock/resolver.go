package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of docshelf.Resolver.
type Resolver struct {
	ResolveAllFn func(ctx context.Context) []*docshelf.Resolution
}

func (r *Resolver) ResolveAll(ctx context.Context) []*docshelf.Resolution {
	return r.ResolveAllFn(ctx)
}
