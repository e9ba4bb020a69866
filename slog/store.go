package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docshelf"
)

// Ensure LoggingCustomStore implements docshelf.CustomStore.
var _ docshelf.CustomStore = (*LoggingCustomStore)(nil)

// LoggingCustomStore wraps a CustomStore with logging.
type LoggingCustomStore struct {
	next   docshelf.CustomStore
	logger *slog.Logger
}

// NewLoggingCustomStore creates a new LoggingCustomStore.
func NewLoggingCustomStore(next docshelf.CustomStore, logger *slog.Logger) *LoggingCustomStore {
	return &LoggingCustomStore{next: next, logger: logger}
}

// List delegates to the wrapped store and logs the operation. Unreadable
// store contents are logged as a warning.
func (s *LoggingCustomStore) List(ctx context.Context) (docs []*docshelf.Document, err error) {
	defer func(begin time.Time) {
		if docshelf.ErrorCode(err) == docshelf.ECORRUPT {
			s.logger.Warn("custom store corrupt",
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("custom store list",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx)
}

// Upsert delegates to the wrapped store and logs the operation.
func (s *LoggingCustomStore) Upsert(ctx context.Context, doc *docshelf.Document) (err error) {
	defer func(begin time.Time) {
		var slug string
		if doc != nil {
			slug = doc.Slug
		}
		s.logger.Info("custom store upsert",
			"slug", slug,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Upsert(ctx, doc)
}
