// Package slog provides logging decorators for docshelf services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docshelf"
)

// Ensure LoggingFetcher implements docshelf.Fetcher.
var _ docshelf.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   docshelf.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docshelf.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, file string) (content string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"file", file,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, file)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
