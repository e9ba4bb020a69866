package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docshelf"
)

// Ensure LoggingDocumentService implements docshelf.DocumentService.
var _ docshelf.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging.
type LoggingDocumentService struct {
	next   docshelf.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next docshelf.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// ListTopics delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) ListTopics(ctx context.Context) (topics []*docshelf.Topic, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list topics",
			"count", len(topics),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListTopics(ctx)
}

// FindDocumentBySlug delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocumentBySlug(ctx context.Context, slug string) (doc *docshelf.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find document",
			"slug", slug,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocumentBySlug(ctx, slug)
}

// SaveDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) SaveDocument(ctx context.Context, doc *docshelf.Document) (err error) {
	defer func(begin time.Time) {
		var slug string
		if doc != nil {
			slug = doc.Slug
		}
		s.logger.Info("save document",
			"slug", slug,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveDocument(ctx, doc)
}

// ListTopicNames delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) ListTopicNames(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list topic names",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListTopicNames(ctx)
}
