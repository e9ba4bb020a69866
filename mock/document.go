package mock

import (
	"context"

	"github.com/fwojciec/docshelf"
)

var _ docshelf.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docshelf.DocumentService.
type DocumentService struct {
	ListTopicsFn         func(ctx context.Context) ([]*docshelf.Topic, error)
	FindDocumentBySlugFn func(ctx context.Context, slug string) (*docshelf.Document, error)
	SaveDocumentFn       func(ctx context.Context, doc *docshelf.Document) error
	ListTopicNamesFn     func(ctx context.Context) ([]string, error)
}

func (s *DocumentService) ListTopics(ctx context.Context) ([]*docshelf.Topic, error) {
	return s.ListTopicsFn(ctx)
}

func (s *DocumentService) FindDocumentBySlug(ctx context.Context, slug string) (*docshelf.Document, error) {
	return s.FindDocumentBySlugFn(ctx, slug)
}

func (s *DocumentService) SaveDocument(ctx context.Context, doc *docshelf.Document) error {
	return s.SaveDocumentFn(ctx, doc)
}

func (s *DocumentService) ListTopicNames(ctx context.Context) ([]string, error) {
	return s.ListTopicNamesFn(ctx)
}
