package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/docshelf"
)

// Ensure CustomStore implements docshelf.CustomStore at compile time.
var _ docshelf.CustomStore = (*CustomStore)(nil)

// CustomStore keeps user-authored documents as one JSON array in a single
// file named after docshelf.CustomStoreKey. Every Upsert rewrites the whole
// collection atomically.
type CustomStore struct {
	mu   sync.Mutex
	path string
}

// NewCustomStore creates a CustomStore whose slot lives in dir.
func NewCustomStore(dir string) *CustomStore {
	return &CustomStore{path: filepath.Join(dir, docshelf.CustomStoreKey+".json")}
}

// Path returns the location of the slot file.
func (s *CustomStore) Path() string {
	return s.path
}

// List returns the stored documents. A missing slot yields an empty list.
// A slot that does not hold a JSON document array is reported as ECORRUPT.
func (s *CustomStore) List(ctx context.Context) ([]*docshelf.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Upsert replaces the document with the same slug or appends doc, then
// writes the collection back. Unreadable slot contents are discarded.
func (s *CustomStore) Upsert(ctx context.Context, doc *docshelf.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if docshelf.ErrorCode(err) == docshelf.ECORRUPT {
		docs = nil
	} else if err != nil {
		return err
	}

	replaced := false
	for i, d := range docs {
		if d.Slug == doc.Slug {
			docs[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		docs = append(docs, doc)
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode custom documents: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return writeFileAtomic(s.path, data, 0644)
}

// load reads the slot. Callers must hold s.mu.
func (s *CustomStore) load() ([]*docshelf.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []*docshelf.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read custom documents: %w", err)
	}

	var docs []*docshelf.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, docshelf.Errorf(docshelf.ECORRUPT, "custom documents in %s are unreadable: %v", s.path, err)
	}

	out := docs[:0]
	for _, d := range docs {
		if d != nil {
			out = append(out, d)
		}
	}
	return out, nil
}
