package sqlite

import (
	"context"

	"github.com/fwojciec/docshelf"
)

// Compile-time interface verification.
var _ docshelf.CustomStore = (*CustomStore)(nil)

// CustomStore implements docshelf.CustomStore using SQLite. Documents are
// keyed by slug; position records insertion order.
type CustomStore struct {
	db *DB
}

// NewCustomStore creates a new CustomStore.
func NewCustomStore(db *DB) *CustomStore {
	return &CustomStore{db: db}
}

// List returns all custom documents in insertion order.
func (s *CustomStore) List(ctx context.Context) ([]*docshelf.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, title, content, topic, subtopic, created_at
		FROM custom_documents
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*docshelf.Document{}
	for rows.Next() {
		var doc docshelf.Document
		var createdAt string

		if err := rows.Scan(&doc.Slug, &doc.Title, &doc.Content, &doc.Topic, &doc.Subtopic, &createdAt); err != nil {
			return nil, err
		}

		doc.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, docshelf.Errorf(docshelf.ECORRUPT, "custom document %q: %v", doc.Slug, err)
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// Upsert inserts doc or replaces the row with the same slug. A replaced
// document keeps its original position.
func (s *CustomStore) Upsert(ctx context.Context, doc *docshelf.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO custom_documents (slug, position, title, content, topic, subtopic, created_at)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM custom_documents), ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			topic = excluded.topic,
			subtopic = excluded.subtopic,
			created_at = excluded.created_at
	`, doc.Slug, doc.Title, doc.Content, doc.Topic, doc.Subtopic, formatRFC3339(doc.CreatedAt))

	return err
}
