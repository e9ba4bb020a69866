package docshelf

import (
	"context"
	"strings"
	"time"
)

// DefaultTopic is the implicit catch-all topic for documents declared without one.
const DefaultTopic = "Uncategorized"

// Document represents a markdown document, either resolved from the static
// registry or authored by a user and kept in the custom store.
type Document struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Topic     string    `json:"topic"`
	Subtopic  string    `json:"subtopic,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
// Whitespace-only values count as empty.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Slug) == "" {
		return Errorf(EINVALID, "document slug required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return Errorf(EINVALID, "document title required")
	}
	if strings.TrimSpace(d.Content) == "" {
		return Errorf(EINVALID, "document content required")
	}
	if strings.TrimSpace(d.Topic) == "" {
		return Errorf(EINVALID, "document topic required")
	}
	return nil
}

// DocumentService represents the public operations consumed by a UI layer.
type DocumentService interface {
	// ListTopics resolves every known document and returns them grouped
	// into the topic/subtopic hierarchy.
	ListTopics(ctx context.Context) ([]*Topic, error)

	// FindDocumentBySlug retrieves a document by slug.
	// Returns ENOTFOUND if neither the custom store nor the registry knows it.
	FindDocumentBySlug(ctx context.Context, slug string) (*Document, error)

	// SaveDocument inserts or replaces a user-authored document.
	// Returns EINVALID if a required field is missing.
	SaveDocument(ctx context.Context, doc *Document) error

	// ListTopicNames returns the distinct topic names, in first-seen order.
	ListTopicNames(ctx context.Context) ([]string, error)
}

// Slugify derives a URL-safe slug from a title.
// Example: "Hello, World!" → hello-world
func Slugify(title string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}
