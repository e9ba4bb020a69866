// Package library provides document resolution orchestration.
// It coordinates the static registry, the content fetcher, the custom
// store and a session cache behind docshelf.DocumentService.
package library

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docshelf"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var (
	_ docshelf.DocumentService = (*Library)(nil)
	_ docshelf.Resolver        = (*Library)(nil)
)

// Library resolves documents from a registry and a custom store.
//
// Custom documents shadow registry documents with the same slug, both for
// single lookups and for listings. Resolved documents are cached for the
// lifetime of the Library; ListTopics and Reset clear the cache.
type Library struct {
	Registry docshelf.Registry
	Fetcher  docshelf.Fetcher
	Store    docshelf.CustomStore

	// Concurrency caps simultaneous fetches during ListTopics.
	// Zero or negative means no cap.
	Concurrency int

	// Now returns the timestamp stamped on resolved and saved documents.
	// Defaults to time.Now.
	Now func() time.Time

	mu    sync.RWMutex
	cache map[string]*docshelf.Document
}

// Resolve fetches the content backing entry. It never fails: when the fetch
// errors, the result carries placeholder content with Fallback set.
func (l *Library) Resolve(ctx context.Context, entry docshelf.RegistryEntry) *docshelf.Resolution {
	res := &docshelf.Resolution{Entry: entry}

	var content string
	var err error
	if l.Fetcher == nil {
		err = fmt.Errorf("no fetcher configured")
	} else {
		content, err = l.Fetcher.Fetch(ctx, entry.File)
	}

	if err != nil {
		res.Fallback = true
		res.Reason = err
		res.Content = docshelf.Placeholder(entry.Title, topicOf(entry), entry.Subtopic)
	} else {
		res.Content = content
	}
	res.Hash = computeHash(res.Content)

	return res
}

// ResolveAll resolves every registry entry concurrently. Results are
// returned in registry order.
func (l *Library) ResolveAll(ctx context.Context) []*docshelf.Resolution {
	results := make([]*docshelf.Resolution, len(l.Registry))

	var g errgroup.Group
	if l.Concurrency > 0 {
		g.SetLimit(l.Concurrency)
	}
	for i, entry := range l.Registry {
		g.Go(func() error {
			results[i] = l.Resolve(ctx, entry)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// FindDocumentBySlug returns the cached document, the custom document, or
// the resolved registry document for slug, in that order.
func (l *Library) FindDocumentBySlug(ctx context.Context, slug string) (*docshelf.Document, error) {
	if doc, ok := l.cached(slug); ok {
		return doc, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, doc := range l.customDocuments(ctx) {
		if doc.Slug == slug {
			return l.install(doc), nil
		}
	}

	entry, ok := l.Registry.FindEntry(slug)
	if !ok {
		return nil, docshelf.Errorf(docshelf.ENOTFOUND, "document %q not found", slug)
	}

	doc := l.document(l.Resolve(ctx, entry))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.install(doc), nil
}

// ListTopics clears the cache, resolves every registry entry, merges the
// custom documents and returns them grouped by topic and subtopic.
func (l *Library) ListTopics(ctx context.Context) ([]*docshelf.Topic, error) {
	l.Reset()

	resolutions := l.ResolveAll(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	custom := l.customDocuments(ctx)

	shadowed := make(map[string]bool, len(custom))
	for _, doc := range custom {
		shadowed[doc.Slug] = true
	}

	// A slug is listed once: custom documents win over the registry, and the
	// first occurrence wins within each source.
	listed := make(map[string]bool, len(resolutions)+len(custom))
	docs := make([]*docshelf.Document, 0, len(resolutions)+len(custom))
	for _, res := range resolutions {
		slug := res.Entry.Slug
		if shadowed[slug] || listed[slug] {
			continue
		}
		listed[slug] = true
		docs = append(docs, l.install(l.document(res)))
	}
	for _, doc := range custom {
		if listed[doc.Slug] {
			continue
		}
		listed[doc.Slug] = true
		docs = append(docs, l.install(doc))
	}

	return docshelf.BuildTopics(docs), nil
}

// SaveDocument validates doc and upserts it into the custom store. CreatedAt
// is stamped when zero. The saved document replaces any cached copy.
func (l *Library) SaveDocument(ctx context.Context, doc *docshelf.Document) error {
	if doc == nil {
		return docshelf.Errorf(docshelf.EINVALID, "document required")
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	if l.Store == nil {
		return docshelf.Errorf(docshelf.EINTERNAL, "no custom store configured")
	}

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = l.now()
	}

	saved := *doc
	if err := l.Store.Upsert(ctx, &saved); err != nil {
		return err
	}

	l.mu.Lock()
	l.cacheLocked()[saved.Slug] = &saved
	l.mu.Unlock()

	return nil
}

// ListTopicNames returns registry topics followed by custom store topics,
// without duplicates.
func (l *Library) ListTopicNames(ctx context.Context) ([]string, error) {
	names := l.Registry.Topics()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, doc := range l.customDocuments(ctx) {
		if doc.Topic == "" || seen[doc.Topic] {
			continue
		}
		seen[doc.Topic] = true
		names = append(names, doc.Topic)
	}
	return names, nil
}

// Reset clears the document cache.
func (l *Library) Reset() {
	l.mu.Lock()
	l.cache = nil
	l.mu.Unlock()
}

// customDocuments reads the custom store. Read failures degrade to an empty
// overlay so lookups never fail because of the store.
func (l *Library) customDocuments(ctx context.Context) []*docshelf.Document {
	if l.Store == nil {
		return nil
	}
	docs, err := l.Store.List(ctx)
	if err != nil {
		return nil
	}
	return docs
}

// document builds the Document for a resolution.
func (l *Library) document(res *docshelf.Resolution) *docshelf.Document {
	return &docshelf.Document{
		Slug:      res.Entry.Slug,
		Title:     res.Entry.Title,
		Content:   res.Content,
		Topic:     topicOf(res.Entry),
		Subtopic:  res.Entry.Subtopic,
		CreatedAt: l.now(),
	}
}

// install caches doc unless a document with the same slug is already cached,
// and returns the cached document.
func (l *Library) install(doc *docshelf.Document) *docshelf.Document {
	l.mu.Lock()
	defer l.mu.Unlock()

	cache := l.cacheLocked()
	if existing, ok := cache[doc.Slug]; ok {
		return existing
	}
	cache[doc.Slug] = doc
	return doc
}

func (l *Library) cached(slug string) (*docshelf.Document, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	doc, ok := l.cache[slug]
	return doc, ok
}

func (l *Library) cacheLocked() map[string]*docshelf.Document {
	if l.cache == nil {
		l.cache = make(map[string]*docshelf.Document)
	}
	return l.cache
}

func (l *Library) now() time.Time {
	if l.Now != nil {
		return l.Now().UTC()
	}
	return time.Now().UTC()
}

func topicOf(entry docshelf.RegistryEntry) string {
	if entry.Topic == "" {
		return docshelf.DefaultTopic
	}
	return entry.Topic
}

func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
