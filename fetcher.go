package docshelf

import "context"

// Fetcher retrieves the raw text of static backing files named by registry
// entries. Any error means the file is unavailable.
type Fetcher interface {
	// Fetch returns the contents of the named file, typically markdown.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, file string) (content string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Resolution is the outcome of resolving a registry entry's content.
// Fallback distinguishes generated placeholder content from fetched content;
// Reason holds the fetch error that caused the fallback.
type Resolution struct {
	Entry    RegistryEntry
	Content  string
	Fallback bool
	Reason   error
	Hash     string
}

// Resolver resolves every registry entry, falling back to placeholder
// content for entries whose files cannot be fetched.
type Resolver interface {
	ResolveAll(ctx context.Context) []*Resolution
}
