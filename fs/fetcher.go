// Package fs provides file-based storage for documentation: a fetcher for
// backing files in a local directory, the JSON custom document store, and
// an exporter writing documents as markdown files.
package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"strings"

	"github.com/fwojciec/docshelf"
)

// Ensure Fetcher implements docshelf.Fetcher at compile time.
var _ docshelf.Fetcher = (*Fetcher)(nil)

// Fetcher reads backing files from a file system root.
type Fetcher struct {
	fsys iofs.FS
}

// NewFetcher creates a Fetcher reading files under dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{fsys: os.DirFS(dir)}
}

// NewFSFetcher creates a Fetcher over an arbitrary file system, such as an
// embed.FS or fstest.MapFS.
func NewFSFetcher(fsys iofs.FS) *Fetcher {
	return &Fetcher{fsys: fsys}
}

// Fetch reads the named file. Names may not escape the root.
func (f *Fetcher) Fetch(ctx context.Context, file string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := strings.TrimPrefix(file, "/")
	if !iofs.ValidPath(name) {
		return "", fmt.Errorf("invalid file name %q", file)
	}

	data, err := iofs.ReadFile(f.fsys, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
