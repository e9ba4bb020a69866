package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/fs"
	"github.com/fwojciec/docshelf/goldmark"
	dochttp "github.com/fwojciec/docshelf/http"
	"github.com/fwojciec/docshelf/library"
	docslog "github.com/fwojciec/docshelf/slog"
	"github.com/fwojciec/docshelf/sqlite"
	"github.com/fwojciec/docshelf/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when the store path selects SQLite.
	DB *sqlite.DB

	// Fetcher for backing files.
	Fetcher docshelf.Fetcher

	// Library serving all document operations.
	Library *library.Library
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		m.Fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docshelf"),
		kong.Description("Browse, render and extend a documentation library"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_store": defaultStorePath()},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docshelf --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(cli.Verbose, stderr)

	registry, err := loadRegistry(cli.Registry)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSHELF_REGISTRY to a valid YAML manifest or unset it to use the built-in registry\n")
		return err
	}

	fetcher, err := newFetcher(cli)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSHELF_DOCS to a directory or an http(s) URL\n")
		return err
	}
	m.Fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	defer m.Close()

	store, err := m.openStore(cli.Store)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSHELF_STORE to use a different store location\n")
		return err
	}

	m.Library = &library.Library{
		Registry:    registry,
		Fetcher:     m.Fetcher,
		Store:       docslog.NewLoggingCustomStore(store, logger),
		Concurrency: cli.Concurrency,
	}

	// Wire services into dependencies
	deps.Registry = registry
	deps.Documents = docslog.NewLoggingDocumentService(m.Library, logger)
	deps.Resolver = m.Library
	deps.Renderer = goldmark.NewRenderer()
	deps.NewExporter = func(baseDir, name string) docshelf.DocumentExporter {
		return fs.NewExporter(baseDir, name)
	}

	return kongCtx.Run(deps)
}

// openStore opens the custom store at path. Paths ending in .db or .sqlite
// select the SQLite store; anything else is a directory for the JSON slot.
func (m *Main) openStore(path string) (docshelf.CustomStore, error) {
	if !isSQLitePath(path) {
		return fs.NewCustomStore(path), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return sqlite.NewCustomStore(m.DB), nil
}

func isSQLitePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".db" || ext == ".sqlite"
}

// newFetcher returns an HTTP fetcher for http(s) locations and a file
// system fetcher otherwise.
func newFetcher(cli *CLI) (docshelf.Fetcher, error) {
	if strings.HasPrefix(cli.Docs, "http://") || strings.HasPrefix(cli.Docs, "https://") {
		opts := []dochttp.Option{dochttp.WithTimeout(cli.Timeout)}
		if cli.RateLimit > 0 {
			opts = append(opts, dochttp.WithRateLimit(cli.RateLimit))
		}
		if cli.Retries > 0 {
			opts = append(opts, dochttp.WithRetry(dochttp.RetryDelays(cli.Retries)...))
		}
		return dochttp.NewFetcher(cli.Docs, opts...)
	}
	return fs.NewFetcher(cli.Docs), nil
}

func loadRegistry(path string) (docshelf.Registry, error) {
	if path == "" {
		return docshelf.DefaultRegistry(), nil
	}
	return yaml.LoadRegistryFile(path)
}

func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, nil))
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docshelf"
	}
	return filepath.Join(home, ".docshelf")
}
