// Package http provides an HTTP-based implementation of docshelf.Fetcher
// for retrieving backing markdown files served as static assets.
package http

import (
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/docshelf"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docshelf.Fetcher at compile time.
var _ docshelf.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves backing files relative to a base URL, such as
// https://example.com/docs/. Any response other than 200 OK is an error.
type Fetcher struct {
	baseURL *url.URL
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	delays  []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per second with no bursting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithClient sets the HTTP client. The client's timeout is overridden by
// the configured timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher for files under baseURL.
func NewFetcher(baseURL string, opts ...Option) (*Fetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	f := &Fetcher{
		baseURL: u,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := &http.Client{}
	if f.client != nil {
		*client = *f.client
	}
	client.Timeout = f.timeout
	f.client = client

	return f, nil
}

// Fetch retrieves the named file from the base URL. Names are slash
// separated paths below the base and may not escape it. Transient failures
// are retried when retry delays are configured.
func (f *Fetcher) Fetch(ctx context.Context, file string) (string, error) {
	name := strings.TrimPrefix(file, "/")
	if name == "." || !iofs.ValidPath(name) {
		return "", fmt.Errorf("invalid file name %q", file)
	}
	target := f.baseURL.ResolveReference(&url.URL{Path: name})

	return fetchWithRetry(ctx, f.delays, func(ctx context.Context) (string, error) {
		return f.fetch(ctx, target)
	})
}

func (f *Fetcher) fetch(ctx context.Context, target *url.URL) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, URL: target.String()}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
