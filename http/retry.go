package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// StatusError reports a response other than 200 OK.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// RetryDelays returns n exponential backoff delays starting at one second:
// 1s, 2s, 4s, ...
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// WithRetry retries transient failures once per delay, waiting the delay
// before each retry. Transport errors, 429 and 5xx responses are transient;
// other statuses fail immediately.
func WithRetry(delays ...time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

func fetchWithRetry(ctx context.Context, delays []time.Duration, fetch func(context.Context) (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		content, err := fetch(ctx)
		if err == nil {
			return content, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt == len(delays) || !retryable(ctx, err) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}
