// ABOUTME: Poster fetcher: HTTP GET plus decode into an in-memory image
// ABOUTME: Registers jpeg/png/gif/webp decoders; failures are errors, never panics
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	_ "golang.org/x/image/webp"
)

const (
	// DefaultFetchTimeout bounds a single poster download
	DefaultFetchTimeout = 10 * time.Second
	// DefaultMaxBytes caps the response body read for one poster
	DefaultMaxBytes = 5 * 1024 * 1024
	// DefaultUserAgent identifies the client to poster CDNs
	DefaultUserAgent = "postermatch/1.0"
)

// Fetcher downloads poster images and decodes them into in-memory bitmaps.
// A zero-value Fetcher is not usable; construct with NewFetcher.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	userAgent string
}

// FetcherOption customizes a Fetcher
type FetcherOption func(*Fetcher)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMaxBytes caps the response body size
func WithMaxBytes(n int64) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client (used by tests)
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// NewFetcher creates a Fetcher with the given options applied over defaults
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{},
		timeout:   DefaultFetchTimeout,
		maxBytes:  DefaultMaxBytes,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a single GET of url and decodes the body as an image.
// Redirects are followed by the underlying client. Any transport, status, or
// decode problem is returned as an error; callers loading a batch absorb the
// error into a missing cover, callers building the query entry treat it as
// fatal.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	// Read one extra byte past the cap so an oversized body is detected
	// instead of silently decoding a truncated image.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("fetching %s: body exceeds %d bytes", url, f.maxBytes)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}

	return img, nil
}
