package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// Fetcher retrieves pages and archives over HTTP. A single Fetcher holds
// one http.Client so connection pooling works across requests, which
// matters for the check command's site sweep.
type Fetcher struct {
	// client performs the requests. Replaceable for tests.
	client *http.Client

	// userAgent is sent with every request.
	userAgent string

	// headers are extra request headers, e.g. from a site preset.
	headers map[string]string

	// maxBodySize caps how many bytes of a page are read. It does not
	// apply to Download, which streams archives of arbitrary size.
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHeaders sets extra request headers sent with every request.
func WithHeaders(h map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = h
	}
}

// WithMaxBodySize caps the number of page bytes read. Zero keeps the
// current limit.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBodySize = n
		}
	}
}

// WithClient replaces the underlying HTTP client. Options that touch the
// client, like WithTimeout, should come after it.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a Fetcher with a 30 second timeout, a 5MB page cap,
// and a generic User-Agent unless options say otherwise.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: 30 * time.Second},
		userAgent:   "rtresolve (+https://github.com/beamtools/rtresolve)",
		maxBodySize: 5 * 1024 * 1024,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves rawURL and returns the page body as UTF-8 text. The body
// is decoded according to the response charset, so pages served in legacy
// encodings still match ASCII keywords after normalization. Reading stops
// at the configured max body size.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	resp, err := f.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	limited := io.LimitReader(resp.Body, f.maxBodySize)
	decoded, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("fetch %s: determine charset: %w", rawURL, err)
	}
	body, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}

	slog.Debug("fetched page", "url", rawURL, "bytes", len(body))
	return string(body), nil
}

// Download streams the body of rawURL to w and returns the number of bytes
// written. Unlike Fetch it imposes no size cap and performs no charset
// decoding: archives are opaque bytes.
func (f *Fetcher) Download(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	resp, err := f.get(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download %s: unexpected status %s", rawURL, resp.Status)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("download %s: %w", rawURL, err)
	}
	slog.Debug("downloaded archive", "url", rawURL, "bytes", n)
	return n, nil
}

// get issues a GET request with the configured headers.
func (f *Fetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	return resp, nil
}
