package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize limits how much of a page is read
const maxBodySize = 10 * 1024 * 1024

// HTTPFetcher downloads pages and feeds with a per-request timeout
type HTTPFetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// NewHTTPFetcher creates a new fetcher
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// Get retrieves url and returns the body. Closing the body releases the request
// context. Non-200 responses are errors.
func (f *HTTPFetcher) Get(ctx context.Context, url, accept string) (body io.ReadCloser, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer func() {
		if err != nil {
			cancel()
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req, accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, url)
	}

	return &cancelBody{ReadCloser: http.MaxBytesReader(nil, resp.Body, maxBodySize), cancel: cancel}, nil
}

// cancelBody releases the request context when the body is closed
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	defer b.cancel()
	return b.ReadCloser.Close()
}
