package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Downloader fetches the source PDF from a user-supplied URL, with a size
// cap so a hostile locator cannot exhaust memory.
type Downloader struct {
	httpClient *http.Client
	maxBytes   int64
}

func NewDownloader(timeout time.Duration, maxBytes int64) *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxBytes,
	}
}

// Fetch downloads the document at url. Any transport failure or non-2xx
// status is an error; the caller maps it to a client-facing 400.
func (d *Downloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download pdf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download pdf: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read pdf body: %w", err)
	}
	if int64(len(data)) > d.maxBytes {
		return nil, fmt.Errorf("pdf exceeds max size (%d bytes)", d.maxBytes)
	}
	return data, nil
}

// Close releases idle connections.
func (d *Downloader) Close() {
	d.httpClient.CloseIdleConnections()
}
