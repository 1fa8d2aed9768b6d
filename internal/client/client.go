package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
)

// Client talks to the extraction backend. It fetches positioned text chunks
// for a document, optionally scoped to a page range. Retry policy belongs to
// the caller; a failed fetch is terminal here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// extractResponse is the body of a successful POST /extract.
type extractResponse struct {
	TextChunks json.RawMessage `json:"text_chunks"`
	TotalPages int             `json:"total_pages"`
}

// Result is a successful extraction response.
type Result struct {
	Chunks     []chunk.TextChunk
	TotalPages int
}

// Fetch requests extracted chunks for pdfURL. startPage and endPage are
// 1-based inclusive; pass 0 for both to extract the whole document.
func (c *Client) Fetch(ctx context.Context, pdfURL string, startPage, endPage int) (*Result, error) {
	q := url.Values{}
	q.Set("pdf_url", pdfURL)
	if startPage > 0 {
		q.Set("start_page", strconv.Itoa(startPage))
	}
	if endPage > 0 {
		q.Set("end_page", strconv.Itoa(endPage))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{URL: pdfURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, &NetworkError{URL: pdfURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{
			StatusCode: resp.StatusCode,
			Message:    truncate(string(respBody), 200),
		}
	}

	var apiResp extractResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, &MalformedResponseError{Reason: "response is not a JSON object: " + err.Error()}
	}
	if len(apiResp.TextChunks) == 0 || string(apiResp.TextChunks) == "null" {
		return nil, &MalformedResponseError{Reason: "missing text_chunks field"}
	}

	var chunks []chunk.TextChunk
	if err := json.Unmarshal(apiResp.TextChunks, &chunks); err != nil {
		return nil, &MalformedResponseError{Reason: "text_chunks is not a chunk array: " + err.Error()}
	}
	for i, ch := range chunks {
		if ch.Page < 1 {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("chunk %d: page %d is not 1-based", i, ch.Page)}
		}
		if !ch.BBox.Valid() {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("chunk %d: inverted bbox %v", i, ch.BBox)}
		}
	}

	return &Result{Chunks: chunks, TotalPages: apiResp.TotalPages}, nil
}

// PDFURL builds the streaming URL the rendering surface loads raw PDF bytes
// from. The core never parses those bytes itself.
func (c *Client) PDFURL(pdfURL string) string {
	return c.baseURL + "/pdf/?pdf_url=" + url.QueryEscape(pdfURL)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
