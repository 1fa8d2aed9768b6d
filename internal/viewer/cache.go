package viewer

import (
	"context"
	"sync"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/chunk"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/client"
)

// Fetcher retrieves extracted chunks for one page window of a document.
// *client.Client satisfies this.
type Fetcher interface {
	Fetch(ctx context.Context, pdfURL string, startPage, endPage int) (*client.Result, error)
}

// WindowKey identifies one exact fetch window. Compared by value, so two
// requests hit the same entry only when document and bounds all coincide —
// a request for [1,10] does not hit a cached [1,20].
type WindowKey struct {
	DocID string
	Start int
	End   int
}

// Snapshot is the immutable result of one fetch window.
type Snapshot struct {
	Chunks     []chunk.TextChunk
	TotalPages int
}

// RangeCache memoizes fetch results per exact window key. Entries, once
// populated, are never mutated; a hit returns the same snapshot for the
// lifetime of the session. Failures are not cached, so a later call with the
// same key goes back to the network.
//
// The cache is owned by its session and passed where needed; there is no
// package-level instance.
type RangeCache struct {
	mu      sync.Mutex
	entries map[WindowKey]Snapshot
	fetcher Fetcher
}

func NewRangeCache(f Fetcher) *RangeCache {
	return &RangeCache{
		entries: make(map[WindowKey]Snapshot),
		fetcher: f,
	}
}

// GetOrFetch returns the cached snapshot for key, invoking the fetcher on a
// miss and storing the result before returning it. Two concurrent misses on
// the same key both fetch; the writes are idempotent (same key, same expected
// content), so the duplicate call is wasted work, not corruption.
func (c *RangeCache) GetOrFetch(ctx context.Context, key WindowKey) (Snapshot, error) {
	c.mu.Lock()
	if snap, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return snap, nil
	}
	c.mu.Unlock()

	res, err := c.fetcher.Fetch(ctx, key.DocID, key.Start, key.End)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Chunks: res.Chunks, TotalPages: res.TotalPages}
	c.mu.Lock()
	c.entries[key] = snap
	c.mu.Unlock()
	return snap, nil
}

// Len returns the number of cached windows.
func (c *RangeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
