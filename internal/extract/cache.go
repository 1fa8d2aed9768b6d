package extract

import (
	"sync"
	"time"
)

// resultKey identifies one extraction: document content hash plus the
// requested range as given by the caller (pre-clamping, so a whole-document
// request and an explicit full range are distinct entries).
type resultKey struct {
	hash  string
	start int
	end   int
}

type cacheEntry struct {
	result    *Result
	expiresAt time.Time
}

// resultCache is a thread-safe in-memory extraction cache with TTL eviction.
// Expired entries are pruned opportunistically on access.
type resultCache struct {
	mu      sync.Mutex
	entries map[resultKey]cacheEntry
	ttl     time.Duration
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		entries: make(map[resultKey]cacheEntry),
		ttl:     ttl,
	}
}

func (c *resultCache) get(key resultKey) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked(time.Now())
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.result, true
}

func (c *resultCache) put(key resultKey, res *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: res, expiresAt: time.Now().Add(c.ttl)}
}

func (c *resultCache) pruneLocked(now time.Time) {
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
