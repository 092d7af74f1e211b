package imagegen

import (
	"sync"
	"time"
)

// CardCache keeps rendered cards in memory for a short period.
type CardCache struct {
	mu       sync.RWMutex
	entries  map[string]cacheEntry
	cacheTTL time.Duration
	now      func() time.Time
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewCardCache creates a cache with the specified TTL.
func NewCardCache(ttl time.Duration) *CardCache {
	return &CardCache{
		entries:  make(map[string]cacheEntry),
		cacheTTL: ttl,
		now:      time.Now,
	}
}

// Get returns the cached card for key if still valid.
func (c *CardCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.data, true
}

// Set stores a card, dropping any expired entries.
func (c *CardCache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{data: data, expiresAt: now.Add(c.cacheTTL)}
}

// Len returns the number of entries, including expired ones not yet dropped.
func (c *CardCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
