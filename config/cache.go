package config

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const defaultMaxEntries = 64

// Cache memoizes Compose results keyed by a content hash of the raw input.
// It is safe for concurrent use. Returned Sites are shared between callers
// and must be treated as read-only. Once full, the oldest entry is evicted.
type Cache struct {
	mu         sync.RWMutex
	entries    map[uint64]Site
	order      []uint64
	maxEntries int
	hits       atomic.Int64
	misses     atomic.Int64
}

type CacheOption func(*Cache)

// WithMaxEntries bounds the number of stored Sites. Values below 1 are
// treated as 1.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		if n < 1 {
			n = 1
		}
		c.maxEntries = n
	}
}

type CacheStats struct {
	Hits        int64
	Misses      int64
	CurrentSize int
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries:    make(map[uint64]Site),
		maxEntries: defaultMaxEntries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose returns the cached Site for raw, composing and storing it on a
// miss. Failed compositions are not stored.
func (c *Cache) Compose(raw SiteConfig) (Site, error) {
	key, err := contentKey(raw)
	if err != nil {
		return Site{}, err
	}

	c.mu.RLock()
	site, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return site, nil
	}
	c.misses.Add(1)

	site, err = Compose(raw)
	if err != nil {
		return Site{}, err
	}

	c.mu.Lock()
	c.store(key, site)
	c.mu.Unlock()
	return site, nil
}

func (c *Cache) store(key uint64, site Site) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = site
		return
	}
	for len(c.order) >= c.maxEntries {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
	c.entries[key] = site
	c.order = append(c.order, key)
}

func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()

	return CacheStats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		CurrentSize: size,
	}
}

// Clear drops every entry. Stats are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]Site)
	c.order = nil
}

func contentKey(raw SiteConfig) (uint64, error) {
	data, err := Marshal(raw)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
