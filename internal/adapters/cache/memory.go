package cache

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/core/ports/external"
)

type memoryEntry struct {
	table     domain.ConversionTable
	expiresAt time.Time
}

// MemoryCache is a process-wide RateCache guarded by a RWMutex.
// Expired entries are evicted lazily on read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// Ensure implementation matches interface
var _ external.RateCache = (*MemoryCache)(nil)

// NewMemoryCache creates a MemoryCache. A nil clock means time.Now.
func NewMemoryCache(clock func() time.Time) *MemoryCache {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     clock,
	}
}

// Get returns a copy of the stored table while it is fresh.
func (c *MemoryCache) Get(_ context.Context, key string) (domain.ConversionTable, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		// Another writer may have refreshed the key in between.
		if current, still := c.entries[key]; still && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return append(domain.ConversionTable{}, entry.table...), true, nil
}

// Set stores a copy of table; the last writer wins.
func (c *MemoryCache) Set(_ context.Context, key string, table domain.ConversionTable, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		table:     append(domain.ConversionTable{}, table...),
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}
