// Package cache holds the in-memory session snapshot: the enriched inventory
// and the dimension lookups it was joined against. Snapshots are immutable
// once published; a refresh builds a complete replacement and swaps it in,
// so readers never observe a partially updated view (last-applied-wins).
package cache

import (
	"sync"
	"time"

	"rvintel-service/internal/enrich"
	"rvintel-service/internal/model"
)

// Snapshot is one consistent view of the warehouse data.
type Snapshot struct {
	Units       []model.EnrichedUnit
	Products    enrich.ProductLookup
	Dealerships enrich.DealershipLookup
	LoadedAt    time.Time
}

// Cache guards the current snapshot.
type Cache struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Set publishes a new snapshot, replacing any previous one.
func (c *Cache) Set(snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
}

// Get returns the current snapshot, or false when none has been loaded yet.
func (c *Cache) Get() (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return nil, false
	}
	return c.snap, true
}
