package sheet

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Cache wraps a Source with a per-worksheet TTL cache. The cache is
// process-wide mutable state; operators clear it explicitly when they know
// the sheet has changed.
type Cache struct {
	source Source
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]cacheEntry

	// now is swappable for tests.
	now func() time.Time
}

type cacheEntry struct {
	table     Table
	fetchedAt time.Time
}

// NewCache wraps a source with a TTL cache.
func NewCache(source Source, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		source:  source,
		ttl:     ttl,
		logger:  logger,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Values returns the cached table when fresh, refetching otherwise.
// A fetch failure never poisons the cache; the stale entry stays evicted.
func (c *Cache) Values(ctx context.Context, worksheet string) (Table, error) {
	c.mu.Lock()
	entry, ok := c.entries[worksheet]
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return entry.table, nil
	}
	delete(c.entries, worksheet)
	c.mu.Unlock()

	table, err := c.source.Values(ctx, worksheet)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[worksheet] = cacheEntry{table: table, fetchedAt: c.now()}
	c.mu.Unlock()

	c.logger.Debug("worksheet cached", "worksheet", worksheet, "ttl", c.ttl)
	return table, nil
}

// Invalidate clears every cached worksheet.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.logger.Info("worksheet cache invalidated")
}

// InvalidateSheet clears one cached worksheet.
func (c *Cache) InvalidateSheet(worksheet string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, worksheet)
}
