// Package memory provides in-memory implementations of the storage
// ports.
package memory

import (
	"context"
	"sync"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
)

// Ensure FeedCache implements the interface.
var _ driven.FeedCache = (*FeedCache)(nil)

// FeedCache is a mutex-guarded in-memory implementation of
// driven.FeedCache. Entries live for the cache's lifetime; there is no
// eviction or invalidation. Callers wanting a process-wide cache share
// one instance across fetchers.
type FeedCache struct {
	mu    sync.RWMutex
	feeds map[string]*domain.RowFeed
}

// NewFeedCache creates an empty in-memory feed cache.
func NewFeedCache() *FeedCache {
	return &FeedCache{
		feeds: make(map[string]*domain.RowFeed),
	}
}

// Get returns the cached feed for key.
func (c *FeedCache) Get(_ context.Context, key string) (*domain.RowFeed, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	feed, ok := c.feeds[key]
	return feed, ok, nil
}

// SetIfAbsent stores the feed only if the slot is still empty. The
// check and insert are atomic under the lock, so concurrent duplicate
// fetches keep the first-writer-wins contract.
func (c *FeedCache) SetIfAbsent(_ context.Context, key string, feed *domain.RowFeed) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.feeds[key]; ok {
		return false, nil
	}
	c.feeds[key] = feed
	return true, nil
}

// Len returns the number of cached entries.
func (c *FeedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.feeds)
}
