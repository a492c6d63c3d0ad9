package driven

import (
	"context"
	"strconv"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

// FeedCache stores fetched row feeds keyed by worksheet+tab. The cache
// is an injected port so tests can isolate it and alternative backing
// stores (memory, sqlite) can be swapped without code changes.
//
// Entries are never evicted or invalidated by the client: once populated,
// an entry is treated as permanently valid for its worksheet+tab pair.
type FeedCache interface {
	// Get returns the cached feed for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (feed *domain.RowFeed, ok bool, err error)

	// SetIfAbsent stores the feed only if the key has no entry yet and
	// reports whether the write happened. First writer wins: a losing
	// concurrent fetch keeps its own response but does not overwrite.
	SetIfAbsent(ctx context.Context, key string, feed *domain.RowFeed) (stored bool, err error)
}

// FeedCacheKey computes the cache key for a worksheet+tab pair. The key
// uniquely identifies the pair; distinct tabs of one worksheet never share
// an entry.
func FeedCacheKey(worksheetID string, tabID int) string {
	return worksheetID + "/" + strconv.Itoa(tabID)
}
