package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

func TestFeedCache_GetMiss(t *testing.T) {
	cache := NewFeedCache()

	feed, ok, err := cache.Get(context.Background(), "od6/1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, feed)
}

func TestFeedCache_SetIfAbsent(t *testing.T) {
	cache := NewFeedCache()
	first := &domain.RowFeed{Title: "first"}
	second := &domain.RowFeed{Title: "second"}

	stored, err := cache.SetIfAbsent(context.Background(), "od6/1", first)
	require.NoError(t, err)
	assert.True(t, stored)

	// The slot is taken; the second writer loses.
	stored, err = cache.SetIfAbsent(context.Background(), "od6/1", second)
	require.NoError(t, err)
	assert.False(t, stored)

	feed, ok, err := cache.Get(context.Background(), "od6/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", feed.Title)

	assert.Equal(t, 1, cache.Len())
}

func TestFeedCache_KeysAreIndependent(t *testing.T) {
	cache := NewFeedCache()

	_, err := cache.SetIfAbsent(context.Background(), "od6/1", &domain.RowFeed{Title: "tab one"})
	require.NoError(t, err)
	_, err = cache.SetIfAbsent(context.Background(), "od6/2", &domain.RowFeed{Title: "tab two"})
	require.NoError(t, err)

	feed, ok, err := cache.Get(context.Background(), "od6/2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tab two", feed.Title)
	assert.Equal(t, 2, cache.Len())
}

func TestFeedCache_ConcurrentFirstWriterWins(t *testing.T) {
	cache := NewFeedCache()

	const writers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			stored, err := cache.SetIfAbsent(context.Background(), "od6/1", &domain.RowFeed{})
			assert.NoError(t, err)
			if stored {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, cache.Len())
}
