package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

func newTestCache(t *testing.T) (*FeedCache, string) {
	t.Helper()
	dir := t.TempDir()
	cache, err := NewFeedCache(dir)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache, dir
}

func sampleFeed() *domain.RowFeed {
	return &domain.RowFeed{
		Title:   "Expenses",
		Updated: time.Date(2015, 3, 14, 9, 26, 53, 0, time.UTC),
		Rows: []domain.Row{
			{
				Title:   "coffee",
				Columns: []string{"item", "amount"},
				Cells:   map[string]string{"item": "coffee", "amount": "3.50"},
			},
		},
	}
}

func TestFeedCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "od6/1")
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := cache.SetIfAbsent(ctx, "od6/1", sampleFeed())
	require.NoError(t, err)
	assert.True(t, stored)

	feed, ok, err := cache.Get(ctx, "od6/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Expenses", feed.Title)
	require.Len(t, feed.Rows, 1)
	assert.Equal(t, []string{"item", "amount"}, feed.Rows[0].Columns)
	assert.Equal(t, "3.50", feed.Rows[0].Cells["amount"])
}

func TestFeedCache_SetIfAbsentKeepsFirst(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	stored, err := cache.SetIfAbsent(ctx, "od6/1", sampleFeed())
	require.NoError(t, err)
	assert.True(t, stored)

	loser := sampleFeed()
	loser.Title = "loser"
	stored, err = cache.SetIfAbsent(ctx, "od6/1", loser)
	require.NoError(t, err)
	assert.False(t, stored)

	feed, ok, err := cache.Get(ctx, "od6/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Expenses", feed.Title)
}

func TestFeedCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	cache, err := NewFeedCache(dir)
	require.NoError(t, err)
	_, err = cache.SetIfAbsent(ctx, "od6/1", sampleFeed())
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	reopened, err := NewFeedCache(dir)
	require.NoError(t, err)
	defer reopened.Close()

	feed, ok, err := reopened.Get(ctx, "od6/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Expenses", feed.Title)
}
