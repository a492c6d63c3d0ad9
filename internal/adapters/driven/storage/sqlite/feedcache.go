// Package sqlite provides a persistent FeedCache backed by SQLite, for
// callers that want cached feeds to survive process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
)

// Ensure FeedCache implements the interface.
var _ driven.FeedCache = (*FeedCache)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS feed_cache (
	key        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

// FeedCache is a SQLite-backed implementation of driven.FeedCache.
// Feeds are stored as JSON under their worksheet+tab key. As with the
// in-memory cache there is no eviction; the table only grows.
type FeedCache struct {
	db   *sql.DB
	path string
}

// NewFeedCache opens (or creates) the cache database at the given data
// directory. If dataDir is empty, defaults to ~/.sheetfeed/data.
func NewFeedCache(dataDir string) (*FeedCache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sheetfeed", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "feedcache.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &FeedCache{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (c *FeedCache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *FeedCache) Path() string {
	return c.path
}

// Get returns the cached feed for key.
func (c *FeedCache) Get(ctx context.Context, key string) (*domain.RowFeed, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx,
		`SELECT payload FROM feed_cache WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}

	var feed domain.RowFeed
	if err := json.Unmarshal([]byte(payload), &feed); err != nil {
		return nil, false, fmt.Errorf("decoding cached feed: %w", err)
	}
	return &feed, true, nil
}

// SetIfAbsent stores the feed only if the key has no entry yet.
// INSERT OR IGNORE makes the check-and-insert atomic in the database, so
// the first-writer-wins contract holds across processes too.
func (c *FeedCache) SetIfAbsent(ctx context.Context, key string, feed *domain.RowFeed) (bool, error) {
	payload, err := json.Marshal(feed)
	if err != nil {
		return false, fmt.Errorf("encoding feed: %w", err)
	}

	res, err := c.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO feed_cache (key, payload, created_at) VALUES (?, ?, ?)`,
		key, string(payload), time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("inserting cache entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking insert result: %w", err)
	}
	return n > 0, nil
}
