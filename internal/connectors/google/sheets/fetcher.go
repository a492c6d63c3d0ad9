package sheets

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
	"github.com/ledgerline-labs/sheetfeed/internal/logger"
)

// EventHandler receives one event per successful fetch stage, plus error
// events on failure.
type EventHandler func(domain.Event)

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithEventHandler registers the stage event handler.
func WithEventHandler(h EventHandler) FetcherOption {
	return func(f *Fetcher) { f.handler = h }
}

// Fetcher sequences the dependent feed fetches for one spreadsheet
// configuration: spreadsheet list -> worksheet metadata -> rows in the
// private flow, or a direct public row fetch for published spreadsheets.
//
// The chain is exposed as explicit methods with a single error path.
// A Fetcher is not safe for concurrent use. Sharing a FeedCache between
// fetchers is safe; cache implementations synchronise internally and
// keep the first-writer-wins contract.
type Fetcher struct {
	client *Client
	cache  driven.FeedCache

	cfg          domain.Config
	spreadsheets []domain.Spreadsheet
	sheet        *domain.Sheet
	tab          *domain.Tab
	rows         *domain.RowFeed
	worksheetID  string

	handler   EventHandler
	requestID string
}

// NewFetcher creates a fetcher over the given client and cache.
func NewFetcher(client *Client, cache driven.FeedCache, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client: client,
		cache:  cache,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetEventHandler replaces the stage event handler.
func (f *Fetcher) SetEventHandler(h EventHandler) {
	f.handler = h
}

// Configure validates and records the fetch configuration. A key change
// discards previously resolved state; the next Fetch starts over. No
// network request is issued here: configuration is decoupled from I/O.
func (f *Fetcher) Configure(cfg domain.Config) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Key != f.cfg.Key {
		f.sheet = nil
		f.tab = nil
		f.rows = nil
		f.worksheetID = ""
	}
	f.cfg = cfg
	return nil
}

// Fetch runs the full fetch sequence for the current configuration.
//
// Published spreadsheets fetch their public row feed directly; the feed
// doubles as the tab metadata. The private flow requires a signed-in
// token provider and composes list -> resolve -> worksheet -> rows; it
// stops without error if no listed spreadsheet matches the key. A
// failure at any stage emits an error event and halts the chain.
func (f *Fetcher) Fetch(ctx context.Context) error {
	f.requestID = uuid.NewString()
	if f.cfg.Published {
		if f.cfg.Key == "" {
			return domain.ErrKeyRequired
		}
		return f.fetchPublicRows(ctx)
	}
	return f.fetchPrivate(ctx)
}

func (f *Fetcher) fetchPrivate(ctx context.Context) error {
	if !f.client.tokens.IsAuthenticated() {
		return fmt.Errorf("%w: private feeds are fetched only after sign-in", domain.ErrAuthRequired)
	}

	list, err := f.client.ListSpreadsheets(ctx)
	if err != nil {
		f.fail(domain.StageSpreadsheets, err)
		return err
	}
	f.spreadsheets = list
	f.emit(domain.Event{Stage: domain.StageSpreadsheets, Spreadsheets: list})

	if f.cfg.Key == "" {
		return nil
	}

	// Linear scan of alternate links; the first entry containing the key
	// substring is adopted. No match leaves the sheet unresolved without
	// an error.
	matched := false
	for _, s := range list {
		if s.Matches(f.cfg.Key) {
			f.sheet = sheetFromSpreadsheet(s)
			f.worksheetID = worksheetIDFromFeedID(s.FeedID)
			matched = true
			break
		}
	}
	if !matched {
		logger.Warn("no spreadsheet matches key %q", f.cfg.Key)
		return nil
	}

	tab, err := f.client.Worksheet(ctx, f.worksheetID, f.cfg.TabID)
	if err != nil {
		f.fail(domain.StageTab, err)
		return err
	}
	f.tab = tab
	f.emit(domain.Event{Stage: domain.StageTab, Tab: tab})

	return f.fetchPrivateRows(ctx)
}

// FetchRows runs only the row step for the current configuration.
// Calling it in the private flow before a worksheet id has been resolved
// is a programming error and fails fast with ErrWorksheetUnresolved.
func (f *Fetcher) FetchRows(ctx context.Context) error {
	if f.requestID == "" {
		f.requestID = uuid.NewString()
	}
	if f.cfg.Published {
		if f.cfg.Key == "" {
			return domain.ErrKeyRequired
		}
		return f.fetchPublicRows(ctx)
	}
	if f.worksheetID == "" {
		return fmt.Errorf("%w: fetch rows requested before worksheet resolution", domain.ErrWorksheetUnresolved)
	}
	return f.fetchPrivateRows(ctx)
}

// SetTab changes the worksheet index and re-runs the affected part of
// the sequence: only the row step when a worksheet id is already known,
// the whole public path for published spreadsheets, and nothing at all
// in an unresolved private flow.
func (f *Fetcher) SetTab(ctx context.Context, tabID int) error {
	cfg := f.cfg
	cfg.TabID = tabID
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	f.requestID = uuid.NewString()

	switch {
	case f.worksheetID != "":
		return f.fetchPrivateRows(ctx)
	case f.cfg.Published && f.cfg.Key != "":
		return f.fetchPublicRows(ctx)
	default:
		logger.Debug("tab change to %d recorded; worksheet not resolved yet", tabID)
		return nil
	}
}

func (f *Fetcher) fetchPrivateRows(ctx context.Context) error {
	key := driven.FeedCacheKey(f.worksheetID, f.cfg.TabID)
	if feed, ok := f.cacheGet(ctx, key); ok {
		f.rows = feed
		f.emit(domain.Event{Stage: domain.StageRows, Rows: feed, FromCache: true})
		return nil
	}

	feed, err := f.client.PrivateRows(ctx, f.worksheetID, f.cfg.TabID)
	if err != nil {
		f.fail(domain.StageRows, err)
		return err
	}
	f.cacheSet(ctx, key, feed)
	f.rows = feed
	f.emit(domain.Event{Stage: domain.StageRows, Rows: feed})
	return nil
}

func (f *Fetcher) fetchPublicRows(ctx context.Context) error {
	// Public feeds are addressed by spreadsheet key; the key stands in
	// for the worksheet id in the cache key.
	key := driven.FeedCacheKey(f.cfg.Key, f.cfg.TabID)
	if feed, ok := f.cacheGet(ctx, key); ok {
		f.adoptPublicFeed(feed, true)
		return nil
	}

	feed, err := f.client.PublicRows(ctx, f.cfg.Key, f.cfg.TabID)
	if err != nil {
		f.fail(domain.StageRows, err)
		return err
	}
	f.cacheSet(ctx, key, feed)
	f.adoptPublicFeed(feed, false)
	return nil
}

// adoptPublicFeed publishes a public row feed. Public feeds bundle the
// tab metadata, so the feed is projected as the tab as well.
func (f *Fetcher) adoptPublicFeed(feed *domain.RowFeed, fromCache bool) {
	tab := feed.Tab()
	f.tab = &tab
	f.rows = feed
	f.emit(domain.Event{Stage: domain.StageTab, Tab: &tab})
	f.emit(domain.Event{Stage: domain.StageRows, Rows: feed, FromCache: fromCache})
}

// cacheGet treats a cache error as a miss; the fetch falls through to
// the network.
func (f *Fetcher) cacheGet(ctx context.Context, key string) (*domain.RowFeed, bool) {
	feed, ok, err := f.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache get %s: %v", key, err)
		return nil, false
	}
	return feed, ok
}

// cacheSet inserts first-writer-wins. A response that lost a concurrent
// race is still delivered to its caller, just not cached.
func (f *Fetcher) cacheSet(ctx context.Context, key string, feed *domain.RowFeed) {
	stored, err := f.cache.SetIfAbsent(ctx, key, feed)
	if err != nil {
		logger.Warn("cache set %s: %v", key, err)
		return
	}
	if !stored {
		logger.Debug("cache slot %s already populated; response not cached", key)
	}
}

func (f *Fetcher) emit(ev domain.Event) {
	ev.RequestID = f.requestID
	if f.handler != nil {
		f.handler(ev)
	}
}

func (f *Fetcher) fail(stage domain.Stage, err error) {
	f.emit(domain.Event{Stage: stage, Err: err})
}

// Config returns the current configuration.
func (f *Fetcher) Config() domain.Config { return f.cfg }

// Spreadsheets returns the last fetched spreadsheet list.
func (f *Fetcher) Spreadsheets() []domain.Spreadsheet { return f.spreadsheets }

// Sheet returns the resolved sheet, or nil.
func (f *Fetcher) Sheet() *domain.Sheet { return f.sheet }

// Tab returns the resolved worksheet metadata, or nil.
func (f *Fetcher) Tab() *domain.Tab { return f.tab }

// Rows returns the last fetched row feed, or nil.
func (f *Fetcher) Rows() *domain.RowFeed { return f.rows }

// WorksheetID returns the resolved worksheet id, or "".
func (f *Fetcher) WorksheetID() string { return f.worksheetID }

// EditorURL returns the "open in editor" URL derived from the key. Once
// a worksheet has been resolved the grid id fragment is appended so the
// editor opens on the right tab.
func (f *Fetcher) EditorURL() string {
	url := f.cfg.EditorURL()
	if url == "" || f.worksheetID == "" {
		return url
	}
	gid, err := WorksheetIDToGridID(f.worksheetID)
	if err != nil {
		return url
	}
	return url + "#gid=" + strconv.FormatInt(gid, 10)
}
