package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/sheetfeed/internal/adapters/driven/auth"
	"github.com/ledgerline-labs/sheetfeed/internal/adapters/driven/storage/memory"
	"github.com/ledgerline-labs/sheetfeed/internal/adapters/driven/storage/sqlite"
	"github.com/ledgerline-labs/sheetfeed/internal/connectors/google/sheets"
	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
	"github.com/ledgerline-labs/sheetfeed/internal/logger"
)

// Configuration keys in the TOML store.
const (
	cfgKey          = "key"
	cfgTab          = "tab"
	cfgClientID     = "client_id"
	cfgClientSecret = "client_secret"
	cfgPublished    = "published"
	cfgToken        = "token"
	cfgCacheDir     = "cache_dir"
)

var (
	flagKey       string
	flagTab       int
	flagPublished bool
)

// addFetchFlags registers the per-command fetch configuration flags.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagKey, "key", "", "spreadsheet key (defaults to configured key)")
	cmd.Flags().IntVar(&flagTab, "tab", 0, "worksheet index, 1-based (defaults to configured tab)")
	cmd.Flags().BoolVar(&flagPublished, "published", false, "fetch the public feed of a published spreadsheet")
}

// loadConfig merges flags over the persisted configuration.
func loadConfig(cmd *cobra.Command) domain.Config {
	cfg := domain.Config{
		Key:       flagKey,
		TabID:     flagTab,
		ClientID:  store.GetString(cfgClientID),
		Published: flagPublished,
	}
	if cfg.Key == "" {
		cfg.Key = store.GetString(cfgKey)
	}
	if cfg.TabID == 0 {
		cfg.TabID = store.GetInt(cfgTab)
	}
	if !cmd.Flags().Changed("published") {
		cfg.Published = store.GetBool(cfgPublished)
	}
	return cfg.WithDefaults()
}

// tokenProvider builds the token provider for the current sign-in
// state: a persisted bearer token if one exists, otherwise public-only.
func tokenProvider() driven.TokenProvider {
	if token := store.GetString(cfgToken); token != "" {
		return auth.NewStaticTokenProvider(token)
	}
	return auth.NewNullTokenProvider()
}

// newCache builds the feed cache: SQLite-backed when cache_dir is
// configured, in-memory otherwise. The returned func releases it.
func newCache() (driven.FeedCache, func(), error) {
	if dir := store.GetString(cfgCacheDir); dir != "" {
		c, err := sqlite.NewFeedCache(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open feed cache: %w", err)
		}
		return c, func() { c.Close() }, nil
	}
	return memory.NewFeedCache(), func() {}, nil
}

// newFetcher wires a fetcher for the given command's configuration.
func newFetcher(cmd *cobra.Command) (*sheets.Fetcher, func(), error) {
	cfg := loadConfig(cmd)

	cache, release, err := newCache()
	if err != nil {
		return nil, nil, err
	}

	client := sheets.NewClient(tokenProvider())
	fetcher := sheets.NewFetcher(client, cache, sheets.WithEventHandler(logEvent))
	if err := fetcher.Configure(cfg); err != nil {
		release()
		return nil, nil, err
	}
	return fetcher, release, nil
}

// logEvent traces stage events when --verbose is set.
func logEvent(ev domain.Event) {
	if ev.IsError() {
		logger.Warn("stage %s failed: %v", ev.Stage, ev.Err)
		return
	}
	switch ev.Stage {
	case domain.StageSpreadsheets:
		logger.Info("stage spreadsheets: %d entries", len(ev.Spreadsheets))
	case domain.StageTab:
		logger.Info("stage tab: %q", ev.Tab.Title)
	case domain.StageRows:
		if ev.FromCache {
			logger.Info("stage rows: %d rows (cached)", len(ev.Rows.Rows))
		} else {
			logger.Info("stage rows: %d rows", len(ev.Rows.Rows))
		}
	}
}
