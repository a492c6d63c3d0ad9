package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/sheetfeed/internal/adapters/driven/config/file"
	"github.com/ledgerline-labs/sheetfeed/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Fetch rows and re-fetch whenever the config file changes",
	Long: `Runs the fetch sequence once, then watches the configuration file
and re-runs the sequence on every change. Interrupt to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addFetchFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, release, err := newFetcher(cmd)
	if err != nil {
		return err
	}
	defer release()

	fetchOnce := func() {
		if err := fetcher.Fetch(ctx); err != nil {
			logger.Warn("fetch: %v", err)
			cmd.PrintErrf("fetch: %v\n", err)
			return
		}
		if feed := fetcher.Rows(); feed != nil {
			printRows(cmd, feed)
		}
	}

	fetchOnce()

	watcher, err := file.NewWatcher(store.Path(), func() {
		if err := store.Load(); err != nil {
			logger.Warn("reload config: %v", err)
			return
		}
		cfg := loadConfig(cmd)
		if err := fetcher.Configure(cfg); err != nil {
			logger.Warn("reconfigure: %v", err)
			return
		}
		fetchOnce()
	})
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer watcher.Close()

	cmd.Printf("Watching %s; interrupt to stop.\n", store.Path())
	if err := watcher.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
