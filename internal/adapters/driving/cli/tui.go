package cli

import (
	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/sheetfeed/internal/adapters/driving/tui"
	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse fetched rows in an interactive table",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	addFetchFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	fetcher, release, err := newFetcher(cmd)
	if err != nil {
		return err
	}
	defer release()

	if fetcher.Config().Key == "" {
		return domain.ErrKeyRequired
	}

	return tui.Run(fetcher)
}
