package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

var rowsJSON bool

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Fetch row data for a spreadsheet tab",
	Long: `Runs the fetch sequence for the configured spreadsheet and prints
the row feed. Published spreadsheets are fetched directly from the public
feed; private spreadsheets go through list -> worksheet -> rows and need
a prior 'sheetfeed auth'.`,
	Args: cobra.NoArgs,
	RunE: runRows,
}

func init() {
	addFetchFlags(rowsCmd)
	rowsCmd.Flags().BoolVar(&rowsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(rowsCmd)
}

func runRows(cmd *cobra.Command, _ []string) error {
	fetcher, release, err := newFetcher(cmd)
	if err != nil {
		return err
	}
	defer release()

	if fetcher.Config().Key == "" {
		return domain.ErrKeyRequired
	}

	if err := fetcher.Fetch(context.Background()); err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			return fmt.Errorf("%w: run 'sheetfeed auth' first, or pass --published for public spreadsheets", err)
		}
		return fmt.Errorf("fetch rows: %w", err)
	}

	feed := fetcher.Rows()
	if feed == nil {
		cmd.Println("No spreadsheet matched the configured key.")
		return nil
	}

	if rowsJSON {
		data, err := json.MarshalIndent(feed, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal rows: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printRows(cmd, feed)
	return nil
}
