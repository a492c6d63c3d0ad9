package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the signed-in user's spreadsheets",
	Long: `Fetches the authenticated spreadsheet list feed.
Requires a prior 'sheetfeed auth'.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	fetcher, release, err := newFetcher(cmd)
	if err != nil {
		return err
	}
	defer release()

	// List mode: ignore any configured key so the sequence stops after
	// the spreadsheet list stage.
	cfg := fetcher.Config()
	cfg.Key = ""
	cfg.Published = false
	if err := fetcher.Configure(cfg); err != nil {
		return err
	}

	if err := fetcher.Fetch(context.Background()); err != nil {
		return fmt.Errorf("list spreadsheets: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(fetcher.Spreadsheets(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal spreadsheets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printSpreadsheets(cmd, fetcher.Spreadsheets())
	return nil
}
