package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Show resolved sheet and worksheet metadata",
	Args:  cobra.NoArgs,
	RunE:  runSheet,
}

func init() {
	addFetchFlags(sheetCmd)
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(cmd *cobra.Command, _ []string) error {
	fetcher, release, err := newFetcher(cmd)
	if err != nil {
		return err
	}
	defer release()

	if err := fetcher.Fetch(context.Background()); err != nil {
		return fmt.Errorf("fetch sheet: %w", err)
	}

	if sheet := fetcher.Sheet(); sheet != nil {
		cmd.Println(styled(headerStyle, "Sheet"))
		cmd.Printf("  Title:   %s\n", sheet.Title)
		if !sheet.Updated.IsZero() {
			cmd.Printf("  Updated: %s\n", sheet.Updated.Format("2006-01-02 15:04:05"))
		}
		if len(sheet.Authors) > 0 {
			cmd.Printf("  Authors: %s\n", authorNames(sheet.Authors))
		}
		cmd.Printf("  Worksheet id: %s\n", fetcher.WorksheetID())
	}

	if tab := fetcher.Tab(); tab != nil {
		cmd.Println(styled(headerStyle, "Tab"))
		cmd.Printf("  Title:   %s\n", tab.Title)
		if !tab.Updated.IsZero() {
			cmd.Printf("  Updated: %s\n", tab.Updated.Format("2006-01-02 15:04:05"))
		}
	}

	if url := fetcher.EditorURL(); url != "" {
		cmd.Printf("Open in editor: %s\n", url)
	}

	if fetcher.Sheet() == nil && fetcher.Tab() == nil {
		cmd.Println("Nothing resolved; check the key and sign-in state.")
	}
	return nil
}
