package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export fetched rows to an .xlsx workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	addFetchFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "rows.xlsx", "output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	fetcher, release, err := newFetcher(cmd)
	if err != nil {
		return err
	}
	defer release()

	if fetcher.Config().Key == "" {
		return domain.ErrKeyRequired
	}

	if err := fetcher.Fetch(context.Background()); err != nil {
		return fmt.Errorf("fetch rows: %w", err)
	}

	feed := fetcher.Rows()
	if feed == nil {
		return fmt.Errorf("no spreadsheet matched the configured key")
	}

	if err := writeWorkbook(feed, exportOut); err != nil {
		return err
	}
	cmd.Printf("Wrote %d rows to %s\n", len(feed.Rows), exportOut)
	return nil
}

// writeWorkbook renders a row feed into a single-sheet workbook with a
// header row.
func writeWorkbook(feed *domain.RowFeed, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if feed.Title != "" {
		if err := f.SetSheetName(sheet, feed.Title); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}
	name := f.GetSheetName(0)

	var columns []string
	if len(feed.Rows) > 0 {
		columns = feed.Rows[0].Columns
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(name, cell, col); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for r, row := range feed.Rows {
		for c, col := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(name, cell, row.Cells[col]); err != nil {
				return fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
