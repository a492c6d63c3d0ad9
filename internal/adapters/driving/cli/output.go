package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ledgerline-labs/sheetfeed/internal/core/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// isTTY reports whether stdout is a terminal; styling is skipped when
// output is piped.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func styled(style lipgloss.Style, s string) string {
	if !isTTY() {
		return s
	}
	return style.Render(s)
}

// printSpreadsheets renders the spreadsheet list as a fixed-width table.
func printSpreadsheets(cmd *cobra.Command, list []domain.Spreadsheet) {
	if len(list) == 0 {
		cmd.Println("No spreadsheets found.")
		return
	}

	cmd.Println(styled(headerStyle, fmt.Sprintf("%-40s %-20s %s", "TITLE", "UPDATED", "AUTHORS")))
	for _, s := range list {
		updated := ""
		if !s.Updated.IsZero() {
			updated = s.Updated.Format("2006-01-02 15:04")
		}
		cmd.Printf("%-40s %-20s %s\n", truncate(s.Title, 40), updated, authorNames(s.Authors))
	}
}

// printRows renders a row feed with one column per sheet column, using
// the first row's column order.
func printRows(cmd *cobra.Command, feed *domain.RowFeed) {
	if feed == nil || len(feed.Rows) == 0 {
		cmd.Println("No rows.")
		return
	}

	columns := feed.Rows[0].Columns
	if len(columns) == 0 {
		// Feed without gsx columns; fall back to title/content.
		cmd.Println(styled(headerStyle, fmt.Sprintf("%-30s %s", "TITLE", "CONTENT")))
		for _, r := range feed.Rows {
			cmd.Printf("%-30s %s\n", truncate(r.Title, 30), r.Content)
		}
		return
	}

	widths := columnWidths(columns, feed.Rows)

	var header strings.Builder
	for i, col := range columns {
		fmt.Fprintf(&header, "%-*s ", widths[i], strings.ToUpper(col))
	}
	cmd.Println(styled(headerStyle, strings.TrimRight(header.String(), " ")))

	for _, r := range feed.Rows {
		var line strings.Builder
		for i, col := range columns {
			fmt.Fprintf(&line, "%-*s ", widths[i], r.Cells[col])
		}
		cmd.Println(strings.TrimRight(line.String(), " "))
	}
	cmd.Println(styled(faintStyle, fmt.Sprintf("%d rows", len(feed.Rows))))
}

func columnWidths(columns []string, rows []domain.Row) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
		for _, r := range rows {
			if n := len(r.Cells[col]); n > widths[i] {
				widths[i] = n
			}
		}
		if widths[i] > 40 {
			widths[i] = 40
		}
	}
	return widths
}

func authorNames(authors []domain.Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if a.Name != "" {
			names = append(names, a.Name)
		} else {
			names = append(names, a.Email)
		}
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
