// Package cli implements the sheetfeed command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/sheetfeed/internal/adapters/driven/config/file"
	"github.com/ledgerline-labs/sheetfeed/internal/core/ports/driven"
	"github.com/ledgerline-labs/sheetfeed/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.4.0"

var (
	cfgDir      string
	verboseFlag bool

	// store is wired in PersistentPreRunE and shared by all commands.
	store driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "sheetfeed",
	Short: "Fetch and cache Google Spreadsheets feed data",
	Long: `sheetfeed is a client for the Google Spreadsheets feed API.

It lists a user's spreadsheets, resolves worksheet metadata and fetches
row data, caching row feeds per worksheet+tab so repeated fetches skip
the network.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		s, err := file.NewConfigStore(cfgDir)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		store = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config-dir", "", "config directory (default ~/.sheetfeed)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
