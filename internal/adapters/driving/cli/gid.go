package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/sheetfeed/internal/connectors/google/sheets"
)

var gidReverse bool

var gidCmd = &cobra.Command{
	Use:   "gid [id]",
	Short: "Convert between worksheet ids and numeric grid ids",
	Long: `Converts a worksheet's opaque id (as used in private feed URLs) to
its numeric grid id (the gid URL parameter), or back with --reverse.

  sheetfeed gid od6            -> 0
  sheetfeed gid --reverse 2    -> od4`,
	Args: cobra.ExactArgs(1),
	RunE: runGid,
}

func init() {
	gidCmd.Flags().BoolVar(&gidReverse, "reverse", false, "convert a numeric grid id to a worksheet id")
	rootCmd.AddCommand(gidCmd)
}

func runGid(cmd *cobra.Command, args []string) error {
	if gidReverse {
		gridID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		worksheetID, err := sheets.GridIDToWorksheetID(gridID)
		if err != nil {
			return err
		}
		cmd.Println(worksheetID)
		return nil
	}

	gridID, err := sheets.WorksheetIDToGridID(args[0])
	if err != nil {
		return err
	}
	cmd.Println(strconv.FormatInt(gridID, 10))
	return nil
}
