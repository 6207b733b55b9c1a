package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// latestCmd represents the latest command
var latestCmd = &cobra.Command{
	Use:   "latest <driver>",
	Short: "Show the highest fully supported version per API",
	Long: `Latest reports, for each configured API, the highest version the named
driver fully supports: the scan starts at the API's oldest version and
stops at the first one the driver has not completed, so a gap lower down
masks completed versions above it.

The configured reference name (e.g. "mesa") selects the reference
implementation's own status column.

Examples:
  gfxboard latest radeonsi
  gfxboard latest mesa
`,
	Args: cobra.ExactArgs(1),
	RunE: runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	board, err := buildBoard(cfg)
	if err != nil {
		return err
	}

	fmt.Print(newRenderer(cfg).Latest(board, cfg.Board.APIs, driverKey(cfg, args[0])))
	return nil
}
