package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// driversCmd represents the drivers command
var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "Rank drivers by total completed extensions",
	Long: `Drivers sums each driver's completed extensions across every version on
the board and prints the ranking, best first. Ties keep the drivers'
first-encounter order in the matrix, so the output is deterministic.`,
	RunE: runDrivers,
}

func init() {
	rootCmd.AddCommand(driversCmd)
}

func runDrivers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	board, err := buildBoard(cfg)
	if err != nil {
		return err
	}

	fmt.Print(newRenderer(cfg).Ranking(board))
	return nil
}
