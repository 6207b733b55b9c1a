package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/gfxboard/gfxboard/internal/config"
	"github.com/gfxboard/gfxboard/internal/leaderboard"
	"github.com/gfxboard/gfxboard/internal/watcher"
)

var (
	watchFlag  bool
	driverGlob string
)

// boardCmd represents the board command
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Render the completion leaderboard",
	Long: `Board builds the leaderboard from the configured matrix file and renders
it: one row per API version in ranked order, one column per driver, with
completed/total extension counts per cell.

Examples:
  # Render the board once
  gfxboard board

  # Only columns for AMD drivers
  gfxboard board --driver 'rad*'

  # Re-render whenever the matrix file changes
  gfxboard board --watch
`,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-render when the matrix file changes")
	boardCmd.Flags().StringVarP(&driverGlob, "driver", "d", "", "Glob pattern limiting driver columns")
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	renderer := newRenderer(cfg)

	render := func() error {
		board, err := buildBoard(cfg)
		if err != nil {
			return err
		}
		columns, err := filterColumns(cfg, board, driverGlob)
		if err != nil {
			return err
		}
		fmt.Print(renderer.Board(board, columns))
		return nil
	}

	if !watchFlag {
		return render()
	}

	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Stopping watch...")
		cancel()
	}()

	if err := render(); err != nil {
		return err
	}

	mw, err := watcher.NewMatrixWatcher(cfg.Matrix)
	if err != nil {
		return fmt.Errorf("failed to watch matrix file: %w", err)
	}
	defer mw.Stop()

	// A changed matrix always yields a fresh board; the previous one is
	// never mutated.
	if err := mw.Start(ctx, func() {
		if err := render(); err != nil {
			log.Printf("Warning: rebuild failed: %v", err)
		}
	}); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}

// filterColumns applies the --driver glob to the board's driver columns.
// An empty pattern keeps every column; the reference column matches by its
// display name.
func filterColumns(cfg *config.Config, board *leaderboard.Leaderboard, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid driver pattern %q: %w", pattern, err)
	}

	var columns []string
	for _, d := range board.Drivers() {
		label := d
		if d == leaderboard.ReferenceKey {
			label = cfg.Board.Reference
		}
		if g.Match(label) {
			columns = append(columns, d)
		}
	}
	// Distinguish "no match" from "no filter": an empty non-nil slice
	// renders a board with no driver columns.
	if columns == nil {
		columns = []string{}
	}
	return columns, nil
}
