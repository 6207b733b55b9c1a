package cli

import (
	"fmt"
	"os"

	"github.com/gfxboard/gfxboard/internal/config"
	"github.com/gfxboard/gfxboard/internal/leaderboard"
	"github.com/gfxboard/gfxboard/internal/matrix"
	"github.com/gfxboard/gfxboard/internal/report"
)

// loadConfig resolves the config directory (--config or the working
// directory) and loads gfxboard.yml with env overrides and defaults.
func loadConfig() (*config.Config, error) {
	dir := cfgDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	return config.LoadFromDir(dir)
}

// buildBoard loads the matrix file and builds a fresh leaderboard from it.
func buildBoard(cfg *config.Config) (*leaderboard.Leaderboard, error) {
	m, err := matrix.Load(cfg.Matrix)
	if err != nil {
		return nil, err
	}
	b := leaderboard.NewBuilder(cfg.Board.APIs, leaderboard.WithPrimaries(cfg.Board.Primary...))
	return b.Build(m), nil
}

// newRenderer creates the renderer honoring the global --plain flag.
func newRenderer(cfg *config.Config) *report.Renderer {
	var opts []report.Option
	if plainFlag {
		opts = append(opts, report.WithPlain())
	}
	return report.New(cfg.Board.Reference, opts...)
}

// driverKey maps a user-facing driver name to its board key: the configured
// reference display name selects the reserved reference key.
func driverKey(cfg *config.Config, name string) string {
	if name == cfg.Board.Reference {
		return leaderboard.ReferenceKey
	}
	return name
}
