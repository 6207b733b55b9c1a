package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgDir    string
	plainFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gfxboard",
	Short: "Gfxboard - a completion scoreboard for graphics drivers",
	Long: `Gfxboard computes a ranked completion scoreboard for graphics-driver
implementations from a feature matrix file.

The matrix describes APIs (Vulkan, OpenGL, OpenGL ES, ...), their versions,
and each version's extensions, annotated with the reference implementation's
status and the third-party drivers that support them. Gfxboard aggregates
that tree into per-version completion counts and answers ranking queries
over it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "directory containing gfxboard.yml (default is the working directory)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "disable colors and emphasis in output")
}
