// detector is an endless runner for the terminal: jump the detector over
// cans and into coins before your lives run out.
//
// Usage:
//
//	detector                  - Play (same as "detector play")
//	detector play             - Play
//	detector config           - Print the default configuration
//	detector assets [dir]     - Check a sprite directory
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--assets <dir>        - Load sprites from a directory instead of the built-ins
//	--mute                - Disable sound
//	--log-file <path>     - Write game logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "detector",
	Short: "Detector Run - an endless runner in your terminal",
	Long: `Detector Run scrolls coins and cans toward your detector.
Coins score a point and restore a life, cans cost one. Three hits
in a row and the round is over.

Examples:
  detector
  detector --difficulty hard
  detector --seed 42 --mute
  detector config > my.yaml && detector --config my.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with detector.txt, coin.txt and can.txt sprites")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs here while the game is on screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}

// newLogger returns the logger used for startup and in-game messages.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "detector",
	})
}
