// tilt48 is a terminal 2048: slide and merge power-of-two tiles to
// reach 2048.
//
// Usage:
//
//	tilt48 play              - Play in the current terminal
//	tilt48 scores            - Show the high score table
//	tilt48 serve             - Serve the game over SSH
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Scores database path (default: ~/.tilt48/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilt48/tilt48/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilt48",
	Short: "Play 2048 in your terminal",
	Long: `tilt48 is a terminal implementation of the sliding-tile puzzle 2048.

Tilt the board in one of four directions; equal neighbors merge into a
tile of twice the value. Reach 2048 to win, run out of moves to lose.

Examples:
  tilt48 play
  tilt48 play --size 5 --seed 42
  tilt48 scores
  tilt48 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration for a command,
// applying the --db override on top of the file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}
