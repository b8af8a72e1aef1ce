package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tilt48/tilt48/internal/game"
	"github.com/tilt48/tilt48/internal/platform/tui"
	"github.com/tilt48/tilt48/internal/spawn"
	"github.com/tilt48/tilt48/internal/storage"
)

var (
	flagSize int
	flagSeed int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Tilt the board
  R           - Restart (after game over)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  tilt48 play
  tilt48 play --size 5
  tilt48 play --seed 42        # Reproducible tile spawns`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board side length (overrides config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Spawn RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSize > 0 {
		cfg.Board.Size = flagSize
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Get terminal size early so the first frame is centered.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	eng := game.New(cfg.Board.Size)
	spawner := spawn.New(seed, cfg.Spawn.FourProb)
	model := tui.NewModel(eng, spawner, store, width, height)

	runErr := tui.Run(model)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
