package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/punchworks/puncher/internal/core"
	"github.com/punchworks/puncher/internal/game"
	"github.com/punchworks/puncher/internal/platform/tui"
	"github.com/punchworks/puncher/internal/registry"
	"github.com/punchworks/puncher/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Puncher in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Left/Right or A/D  - Move
  Up or W            - Jump
  Down or S          - Sneak
  Space              - Punch
  1-6                - Use powers
  P/Esc              - Pause
  Enter              - Start / back to menu
  ` + "`" + `                  - Toggle collision debug view
  Q/Ctrl+C           - Quit

Examples:
  puncher play
  puncher play --seed 42
  puncher play --config ./my-puncher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before the game instance loads it
	game.SetConfigPath(flagConfig)

	g, err := registry.Create("puncher")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
