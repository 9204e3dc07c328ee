// puncher is a terminal side-scrolling arcade game: punch and shoot your
// way through five levels of aliens, grab treasure, reach the portal.
//
// Usage:
//
//	puncher play             - Play in the current terminal
//	puncher serve            - Start SSH server for remote play
//	puncher scores           - Show recorded runs
//	puncher config           - Print the default tuning config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.puncher/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/punchworks/puncher/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puncher",
	Short: "Puncher - side-scrolling arcade action in your terminal",
	Long: `Puncher is a terminal side-scroller: move, jump and sneak through a
scrolling world, punch aliens, unlock ranged powers, collect gems and
reach the portal at the end of each of the five levels.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the default tuning config

Examples:
  puncher play
  puncher play --seed 42
  puncher serve --ssh :2222
  puncher scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puncher/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
