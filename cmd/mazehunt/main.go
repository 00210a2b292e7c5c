// mazehunt is a terminal maze-pursuit game: collect every relic and reach
// the exit while a hunter closes in.
//
// Usage:
//
//	mazehunt list              - List available variants
//	mazehunt play <variant>    - Play a variant
//	mazehunt menu              - Start menu to pick variants interactively
//	mazehunt serve             - Start SSH server for remote play
//	mazehunt scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mazehunt/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/mazehunt/mazehunt/internal/games/mazehunt"
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
	Use:   "mazehunt",
	Short: "Mazehunt - Outrun the hunter in your terminal",
	Long: `Mazehunt is a terminal maze-pursuit game. Grab every relic and make
it to the exit before the hunter catches you. Higher levels mean denser
mazes, rolling hazards, and a faster hunter.

Available commands:
  list     - Show all registered variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  mazehunt list
  mazehunt play mazehunt
  mazehunt play mazehunt_patrol --difficulty hard
  mazehunt menu
  mazehunt serve --ssh :2222
  mazehunt scores mazehunt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazehunt/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
