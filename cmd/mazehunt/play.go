package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mazehunt/mazehunt/internal/core"
	"github.com/mazehunt/mazehunt/internal/games/mazehunt"
	"github.com/mazehunt/mazehunt/internal/platform/tui"
	"github.com/mazehunt/mazehunt/internal/registry"
	"github.com/mazehunt/mazehunt/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Play a variant directly without the menu.

Examples:
  mazehunt play mazehunt
  mazehunt play mazehunt --difficulty hard
  mazehunt play mazehunt_patrol --level 5
  mazehunt play mazehunt --config my-config.yaml --fps 30`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config file (YAML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check variant exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant: %s (run 'mazehunt list' to see available variants)", gameID)
	}

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Fallback to reasonable defaults
		width, height = 80, 24
	}

	// Apply flags before the game loads its config
	if flagConfig != "" {
		mazehunt.SetConfigPath(flagConfig)
	}
	if flagDifficulty != "" {
		switch flagDifficulty {
		case "easy", "normal", "hard", "fixed":
			mazehunt.SetDifficultyPreset(flagDifficulty)
		default:
			return fmt.Errorf("unknown difficulty: %s (use easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	if flagLevel > 0 {
		mazehunt.SetStartLevel(flagLevel)
	}

	// Create game config
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	// Open storage (optional, game works without it)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open storage: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Run the game
	return tui.Run(game, store, cfg)
}
