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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start interactive menu",
	Long: `Start the interactive menu to pick and play variants.

Use W/S or arrow keys to navigate, Enter to select, Tab for the
scoreboard, Q to quit.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	baseCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open storage once for the whole session
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open storage: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Menu loop: return to the menu after each game ends
	for {
		result, err := tui.RunMenu(store, baseCfg)
		if err != nil {
			return fmt.Errorf("menu error: %w", err)
		}

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			if store == nil {
				continue
			}
			if _, err := tui.RunScoreboard(store, width, height); err != nil {
				return fmt.Errorf("scoreboard error: %w", err)
			}
			continue
		}

		// Pre-game difficulty and start-level selection
		sel, cancelled, err := tui.RunMazehuntMenu(width, height)
		if err != nil {
			return fmt.Errorf("difficulty menu error: %w", err)
		}
		if cancelled {
			continue
		}
		mazehunt.SetDifficultyPreset(sel.Difficulty)
		if sel.Level > 0 {
			mazehunt.SetStartLevel(sel.Level)
		}

		cfg := result.Config
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}

		if err := tui.Run(game, store, cfg); err != nil {
			return fmt.Errorf("game error: %w", err)
		}
	}
}
