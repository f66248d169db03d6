package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/racer-arcade/internal/platform/tui"
	"github.com/vovakirdan/racer-arcade/internal/registry"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to pick a difficulty and
Enter to play. After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select game
  Tab             - Run history
  Q               - Quit

Examples:
  arcade menu
  arcade menu --difficulty hard
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) {
	checkDifficulty(flagDifficulty)

	logger, closeLog := fileLogger("arcade")
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := openSound(logger)
	if player != nil {
		defer player.Close()
	}

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return
		}

		applyGameFlags(gameID, difficulty)

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		opts := tui.Options{Logger: logger, Sound: soundOf(player), AllowBack: true}
		back, runErr := tui.Run(game, store, cfg, opts)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			return
		}
		if !back {
			return
		}
	}
}
