package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/racer-arcade/internal/config"
	"github.com/vovakirdan/racer-arcade/internal/games/racer"
	"github.com/vovakirdan/racer-arcade/internal/logging"
	"github.com/vovakirdan/racer-arcade/internal/platform/tui"
	"github.com/vovakirdan/racer-arcade/internal/platform/window"
	"github.com/vovakirdan/racer-arcade/internal/registry"
	"github.com/vovakirdan/racer-arcade/internal/sound"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagWindow        bool
	flagSound         bool
	flagHighScoreFile string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/A/H     - Steer left
  Right/D/L    - Steer right
  Space/R      - Restart (after game over)
  Ctrl+S       - Screenshot (terminal only)
  Q/Ctrl+C     - Quit (Esc/Q in the window)

Power-ups:
  blue   - Shield: pass through traffic for 5 seconds
  yellow - Speed: steer 1.5x faster for 3 seconds
  green  - Points: +10 score

Difficulty options:
  easy   - Start at the base traffic speed and density
  normal - Start 30 seconds into the schedule
  hard   - Start 90 seconds into the schedule
  fixed  - No progression, traffic stays at the base level

Examples:
  arcade play racer
  arcade play racer --difficulty hard
  arcade play racer --window --sound
  arcade play racer --high-score-file ./high_score.json
  arcade play racer --config ./my-racer.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	playCmd.Flags().StringVar(&flagHighScoreFile, "high-score-file", "", "Keep the high score in a JSON file instead of the database")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)
	checkDifficulty(flagDifficulty)

	logger, closeLog := fileLogger("arcade")
	defer closeLog()

	applyGameFlags(gameID, flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if flagHighScoreFile != "" {
		path, pathErr := logging.ExpandHome(flagHighScoreFile)
		if pathErr != nil {
			fail("%v", pathErr)
		}
		cfg.Scores = storage.NewFileStore(path, logger)
	}

	player := openSound(logger)
	if player != nil {
		defer player.Close()
	}

	if flagWindow {
		opts := window.Options{Logger: logger, Sound: soundOf(player)}
		if err := window.Run(game, store, cfg, opts); err != nil {
			fail("running game: %v", err)
		}
		return
	}

	opts := tui.Options{Logger: logger, Sound: soundOf(player)}
	if _, err := tui.Run(game, store, cfg, opts); err != nil {
		fail("running game: %v", err)
	}
}

// checkDifficulty rejects unknown preset names.
func checkDifficulty(name string) {
	if name != "" && config.ParsePreset(name) == "" {
		fail("unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}

// applyGameFlags passes --config and the difficulty to the game package
// before an instance is created.
func applyGameFlags(gameID, difficulty string) {
	switch gameID {
	case "racer":
		if _, err := config.LoadRacer(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		racer.SetConfigPath(flagConfig)
		racer.SetDifficultyPreset(difficulty)
	}
}

// openSound returns an initialized player, or nil when --sound is off or
// no audio device is available.
func openSound(logger *log.Logger) *sound.Player {
	if !flagSound {
		return nil
	}
	p := sound.NewPlayer(logger)
	if err := p.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (continuing without sound)\n", err)
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return p
}

// soundOf converts an optional player to the platform interface without
// producing a non-nil interface around a nil pointer.
func soundOf(p *sound.Player) tui.EventPlayer {
	if p == nil {
		return nil
	}
	return p
}
