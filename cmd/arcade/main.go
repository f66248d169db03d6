// arcade is a car racing arcade game for the terminal, a desktop window or
// remote play over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show run history and statistics for a game
//	arcade export <game>     - Export run history as CSV
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>     - Log file for terminal play (default: ~/.arcade/arcade.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/racer-arcade/internal/core"
	_ "github.com/vovakirdan/racer-arcade/internal/games/racer" // registers the game
	"github.com/vovakirdan/racer-arcade/internal/logging"
	"github.com/vovakirdan/racer-arcade/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Racer Arcade - dodge traffic in your terminal",
	Long: `Racer Arcade is a top-down car dodging game. Steer your car along the
bottom of the lane, dodge the falling traffic and pick up power-ups.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View run history and statistics
  export   - Export run history as CSV

Examples:
  arcade list
  arcade play racer
  arcade play racer --window --sound
  arcade menu
  arcade serve --ssh :2222
  arcade scores racer
  arcade export racer --out runs.csv`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, "Log file for terminal play (empty = no log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// requireGame exits unless gameID is registered.
func requireGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
}

// logLevel parses --log-level, warning and falling back to info.
func logLevel() log.Level {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return level
}

// fileLogger opens the --log-file logger used while a TUI owns the terminal.
// The returned function closes the file.
func fileLogger(prefix string) (*log.Logger, func()) {
	if flagLogFile == "" {
		return logging.Discard(), func() {}
	}
	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logging.New(f, prefix, logLevel()), func() { f.Close() } //nolint:errcheck // closing an append-only log
}

// stderrLogger logs to stderr for commands that do not draw a TUI.
func stderrLogger(prefix string) *log.Logger {
	return logging.New(os.Stderr, prefix, logLevel())
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
