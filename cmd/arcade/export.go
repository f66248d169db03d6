package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/racer-arcade/internal/storage"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <game>",
	Short: "Export run history as CSV",
	Long: `Write every recorded run of a game as CSV, newest first.

Columns: id, game_id, score, dodged, bonuses, duration_ms, created_at

Examples:
  arcade export racer
  arcade export racer --out runs.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "Output file (default: stdout)")
}

func runExport(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	runs, err := store.AllRuns(gameID)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	var w io.Writer = os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			fail("creating %s: %v", flagExportOut, err)
		}
		defer f.Close()
		w = f
	}

	if err := storage.WriteRunsCSV(w, runs); err != nil {
		fail("%v", err)
	}
	if flagExportOut != "" {
		fmt.Fprintf(os.Stderr, "Exported %d runs to %s\n", len(runs), flagExportOut)
	}
}
