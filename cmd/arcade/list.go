package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/racer-arcade/internal/registry"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Best scores are shown when the database is available
	store, err := storage.Open(flagDBPath)
	if err == nil {
		defer store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Best")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		best := "-"
		if err == nil {
			if hs, hsErr := store.HighScore(g.ID); hsErr == nil {
				best = fmt.Sprintf("%d", hs)
			}
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
