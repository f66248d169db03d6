package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/racer-arcade/internal/registry"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show run history and statistics",
	Long: `Display the best runs for the specified game together with statistics
over every recorded run. Without a game, print an overview of every game
that has been played.

Examples:
  arcade scores
  arcade scores racer
  arcade scores racer --limit 25
  arcade scores racer --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history and high score of the game")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fail("--clear needs a game")
		}
		printOverview(store)
		return
	}

	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fail("clearing runs: %v", err)
		}
		fmt.Printf("Cleared run history for %s.\n", game.Title())
		return
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-8s  %s\n", "Rank", "Score", "Dodged", "Bonus", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-6d  %-5d  %-8s  %s\n",
			i+1, r.Score, r.Dodged, r.Bonuses,
			r.Duration().Round(time.Second), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	all, err := store.AllRuns(gameID)
	if err != nil {
		fail("retrieving runs: %v", err)
	}
	sum := storage.Summarize(all)

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d\n", stats.HighScore)
	}
	fmt.Printf("Runs: %d  Mean: %.1f  StdDev: %.1f  Median: %.1f  Dodged: %d\n",
		sum.Count, sum.Mean, sum.StdDev, sum.Median, sum.Dodged)
}

// printOverview lists every played game with its aggregate statistics.
func printOverview(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fail("retrieving statistics: %v", err)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-5s  %-7s  %-8s  %-6s  %s\n", "Game", "Runs", "Best", "Average", "Dodged", "Last played")
	fmt.Printf("  %-10s  %-5s  %-7s  %-8s  %-6s  %s\n", "----", "----", "----", "-------", "------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-10s  %-5d  %-7d  %-8.1f  %-6d  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.TotalDodged,
			st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
