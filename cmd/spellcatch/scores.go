package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spellcatch/internal/registry"
	"github.com/vovakirdan/spellcatch/internal/storage"
)

var (
	flagClearScores bool
	flagWordLimit   int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for a game (default: spellcatch),
followed by the words that cost the most lives.

Examples:
  spellcatch scores
  spellcatch scores spellcatch_endless
  spellcatch scores --words 20
  spellcatch scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and rounds of the game")
	scoresCmd.Flags().IntVar(&flagWordLimit, "words", 5, "Number of hardest words to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "spellcatch"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spellcatch list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'spellcatch play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Words", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, entry.Score, entry.Words, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Words spelled: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalWords)
	}

	printWordStats(store, gameID)
}

// printWordStats lists the words with the most wrong catches.
func printWordStats(store *storage.Store, gameID string) {
	stats, err := store.WordStats(gameID, flagWordLimit)
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Hardest words:")
	fmt.Printf("  %-12s  %-8s  %-4s  %s\n", "Word", "Attempts", "Wins", "Mistakes")
	for _, w := range stats {
		fmt.Printf("  %-12s  %-8d  %-4d  %d\n", w.Word, w.Attempts, w.Wins, w.Mistakes)
	}
}
