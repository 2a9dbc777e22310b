package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinfall/internal/registry"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores and totals for the given mode
(default: coins).

Examples:
  coinfall scores
  coinfall scores coins_rush`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := modeArg(args)
	if err := checkMode(gameID); err != nil {
		return err
	}

	title := gameID
	for _, info := range registry.List() {
		if info.ID == gameID {
			title = info.Title
		}
	}

	logger, err := stderrLogger("coinfall")
	if err != nil {
		return err
	}
	store := openStore(logger)
	if store == nil {
		return errors.New("scores database unavailable")
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'coinfall play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Missed", "Acc", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "------", "---", "----------", "----")
	for i, entry := range scores {
		difficulty := entry.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-6d  %-6s  %-10s  %s\n",
			i+1, entry.Score, entry.Missed,
			fmt.Sprintf("%.0f%%", entry.Accuracy()*100),
			difficulty, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Rounds: %d  Average: %.1f  Caught: %d/%d  Played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.TotalScore, stats.TotalSpawned,
			(time.Duration(stats.PlaySecs) * time.Second).String())
	}
	return nil
}
