package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/queens-arcade/internal/game"
	"github.com/vovakirdan/queens-arcade/internal/printer"
	"github.com/vovakirdan/queens-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [size]",
	Short: "Show best times",
	Long: `Display the fastest solve times for a board size, or for every
board size with recorded times.

Examples:
  queens scores
  queens scores 8
  queens scores 8 --clear
  queens scores --store redis://localhost:6379/0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the times for the given size")
}

func runScores(_ *cobra.Command, args []string) error {
	size := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return printer.Error(fmt.Sprintf("Invalid board size %q", args[0]), "The size must be a positive number.")
		}
		size = n
	}
	if flagClear && size == 0 {
		return printer.Error("--clear needs a board size", "", "queens scores 8 --clear")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.Open(ctx, settings.Scores.Store, settings.Scores.Keep)
	if err != nil {
		return printer.Error("Could not open score store", err.Error(),
			"Check scores.store in settings or pass --store.")
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(ctx, size); err != nil {
			return printer.Error("Could not clear times", err.Error())
		}
		printer.Success("cleared times for %dx%d\n", size, size)
		return nil
	}

	sizes := []int{size}
	if size == 0 {
		if sizes, err = store.BoardSizes(ctx); err != nil {
			return printer.Error("Could not list board sizes", err.Error())
		}
	}

	if len(sizes) == 0 {
		printer.Info("No times recorded yet.\n\n")
		printer.Info("Run 'queens play' to set the first one!\n")
		return nil
	}

	for i, n := range sizes {
		if i > 0 {
			printer.Info("\n")
		}
		scores, err := store.Scores(ctx, n)
		if err != nil {
			return printer.Error("Could not read times", err.Error())
		}
		printScores(n, scores)
	}
	return nil
}

func printScores(size int, scores []storage.ScoreEntry) {
	printer.Heading("Best times - %dx%d", size, size)

	if len(scores) == 0 {
		printer.Info("No times recorded yet.\n")
		return
	}

	printer.Info("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
	printer.Dim("  %-4s  %-8s  %s\n", "----", "----", "----")

	for i, e := range scores {
		t := fmt.Sprintf("%-8s", game.FormatElapsed(e.Elapsed()))
		if i == 0 {
			t = printer.Highlight(t)
		}
		printer.Info("  %-4d  %s  %s\n", i+1, t, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
