package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/queens-arcade/internal/game"
	"github.com/vovakirdan/queens-arcade/internal/printer"
	"github.com/vovakirdan/queens-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every board variant that can be played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	printer.Heading("Board variants")

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	printer.Info("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Board")
	printer.Dim("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		board := ""
		if p, ok := registry.LookupPreset(g.ID); ok {
			board = p.Description()
		} else if g.ID == game.CustomID {
			board = customDescription()
		}
		printer.Info("  %s  %-8s  %s\n", printer.Highlight(fmt.Sprintf("%-*s", maxIDLen, g.ID)), g.Title, board)
	}

	printer.Info("\nRun 'queens play <id>' to play a board.\n")
}
