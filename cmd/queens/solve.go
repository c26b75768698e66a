package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/queens-arcade/internal/printer"
	"github.com/vovakirdan/queens-arcade/internal/queens"
)

var (
	flagLimit int
	flagCount bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <size>",
	Short: "Print solutions for a board size",
	Long: `Print complete solutions for an NxN board, or count them.

Examples:
  queens solve 8
  queens solve 8 --limit 3
  queens solve 12 --count`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagLimit, "limit", 1, "Number of solutions to print (0 = all)")
	solveCmd.Flags().BoolVar(&flagCount, "count", false, "Only print the number of solutions")
}

func runSolve(_ *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return printer.Error(fmt.Sprintf("Invalid board size %q", args[0]), "The size must be a number.")
	}
	if _, err := queens.NewGameConfig(size, queens.Easy); err != nil {
		return printer.Error("Invalid board size", err.Error())
	}

	if flagCount {
		printer.Info("%dx%d has %s solutions\n", size, size, printer.Highlight(strconv.Itoa(queens.CountSolutions(size))))
		return nil
	}

	solutions := queens.Solve(size, flagLimit)
	for i, s := range solutions {
		printer.Heading("Solution %d", i+1)
		printer.Info("%s\n", formatSolution(s, size))
	}
	return nil
}

// formatSolution draws a solution with Q for queens and . for empty cells.
func formatSolution(s queens.PositionSet, size int) string {
	var b strings.Builder
	for row := 0; row < size; row++ {
		cells := make([]string, size)
		for col := 0; col < size; col++ {
			cells[col] = "."
			if s.Has(queens.Pos(row, col)) {
				cells[col] = "Q"
			}
		}
		b.WriteString("  ")
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
