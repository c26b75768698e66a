package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/game"
	"github.com/vovakirdan/queens-arcade/internal/platform/tui"
	"github.com/vovakirdan/queens-arcade/internal/printer"
	"github.com/vovakirdan/queens-arcade/internal/registry"
	"github.com/vovakirdan/queens-arcade/internal/sound"
	"github.com/vovakirdan/queens-arcade/internal/storage"
)

var (
	flagSize       int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Solve a board",
	Long: `Start the given board variant. Without a variant, or with --size or
--difficulty, a custom board from settings and flags is used.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Enter/Space      - Place, remove or move a queen
  Mouse click      - Same as Enter on the clicked cell
  ?                - Toggle hint
  +/-              - Larger or smaller board (4 to 12)
  T                - Next difficulty
  R                - Restart
  Esc/B            - Leave
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Conflicts and attacked cells are shown
  medium - Conflicting queens are shown
  hard   - Only the last placed queen shows its conflict

Examples:
  queens play classic
  queens play mini
  queens play --size 10 --difficulty medium`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size for a custom board (4-12)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty for a custom board: easy, medium, hard")
}

// resolveVariant picks the variant ID and applies board flags to settings.
func resolveVariant(args []string) (string, error) {
	id := game.CustomID
	if len(args) == 1 {
		id = args[0]
	}

	if !registry.Exists(id) {
		return "", printer.Error(fmt.Sprintf("Unknown variant %q", id), "",
			"Run 'queens list' to see available variants.")
	}

	custom := flagSize != 0 || flagDifficulty != ""
	if custom && id != game.CustomID {
		return "", printer.Error("Board flags need the custom variant",
			fmt.Sprintf("Variant %q has a fixed board.", id),
			"Drop the variant: queens play --size N --difficulty D")
	}

	if err := settings.ApplyBoard(flagSize, flagDifficulty); err != nil {
		return "", printer.Error("Invalid board", err.Error(),
			"Board size must be 4-12 and difficulty easy, medium or hard.")
	}
	return id, nil
}

// customDescription describes the custom board from settings.
func customDescription() string {
	gc, err := settings.GameConfig()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%dx%d, %s (settings)", gc.BoardSize(), gc.BoardSize(), gc.Difficulty().DisplayName())
}

// runtimeConfig builds a runtime config sized to the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.BoardSize = settings.Board.Size
	cfg.Difficulty = settings.Board.Difficulty
	return cfg
}

// openStore opens the configured score store. A failure is reported and
// play continues without recording times.
func openStore() storage.ScoreStore {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := storage.Open(ctx, settings.Scores.Store, settings.Scores.Keep)
	if err != nil {
		printer.Warning("could not open score store: %v\n", err)
		return nil
	}
	return store
}

// localEnv assembles the collaborators for a terminal session.
func localEnv() (tui.Env, func(), error) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return tui.Env{}, nil, err
	}

	store := openStore()
	cleanup := func() {
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("could not close score store", "error", err)
			}
		}
		closeLog()
	}

	return tui.Env{
		Store:  store,
		Logger: logger,
		Sound:  sound.New(settings.Sound, os.Stdout, logger),
	}, cleanup, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := resolveVariant(args)
	if err != nil {
		return err
	}

	g, err := registry.Create(id)
	if err != nil {
		return printer.Error("Could not create board", err.Error())
	}

	env, cleanup, err := localEnv()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.Run(g, env, runtimeConfig()); err != nil {
		return printer.Error("Error running puzzle", err.Error())
	}
	return nil
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board and Tab for
best times. Leaving a board returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Best times
  Q            - Quit

Examples:
  queens menu
  queens menu --store redis://localhost:6379/0`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := settings.Validate(); err != nil {
		return printer.Error("Invalid settings", err.Error())
	}

	env, cleanup, err := localEnv()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.RunSession(env, runtimeConfig()); err != nil {
		return printer.Error("Error running menu", err.Error())
	}
	return nil
}
