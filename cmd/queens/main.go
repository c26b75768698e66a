// queens is the N-Queens puzzle for the terminal, locally or over SSH.
//
// Usage:
//
//	queens list              - List board variants
//	queens play [variant]    - Solve a board
//	queens menu              - Pick boards interactively
//	queens scores [size]     - Show best times
//	queens solve <size>      - Print solutions for a board size
//	queens serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.queens/queens.yaml)
//	--store <target>    - Score store path or redis:// URL
//	--fps <rate>        - Screen refresh rate (default: 10)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/queens-arcade/internal/config"
	"github.com/vovakirdan/queens-arcade/internal/printer"

	// Register the puzzle variants
	_ "github.com/vovakirdan/queens-arcade/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagStore    string
	flagFPS      int
	flagLogLevel string

	// Loaded in PersistentPreRunE
	settings config.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "queens",
	Short: "N-Queens - place N queens so that none attack each other",
	Long: `N-Queens is a terminal puzzle: place one queen per row on an NxN
board so that no two share a row, column or diagonal.

Available commands:
  list     - Show the board variants
  play     - Solve a board directly
  menu     - Interactive variant picker
  scores   - View best times
  solve    - Print solutions for a board size
  serve    - Start SSH server for remote play

Examples:
  queens play classic
  queens play --size 6 --difficulty hard
  queens menu
  queens serve --ssh :2222
  queens scores 8`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Score store: file path or redis:// URL (overrides settings)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Screen refresh rate")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadSettings(_ *cobra.Command, _ []string) error {
	s, err := config.Load(flagConfig)
	if err != nil {
		return printer.Error("Could not load settings", err.Error(),
			"Fix the file or run with --config pointing to a valid one.")
	}
	if flagStore != "" {
		s.Scores.Store = flagStore
	}
	settings = s
	return nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, printer.Error("Invalid log level", err.Error(),
			"Use one of: debug, info, warn, error.")
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs to ~/.queens/queens.log so messages do not tear the
// full-screen UI. Falls back to discarding output.
func fileLogger() (*log.Logger, func(), error) {
	path := filepath.Join(config.Dir(), "queens.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr == nil {
			logger, err := newLogger(f, "queens")
			if err != nil {
				f.Close()
				return nil, nil, err
			}
			return logger, func() { f.Close() }, nil
		}
	}

	logger, err := newLogger(io.Discard, "queens")
	return logger, func() {}, err
}
