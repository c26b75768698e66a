package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/queens-arcade/internal/platform/tui"
	"github.com/vovakirdan/queens-arcade/internal/printer"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and solve boards.

Each SSH connection gets its own session with the variant menu.
Times are stored per server (all users share the same leaderboard).
Point --store at a redis:// URL to share times between servers.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.queens/host_key

Examples:
  queens serve                           # Listen on :23235 with auto-generated key
  queens serve --ssh :2222               # Listen on port 2222
  queens serve --host-key ./my_host_key  # Use specific host key
  queens serve --store redis://localhost:6379/0

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from settings)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from settings)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfigFromSettings(settings)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	logger, err := newLogger(os.Stderr, "queens-ssh")
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return printer.Error("Could not create server", err.Error())
	}

	printer.Success("SSH server listening on %s\n", server.Addr())
	printer.Dim("Press Ctrl+C to stop\n")

	if err := server.ListenAndServe(); err != nil {
		return printer.Error("Server error", err.Error())
	}
	return nil
}
