package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeFPS    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dodger SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Every session uses the same
config, loaded once at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dodger/host_key

Examples:
  dodger serve                           # Listen on :23234 with auto-generated key
  dodger serve --ssh :2222               # Listen on port 2222
  dodger serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeFPS, "fps", 0, "Tick rate (0 = config frame_rate)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("dodger-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagServeFPS,
	}

	server, err := tui.NewSSHServer(cfg, gameCfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting dodger SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
