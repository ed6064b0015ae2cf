// dodger is a small dodge-the-falling-block game for the terminal and the desktop.
//
// Usage:
//
//	dodger play              - Play in the terminal
//	dodger play --window     - Play in a desktop window
//	dodger serve             - Start SSH server for remote play
//	dodger config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Dodger - dodge the falling block",
	Long: `Dodger is a tiny arcade game: slide your block left and right and
keep out of the way of the block falling from the sky. Every block that
falls past you scores a point.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  dodger play
  dodger play --window
  dodger play --config ./dodge.yaml --watch
  dodger serve --ssh :2222`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback; a nil fallback discards them.
// The returned close func must be called before exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game config and logs where it came from.
func loadConfig(logger *log.Logger) (config.DodgeConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if source == "" {
		logger.Debug("using embedded default config")
	} else {
		logger.Info("loaded config", "path", source)
	}
	return cfg, source, nil
}
