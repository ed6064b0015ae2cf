package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/platform/tui"
	"github.com/vovakirdan/dodger/internal/platform/window"
)

var (
	flagWindow bool
	flagWatch  bool
	flagFPS    int
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play dodger",
	Long: `Start a game in the terminal, or in a desktop window with --window.

Controls:
  Left/A, Right/D  - Move
  Click Replay / R - Play again after game over
  Ctrl+S           - Save a text screenshot (terminal only)
  Q/Esc            - Quit

Examples:
  dodger play
  dodger play --window
  dodger play --fps 60 --seed 42
  dodger play --config ./dodge.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies on replay)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config frame_rate)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal owns the screen, so its logs only go to --log-file.
	var fallback io.Writer
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger("dodger", fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig(logger)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if flagWatch {
		if source == "" {
			logger.Warn("--watch ignored: no config file in use")
		} else {
			watcher, err = config.NewWatcher(source)
			if err != nil {
				return err
			}
			defer watcher.Close()
		}
	}

	rt := runtimeConfig(func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	}, flagFPS, flagSeed)

	if flagWindow {
		return window.Run(cfg, rt, window.Options{Logger: logger, Watcher: watcher})
	}
	return tui.Run(cfg, rt, tui.Options{Logger: logger, Watcher: watcher})
}

// runtimeConfig builds the platform settings from the terminal size, falling
// back to the default 80x24 when the size is unavailable (e.g. not a tty).
// The window backend ignores the size.
func runtimeConfig(termSize func() (int, int, error), fps int, seed int64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := termSize(); err == nil && w > 0 && h > 0 {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = fps
	rt.Seed = seed
	return rt
}
