// Package window runs dodger in a desktop window using ebiten.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/games/dodge"
)

// Options carries optional collaborators for a Runner.
type Options struct {
	Logger  *log.Logger
	Watcher *config.Watcher
}

// Runner adapts a dodge game to ebiten.Game.
type Runner struct {
	game    *dodge.Game
	cfg     config.DodgeConfig
	canvas  *Canvas
	logger  *log.Logger
	watcher *config.Watcher
	pending *config.DodgeConfig
}

// NewRunner creates a runner for cfg. A zero seed means time-based.
func NewRunner(cfg config.DodgeConfig, seed int64, opts Options) (*Runner, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	src, err := LoadFont()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{
		game:    dodge.New(cfg, dodge.NewRand(seed)),
		cfg:     cfg,
		canvas:  NewCanvas(src),
		logger:  logger,
		watcher: opts.Watcher,
	}, nil
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	r.drainWatcher()

	res := r.game.Step(pollInput())
	if res.Collided {
		r.logger.Info("game over", "score", res.State.Score, "ticks", r.game.Ticks())
	}
	if res.Replayed {
		r.applyPendingConfig()
		r.logger.Info("replay")
	}
	return nil
}

// pollInput reads the keyboard and mouse into a frame.
// Directions are level-triggered; replay and clicks fire once per press.
func pollInput() core.InputFrame {
	frame := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Click(ebiten.CursorPosition())
	}
	return frame
}

// drainWatcher picks up config changes without blocking the frame.
func (r *Runner) drainWatcher() {
	if r.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-r.watcher.Events:
			if !ok {
				r.watcher = nil
				return
			}
			cfg, err := config.ReadFile(path)
			if err != nil {
				r.logger.Warn("ignoring config change", "path", path, "error", err)
				continue
			}
			r.pending = &cfg
			r.logger.Info("config reloaded, applies on replay", "path", path)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				r.watcher = nil
				return
			}
			r.logger.Warn("config watch error", "error", err)
		default:
			return
		}
	}
}

// applyPendingConfig swaps in a game built from the reloaded config.
// The window size stays fixed; the playfield scales to it.
func (r *Runner) applyPendingConfig() {
	if r.pending == nil {
		return
	}
	r.cfg = *r.pending
	r.pending = nil
	r.game = dodge.New(r.cfg, dodge.NewRand(time.Now().UnixNano()))
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.SetTarget(screen)
	r.game.Render(r.canvas)
}

// Layout implements ebiten.Game. The logical playfield is the screen.
func (r *Runner) Layout(_, _ int) (int, int) {
	return r.cfg.Screen.Width, r.cfg.Screen.Height
}

// Run opens a window sized to the playfield and blocks until it is closed.
func Run(cfg config.DodgeConfig, rt core.RuntimeConfig, opts Options) error {
	runner, err := NewRunner(cfg, rt.Seed, opts)
	if err != nil {
		return err
	}

	tps := rt.TickRate
	if tps <= 0 {
		tps = cfg.Screen.FrameRate
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Dodger")
	ebiten.SetTPS(tps)

	runner.logger.Info("session started", "fps", tps)
	if err := ebiten.RunGame(runner); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
