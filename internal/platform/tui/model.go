package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/games/dodge"
)

// footerRows is the space reserved below the playfield for the help line.
const footerRows = 1

// configChangedMsg reports that the watched config file was written.
type configChangedMsg struct{ path string }

// configWatchErrMsg reports a watcher failure.
type configWatchErrMsg struct{ err error }

// Options carries optional collaborators for a Model.
type Options struct {
	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Watcher, when set, hot-reloads the config; changes apply at the next replay.
	Watcher *config.Watcher

	// Renderer styles output; nil uses lipgloss's default renderer.
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes screen dumps.
	// Empty means ~/.dodger/screenshots.
	ScreenshotDir string

	// NoScreenshots disables ctrl+s, e.g. for remote sessions.
	NoScreenshots bool
}

// Model is the Bubble Tea model that runs the dodge game.
type Model struct {
	game       *dodge.Game
	cfg        config.DodgeConfig
	runtime    core.RuntimeConfig
	screen     *core.Screen
	canvas     *Canvas
	renderer   *ScreenRenderer
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	watcher    *config.Watcher
	pending    *config.DodgeConfig // Reloaded config waiting for the next replay
	shotDir    string
	noShots    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for a dodge session.
func NewModel(cfg config.DodgeConfig, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Screen.FrameRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(core.Max(rt.ScreenW, 1), core.Max(rt.ScreenH-footerRows, 1))
	keys := NewKeyMapper(DefaultKeyMap(), cfg.Input.HoldTicks)
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:       dodge.New(cfg, dodge.NewRand(rt.Seed)),
		cfg:        cfg,
		runtime:    rt,
		screen:     screen,
		canvas:     NewCanvas(screen, cfg.Screen.Width, cfg.Screen.Height),
		renderer:   NewScreenRenderer(opts.Renderer),
		keys:       keys,
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		watcher:    opts.Watcher,
		shotDir:    opts.ScreenshotDir,
		noShots:    opts.NoScreenshots,
	}
}

// Init starts the tick loop and, if configured, the config watch.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.runtime.Seed, "fps", m.runtime.TickRate)
	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForConfig blocks on the watcher and turns its next event into a message.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configWatchErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configChangedMsg:
		return m.handleConfigChange(msg)

	case configWatchErrMsg:
		m.logger.Warn("config watch error", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case actionScreenshot:
		if !m.noShots {
			m.saveScreenshot()
		}
	case core.ActionLeft, core.ActionRight:
		m.keys.Press(action)
	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
	}
	return m, nil
}

// handleMouse turns a left-button press into a click in playfield coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.canvas.ToLogical(msg.X, msg.Y); ok {
		m.inputFrame.Click(p.X, p.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
// The playfield is logical, so the game keeps running at any terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(core.Max(msg.Width, 1), core.Max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keys.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Respawned {
		m.logger.Debug("enemy respawned", "score", result.State.Score)
	}
	if result.Collided {
		m.logger.Info("game over", "score", result.State.Score, "ticks", m.game.Ticks())
	}
	if result.Replayed {
		m.keys.ReleaseAll()
		m.applyPendingConfig()
		m.logger.Info("replay")
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// handleConfigChange re-reads the watched file; valid configs wait for the next replay.
func (m Model) handleConfigChange(msg configChangedMsg) (tea.Model, tea.Cmd) {
	cfg, err := config.ReadFile(msg.path)
	if err != nil {
		m.logger.Warn("ignoring config change", "path", msg.path, "error", err)
		return m, waitForConfig(m.watcher)
	}
	m.pending = &cfg
	m.logger.Info("config reloaded, applies on replay", "path", msg.path)
	return m, waitForConfig(m.watcher)
}

// applyPendingConfig swaps in a fresh game built from the reloaded config.
func (m *Model) applyPendingConfig() {
	if m.pending == nil {
		return
	}
	m.cfg = *m.pending
	m.pending = nil
	m.game = dodge.New(m.cfg, dodge.NewRand(time.Now().UnixNano()))
	m.canvas = NewCanvas(m.screen, m.cfg.Screen.Width, m.cfg.Screen.Height)
	m.keys = NewKeyMapper(m.keys.Keys(), m.cfg.Input.HoldTicks)
	m.gameState = m.game.State()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".dodger", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Game returns the running game.
func (m Model) Game() *dodge.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.DodgeConfig, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the replay button
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal session: %w", err)
	}
	return nil
}
