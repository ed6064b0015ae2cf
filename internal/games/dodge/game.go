// Package dodge implements a falling-block dodging game.
// The player slides a square along the bottom of the playfield while another
// square falls from the top; every time it drops off the screen the score goes up.
package dodge

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// HUD layout
const (
	ScoreX       = 10
	ScoreY       = 10
	GameOverText = "Game Over"
	ReplayText   = "Replay"
)

// Phase is the state of the game's state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventTick    EventKind = iota // One simulation step
	EventClick                    // Pointer press; position carried by the event
	EventRestart                  // Keyboard replay request
)

type event struct {
	kind    EventKind
	in      core.InputFrame
	pointer core.Point
}

type transitionKey struct {
	phase Phase
	kind  EventKind
}

type transition func(g *Game, ev event, res *core.StepResult)

// transitions maps (phase, event) to its effect. Missing pairs leave the game untouched.
var transitions = map[transitionKey]transition{
	{PhasePlaying, EventTick}:     (*Game).tick,
	{PhaseGameOver, EventClick}:   (*Game).replayClick,
	{PhaseGameOver, EventRestart}: (*Game).replay,
}

// Game implements the dodge game logic.
type Game struct {
	cfg     config.DodgeConfig
	palette core.Palette
	rng     RandomSource
	metrics core.TextMeasurer // Last canvas rendered to, used to lay out the overlay

	player Player
	enemy  Enemy
	score  int
	phase  Phase
	ticks  int // Ticks played in the current session

	replayBounds core.Rect
	hasReplay    bool // true iff phase == PhaseGameOver
}

// NewRand returns a seeded random source suitable for New.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// New creates a game in the Playing phase. cfg should already be validated.
func New(cfg config.DodgeConfig, rng RandomSource) *Game {
	g := &Game{
		cfg:     cfg,
		palette: cfg.Colors(),
		rng:     rng,
		metrics: core.FixedMetrics{},
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset starts a fresh session: new player, new enemy, zero score.
func (g *Game) Reset() {
	g.player = NewPlayer(g.cfg)
	g.enemy = NewEnemy(g.cfg, g.rng)
	g.score = 0
	g.ticks = 0
	g.phase = PhasePlaying
	g.replayBounds = core.Rect{}
	g.hasReplay = false
}

// Step advances the game by one frame.
// The tick is handled first, then a click, then a restart request, so a click
// landing on the replay button in the very frame of a collision is honored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	g.dispatch(event{kind: EventTick, in: in}, &res)
	if p, ok := in.Pointer(); ok {
		g.dispatch(event{kind: EventClick, in: in, pointer: p}, &res)
	}
	if in.Has(core.ActionRestart) {
		g.dispatch(event{kind: EventRestart, in: in}, &res)
	}

	res.State = g.State()
	return res
}

func (g *Game) dispatch(ev event, res *core.StepResult) {
	if t, ok := transitions[transitionKey{g.phase, ev.kind}]; ok {
		t(g, ev, res)
	}
}

// tick moves both entities, scores respawns and checks for a hit.
func (g *Game) tick(ev event, res *core.StepResult) {
	g.ticks++
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	g.player = g.player.Move(ev.in, w)

	var respawned bool
	g.enemy, respawned = g.enemy.Move(g.rng, w, h)
	if respawned {
		g.score++
		res.Respawned = true
	}

	if core.Overlaps(g.player.Bounds(), g.enemy.Bounds()) {
		g.phase = PhaseGameOver
		g.replayBounds = g.overlay(g.metrics).replay
		g.hasReplay = true
		res.Collided = true
	}
}

func (g *Game) replayClick(ev event, res *core.StepResult) {
	if !g.replayBounds.ContainsPoint(ev.pointer) {
		return
	}
	g.replay(ev, res)
}

func (g *Game) replay(_ event, res *core.StepResult) {
	g.Reset()
	res.Replayed = true
}

// overlayLayout positions the game-over texts.
type overlayLayout struct {
	title  core.Rect
	replay core.Rect
}

// overlay centers the title and puts the replay button right below it.
func (g *Game) overlay(m core.TextMeasurer) overlayLayout {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	tw, th := m.MeasureText(GameOverText, g.cfg.Fonts.TitleSize)
	rw, rh := m.MeasureText(ReplayText, g.cfg.Fonts.ScoreSize)

	return overlayLayout{
		title:  core.NewRect(w/2-tw/2, h/2-th/2, tw, th),
		replay: core.NewRect(w/2-rw/2, h/2+th, rw, rh),
	}
}

// Render draws the current game state. While the game is over it also
// refreshes the replay button bounds from the canvas's text metrics, so it
// updates the hit-test state and must run on every frame a click can follow.
func (g *Game) Render(dst core.Canvas) {
	g.metrics = dst

	dst.Clear(g.palette.Background)
	dst.FillRect(g.player.Bounds(), g.player.Color)
	dst.FillRect(g.enemy.Bounds(), g.enemy.Color)

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(ScoreX, ScoreY, scoreText, g.cfg.Fonts.ScoreSize, g.palette.Text)

	if g.phase == PhaseGameOver {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawGameOver(dst core.Canvas) {
	layout := g.overlay(dst)

	dst.DrawText(layout.title.X, layout.title.Y, GameOverText, g.cfg.Fonts.TitleSize, g.palette.GameOver)

	dst.FillRect(layout.replay, g.palette.Background)
	dst.DrawText(layout.replay.X, layout.replay.Y, ReplayText, g.cfg.Fonts.ScoreSize, g.palette.Text)

	g.replayBounds = layout.replay
	g.hasReplay = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Phase returns the state machine's current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Enemy returns a copy of the enemy.
func (g *Game) Enemy() Enemy {
	return g.enemy
}

// ReplayBounds returns the clickable replay region; ok is false while playing.
func (g *Game) ReplayBounds() (core.Rect, bool) {
	return g.replayBounds, g.hasReplay
}

// Ticks returns how many ticks the current session has run.
func (g *Game) Ticks() int {
	return g.ticks
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}
