package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// recordingCanvas captures draw calls and measures text at a fixed 10px per rune.
type recordingCanvas struct {
	cleared core.Color
	rects   []core.Rect
	texts   []string
}

func (c *recordingCanvas) MeasureText(text string, size int) (int, int) {
	return len([]rune(text)) * 10, size
}

func (c *recordingCanvas) Clear(col core.Color) {
	c.cleared = col
	c.rects = nil
	c.texts = nil
}

func (c *recordingCanvas) FillRect(r core.Rect, _ core.Color) {
	c.rects = append(c.rects, r)
}

func (c *recordingCanvas) DrawText(_, _ int, text string, size int, _ core.Color) (int, int) {
	c.texts = append(c.texts, text)
	return c.MeasureText(text, size)
}

func (c *recordingCanvas) hasText(s string) bool {
	for _, t := range c.texts {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

// newCollidingGame returns a game whose enemy always falls straight onto the player.
func newCollidingGame() *Game {
	return New(config.DefaultDodgeConfig(), constRand(375))
}

// runUntilGameOver steps with no input until the game ends.
func runUntilGameOver(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 1000; i++ {
		res := g.Step(core.NewInputFrame())
		if res.State.GameOver {
			return res
		}
	}
	t.Fatal("game never ended")
	return core.StepResult{}
}

func clickAt(x, y int) core.InputFrame {
	f := core.NewInputFrame()
	f.Click(x, y)
	return f
}

func TestNewGameInitialState(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), constRand(100))

	if g.Phase() != PhasePlaying {
		t.Errorf("initial phase = %v, expected Playing", g.Phase())
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("initial state = %+v, expected zero score and not over", g.State())
	}
	if p := g.Player(); p.X != 375 || p.Y != 500 {
		t.Errorf("player at (%d, %d), expected (375, 500)", p.X, p.Y)
	}
	if e := g.Enemy(); e.X != 100 || e.Y != 0 {
		t.Errorf("enemy at (%d, %d), expected (100, 0)", e.X, e.Y)
	}
	if _, ok := g.ReplayBounds(); ok {
		t.Error("replay bounds must be undefined while playing")
	}
	if g.ID() != "dodge" || g.Title() != "Dodge" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestTickWithoutInputKeepsPlayer(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), constRand(0))
	res := g.Step(core.NewInputFrame())

	if g.Player().X != 375 {
		t.Errorf("player X = %d, expected unchanged 375", g.Player().X)
	}
	if g.Enemy().Y != 10 {
		t.Errorf("enemy Y = %d, expected 10 after one tick", g.Enemy().Y)
	}
	if res.Respawned || res.Collided || res.Replayed {
		t.Errorf("unexpected events in first tick: %+v", res)
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", g.Ticks())
	}
}

func TestScoreIncrementsOncePerRespawn(t *testing.T) {
	// Enemy always spawns in the left column, player sits in the middle: no collisions.
	g := New(config.DefaultDodgeConfig(), constRand(0))

	respawns := 0
	lastScore := 0
	for i := 0; i < 1000; i++ {
		res := g.Step(core.NewInputFrame())
		if res.Respawned {
			respawns++
		}
		if res.State.Score < lastScore {
			t.Fatalf("tick %d: score decreased from %d to %d", i, lastScore, res.State.Score)
		}
		if res.State.Score-lastScore > 1 {
			t.Fatalf("tick %d: score jumped by %d", i, res.State.Score-lastScore)
		}
		if res.Respawned != (res.State.Score == lastScore+1) {
			t.Fatalf("tick %d: score change does not match respawn flag", i)
		}
		lastScore = res.State.Score
	}

	if respawns == 0 {
		t.Fatal("expected at least one respawn in 1000 ticks")
	}
	if g.State().Score != respawns {
		t.Errorf("score = %d, expected %d respawns", g.State().Score, respawns)
	}
	// 61 ticks carry the enemy from y=0 past y=600
	if respawns != 1000/61 {
		t.Errorf("respawns = %d, expected %d", respawns, 1000/61)
	}
}

func TestCollisionScenario(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), constRand(0))

	// Player rect (100,500,50,50); the enemy lands on (100,500,50,50) this tick.
	g.player.X = 100
	g.enemy = Enemy{X: 100, Y: 490, Size: 50, Speed: 10}

	res := g.Step(core.NewInputFrame())
	if !core.Overlaps(g.Player().Bounds(), g.Enemy().Bounds()) {
		t.Fatalf("expected overlap, player %+v enemy %+v", g.Player().Bounds(), g.Enemy().Bounds())
	}
	if !res.Collided || !res.State.GameOver {
		t.Errorf("expected collision and game over, got %+v", res)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected GameOver", g.Phase())
	}
}

func TestCollisionFromFallingEnemy(t *testing.T) {
	g := newCollidingGame()
	res := runUntilGameOver(t, g)

	if !res.Collided {
		t.Error("the ending tick should report the collision")
	}
	// Enemy bottom crosses player top (y=500) once enemy Y > 450
	if g.Enemy().Y != 460 {
		t.Errorf("enemy Y at collision = %d, expected 460", g.Enemy().Y)
	}
	if g.Ticks() != 46 {
		t.Errorf("collision after %d ticks, expected 46", g.Ticks())
	}
}

func TestReplayBoundsDefinedOnEnteringGameOver(t *testing.T) {
	g := newCollidingGame()
	runUntilGameOver(t, g)

	bounds, ok := g.ReplayBounds()
	if !ok {
		t.Fatal("replay bounds must be defined as soon as the game is over")
	}
	// FixedMetrics: "Game Over" at 72 is 72 high; "Replay" at 36 is 108x36
	want := core.NewRect(400-54, 300+72, 108, 36)
	if bounds != want {
		t.Errorf("ReplayBounds() = %+v, expected %+v", bounds, want)
	}
}

func TestGameOverIgnoresTicksAndInput(t *testing.T) {
	g := newCollidingGame()
	runUntilGameOver(t, g)

	player, enemy, state, ticks := g.Player(), g.Enemy(), g.State(), g.Ticks()
	for i := 0; i < 20; i++ {
		res := g.Step(frameWith(core.ActionLeft))
		if res.Respawned || res.Collided || res.Replayed {
			t.Fatalf("game over should not report events, got %+v", res)
		}
	}
	if g.Player() != player || g.Enemy() != enemy || g.State() != state || g.Ticks() != ticks {
		t.Error("game over state must not change on ticks")
	}
}

func TestReplayClickInsideResets(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), &seqRand{vals: []int{375, 120}})
	runUntilGameOver(t, g)

	bounds, _ := g.ReplayBounds()
	cx, cy := bounds.Center()
	res := g.Step(clickAt(cx, cy))

	if !res.Replayed {
		t.Error("click inside the replay button should replay")
	}
	if g.Phase() != PhasePlaying || res.State.GameOver {
		t.Errorf("phase = %v, expected Playing", g.Phase())
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, expected 0 after replay", res.State.Score)
	}
	if p := g.Player(); p.X != 375 || p.Y != 500 {
		t.Errorf("player at (%d, %d), expected fresh (375, 500)", p.X, p.Y)
	}
	if e := g.Enemy(); e.Y != 0 || e.X != 120 {
		t.Errorf("enemy at (%d, %d), expected fresh (120, 0)", e.X, e.Y)
	}
	if _, ok := g.ReplayBounds(); ok {
		t.Error("replay bounds must be cleared when play resumes")
	}
	if g.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0 after replay", g.Ticks())
	}
}

func TestReplayClickOutsideKeepsGameOver(t *testing.T) {
	g := newCollidingGame()
	runUntilGameOver(t, g)
	bounds, _ := g.ReplayBounds()
	before := g.State()

	clicks := []core.Point{
		{X: 10, Y: 10},
		{X: bounds.X - 1, Y: bounds.Y},
		{X: bounds.Right(), Y: bounds.Y},
		{X: bounds.X, Y: bounds.Bottom()},
	}
	for _, c := range clicks {
		res := g.Step(clickAt(c.X, c.Y))
		if res.Replayed || g.Phase() != PhaseGameOver {
			t.Errorf("click at %+v outside %+v should not replay", c, bounds)
		}
		if g.State() != before {
			t.Errorf("state changed after outside click: %+v", g.State())
		}
	}
}

func TestClickWhilePlayingIgnored(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), constRand(0))
	g.Step(core.NewInputFrame())
	res := g.Step(clickAt(400, 390))
	if res.Replayed || g.Ticks() != 2 {
		t.Errorf("click while playing must only tick, got %+v ticks %d", res, g.Ticks())
	}
}

func TestRestartKeyReplays(t *testing.T) {
	g := newCollidingGame()
	runUntilGameOver(t, g)

	res := g.Step(frameWith(core.ActionRestart))
	if !res.Replayed || g.Phase() != PhasePlaying {
		t.Errorf("restart key after game over should replay, got %+v", res)
	}

	// Restart while playing does nothing
	res = g.Step(frameWith(core.ActionRestart))
	if res.Replayed {
		t.Error("restart key while playing must not reset")
	}
}

func TestClickInCollisionFrameIsHonored(t *testing.T) {
	g := newCollidingGame()
	for g.Enemy().Y < 450 {
		g.Step(core.NewInputFrame())
	}
	// Next tick collides; click where the replay button is about to appear.
	res := g.Step(clickAt(400, 380))
	if !res.Collided || !res.Replayed {
		t.Errorf("expected collision and replay in one frame, got %+v", res)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected Playing", g.Phase())
	}
}

func TestRenderPlaying(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), constRand(0))
	c := &recordingCanvas{}
	g.Render(c)

	if c.cleared != core.Black {
		t.Errorf("cleared with %+v, expected black", c.cleared)
	}
	if len(c.rects) != 2 {
		t.Fatalf("expected player and enemy rects, got %d", len(c.rects))
	}
	if c.rects[0] != g.Player().Bounds() || c.rects[1] != g.Enemy().Bounds() {
		t.Errorf("rects = %+v", c.rects)
	}
	if !c.hasText("Score: 0") {
		t.Errorf("texts = %v, expected score", c.texts)
	}
	if c.hasText(GameOverText) {
		t.Error("game over text must not be drawn while playing")
	}
	if _, ok := g.ReplayBounds(); ok {
		t.Error("render while playing must not define replay bounds")
	}
}

func TestRenderGameOverRecomputesBounds(t *testing.T) {
	g := newCollidingGame()
	runUntilGameOver(t, g)

	c := &recordingCanvas{}
	g.Render(c)

	if !c.hasText(GameOverText) || !c.hasText(ReplayText) {
		t.Errorf("texts = %v, expected game over overlay", c.texts)
	}
	// recordingCanvas: "Game Over" is 90x72, "Replay" is 60x36
	want := core.NewRect(400-30, 300+72, 60, 36)
	bounds, ok := g.ReplayBounds()
	if !ok || bounds != want {
		t.Errorf("ReplayBounds() = %+v, %v; expected %+v", bounds, ok, want)
	}
	if c.rects[len(c.rects)-1] != want {
		t.Error("replay button background should be filled at its bounds")
	}

	// A click at the re-rendered bounds replays.
	res := g.Step(clickAt(want.X+1, want.Y+1))
	if !res.Replayed {
		t.Error("click inside re-rendered bounds should replay")
	}
}

func TestRenderDoesNotChangeGameState(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), constRand(0))
	g.Step(frameWith(core.ActionRight))
	before := *g
	g.Render(&recordingCanvas{})
	if g.Player() != before.player || g.Enemy() != before.enemy || g.State() != before.State() {
		t.Error("Render must not change entities or score")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		switch (i / 20) % 3 {
		case 0:
			inputs[i] = frameWith(core.ActionLeft)
		case 1:
			inputs[i] = frameWith(core.ActionRight)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() (core.GameState, int) {
		g := New(cfg, NewRand(12345))
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return st, g.Ticks()
	}

	s1, t1 := run()
	s2, t2 := run()
	if s1 != s2 || t1 != t2 {
		t.Errorf("determinism failed: %+v/%d vs %+v/%d", s1, t1, s2, t2)
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "Playing" || PhaseGameOver.String() != "GameOver" || Phase(9).String() != "Unknown" {
		t.Error("unexpected Phase names")
	}
}
