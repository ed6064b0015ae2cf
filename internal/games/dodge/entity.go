package dodge

import (
	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// RandomSource yields uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// randRange returns a uniform integer in the closed range [lo, hi].
func randRange(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Player is the square the user steers along the bottom of the playfield.
// It is a value type: Move returns the updated player and never mutates the receiver.
type Player struct {
	X, Y  int
	Size  int
	Speed int
	Color core.Color
}

// NewPlayer places a player at bottom-center, one body height above the bottom edge.
func NewPlayer(cfg config.DodgeConfig) Player {
	size := cfg.Player.Size
	return Player{
		X:     (cfg.Screen.Width - size) / 2,
		Y:     cfg.Screen.Height - 2*size,
		Size:  size,
		Speed: cfg.Player.Speed,
		Color: cfg.Colors().Player,
	}
}

// Move applies held directions. Each direction shifts X by Speed only if the
// result stays within [0, screenW-Size]; otherwise that direction is ignored.
func (p Player) Move(in core.InputFrame, screenW int) Player {
	maxX := screenW - p.Size
	if in.Has(core.ActionLeft) && p.X-p.Speed >= 0 {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) && p.X+p.Speed <= maxX {
		p.X += p.Speed
	}
	return p
}

// Bounds returns the player's collision rectangle.
func (p Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Enemy is the falling square.
type Enemy struct {
	X, Y  int
	Size  int
	Speed int
	Color core.Color
}

// NewEnemy places an enemy at a random column on the top edge.
func NewEnemy(cfg config.DodgeConfig, rng RandomSource) Enemy {
	size := cfg.Enemy.Size
	return Enemy{
		X:     randRange(rng, 0, cfg.Screen.Width-size),
		Y:     0,
		Size:  size,
		Speed: cfg.Enemy.Speed,
		Color: cfg.Colors().Enemy,
	}
}

// Move drops the enemy by Speed. Once Y passes screenH the enemy respawns at a
// random column on the top edge and the second return value is true.
func (e Enemy) Move(rng RandomSource, screenW, screenH int) (Enemy, bool) {
	e.Y += e.Speed
	if e.Y <= screenH {
		return e, false
	}
	e.X = randRange(rng, 0, screenW-e.Size)
	e.Y = 0
	return e, true
}

// Bounds returns the enemy's collision rectangle.
func (e Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}
