package core

// RuntimeConfig contains platform settings passed to the loop at startup.
// Game rules live in config.DodgeConfig; this only describes the host.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (ignored by the window backend)
	ScreenH  int   // Terminal height in characters (ignored by the window backend)
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the notable things that happened this tick.
type StepResult struct {
	State     GameState
	Respawned bool // The enemy left the screen and respawned (score went up)
	Collided  bool // The player was hit; the game entered game over this tick
	Replayed  bool // A new session was started from game over
}
