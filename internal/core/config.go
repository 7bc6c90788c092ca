package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Target frames per second for the tick loop (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	MaxDT    float64 // Upper bound for a single frame's dt in seconds (0 = unbounded)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		MaxDT:    0.1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score, truncated
	Level    int     // Current difficulty level
	Phase    string  // Name of the current screen (start, settings, game, gameover)
	Survived float64 // Seconds of play in the current run
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the simulation is frozen (title or settings screen)
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
