package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the front-end (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Coins captured
	Spawned  int     // Coins spawned so far
	Missed   int     // Coins that fell through the floor
	Elapsed  float64 // Seconds of unpaused play
	GameOver bool    // Timed round finished
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State    GameState
	Advanced bool // The simulation consumed this frame (false once the round is over)
	Captured int  // Coins captured during this frame
	Missed   int  // Coins lost through the floor during this frame
	Toggled  bool // Pause flag flipped this frame
}
