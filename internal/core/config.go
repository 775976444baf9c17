package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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
	Score    int    // Player 1 score
	Score2   int    // Player 2 score (duel only)
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Message  string // Status line shown by the platform (save result, load error)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunReport describes a finished run for storage.
type RunReport struct {
	RunID       string
	Mode        string // "single" or "duel"
	Score       int
	Score2      int
	MapsCleared int
	Rounds      int
	Winner      int // duel winner: 1, 2, or 0 for a draw
	Duration    time.Duration
}
