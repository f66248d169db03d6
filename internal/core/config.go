package core

import "time"

// ScoreStore persists a single high score for one game.
// Load never fails from the caller's point of view: an unreadable or
// missing store yields 0. Save is fire-and-forget.
type ScoreStore interface {
	Load() int
	Save(score int)
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int        // Screen width in characters
	ScreenH  int        // Screen height in characters
	TickRate int        // Simulation ticks per second (default 60)
	Seed     int64      // RNG seed for deterministic gameplay
	Scores   ScoreStore // High score persistence; nil disables it
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

// RunStats summarizes one play-through for the run history.
type RunStats struct {
	Dodged   int           // Hazards that left the playfield without a crash
	Bonuses  int           // Bonuses collected
	Duration time.Duration // Simulation time from start to game over
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int      // Current score
	HighScore int      // Best committed score
	GameOver  bool     // Whether the game has ended
	Run       RunStats // Statistics of the current run
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
