package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and the chosen puzzle setup.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Ticks per second, drives the on-screen timer
	BoardSize  int    // Queens board size, 0 means the game default
	Difficulty string // Difficulty name, empty means the game default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Queens placed so far
	GameOver bool // Whether the puzzle is solved
	Paused   bool // Whether the game is paused
}

// Results is a request to leave the board and show the results view.
type Results struct {
	Variant   string        // preset or game ID the run was played under
	BoardSize int           // board the puzzle was solved on
	Elapsed   time.Duration // time from the first placed queen to the win
}

// StepResult is returned by Game.Step() after each tick.
// Results is non-nil exactly once per solved run.
type StepResult struct {
	State   GameState
	Results *Results
}
