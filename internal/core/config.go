package core

import "slices"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters (playfield only, no footer)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  23,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing snapshot of a running game.
type GameState struct {
	Score    int
	Lives    int
	Speed    float64
	GameOver bool
	Paused   bool
}

// Event is something that happened during a tick that the platform may react to
// (play a cue, log a line).
type Event int

const (
	EventNone     Event = iota
	EventBonus          // a bonus item was collected
	EventHazard         // a hazard item was hit
	EventGameOver       // lives reached zero
	EventRestart        // a new round started from game over
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventBonus:
		return "bonus"
	case EventHazard:
		return "hazard"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	return slices.Contains(r.Events, e)
}
