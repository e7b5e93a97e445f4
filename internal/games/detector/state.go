package detector

import "github.com/vovakirdan/detector-run/internal/config"

// Phase is the round's lifecycle stage.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the scoreboard of a round.
type GameState struct {
	Score    int
	Lives    int
	MaxLives int
	Speed    float64
	Phase    Phase
}

// NewGameState returns the state a round starts in.
func NewGameState(lives config.LivesConfig, speed float64) GameState {
	return GameState{
		Lives:    lives.Initial,
		MaxLives: lives.Max,
		Speed:    speed,
		Phase:    PhasePlaying,
	}
}

// Playing reports whether the round is still running.
func (s GameState) Playing() bool {
	return s.Phase == PhasePlaying
}

// CollectBonus scores a point and restores a life up to the cap.
func (s *GameState) CollectBonus() {
	s.Score++
	s.Lives = min(s.Lives+1, s.MaxLives)
}

// TakeHit costs a life and ends the round when none are left.
// It reports whether this hit ended the round.
func (s *GameState) TakeHit() bool {
	s.Lives = max(s.Lives-1, 0)
	if s.Lives == 0 {
		s.Phase = PhaseGameOver
		return true
	}
	return false
}

// Accelerate advances the scroll speed by one tick of the ramp.
func (s *GameState) Accelerate(ramp *config.SpeedRamp) {
	s.Speed = ramp.Next(s.Speed)
}
