package detector

import (
	"math"
	"testing"

	"github.com/vovakirdan/detector-run/internal/config"
)

func TestCollectBonus(t *testing.T) {
	tests := []struct {
		lives     int
		wantLives int
	}{
		{1, 2},
		{2, 3},
		{3, 3},
	}

	for _, tc := range tests {
		s := NewGameState(config.LivesConfig{Initial: tc.lives, Max: 3}, 9)
		s.CollectBonus()

		if s.Score != 1 {
			t.Errorf("lives=%d: score = %d, expected 1", tc.lives, s.Score)
		}
		if s.Lives != tc.wantLives {
			t.Errorf("lives=%d: lives after bonus = %d, expected %d", tc.lives, s.Lives, tc.wantLives)
		}
	}
}

func TestTakeHit(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		wantLives int
		wantOver  bool
	}{
		{"full lives", 3, 2, false},
		{"last life", 1, 0, true},
		{"already empty", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewGameState(config.LivesConfig{Initial: 3, Max: 3}, 9)
			s.Lives = tc.lives

			over := s.TakeHit()

			if over != tc.wantOver {
				t.Errorf("TakeHit() = %v, expected %v", over, tc.wantOver)
			}
			if s.Lives != tc.wantLives {
				t.Errorf("lives = %d, expected %d", s.Lives, tc.wantLives)
			}
			if s.Playing() == tc.wantOver {
				t.Errorf("phase = %s after hit", s.Phase)
			}
		})
	}
}

func TestAccelerate(t *testing.T) {
	ramp := config.NewSpeedRamp(config.SpeedConfig{Initial: 9, Increase: 0.003})
	s := NewGameState(config.LivesConfig{Initial: 3, Max: 3}, ramp.Initial())

	for i := 0; i < 1000; i++ {
		s.Accelerate(ramp)
	}

	if math.Abs(s.Speed-12) > 1e-9 {
		t.Errorf("speed after 1000 ticks = %v, expected 12", s.Speed)
	}
}
