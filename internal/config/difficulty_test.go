package config

import "testing"

func TestSpeedRampUncapped(t *testing.T) {
	r := NewSpeedRamp(SpeedConfig{Initial: 9, Increase: 0.5})

	if r.Initial() != 9 {
		t.Errorf("Initial() = %v, expected 9", r.Initial())
	}
	if !r.IsEnabled() {
		t.Error("ramp with an increase should be enabled")
	}

	speed := r.Initial()
	for i := 0; i < 100; i++ {
		speed = r.Next(speed)
	}
	if speed != 59 {
		t.Errorf("speed after 100 ticks = %v, expected 59", speed)
	}
}

func TestSpeedRampCapped(t *testing.T) {
	r := NewSpeedRamp(SpeedConfig{Initial: 9, Increase: 1, Max: 11})

	speed := r.Initial()
	for i := 0; i < 5; i++ {
		speed = r.Next(speed)
	}
	if speed != 11 {
		t.Errorf("speed = %v, expected cap 11", speed)
	}
}

func TestSpeedRampFixed(t *testing.T) {
	r := NewSpeedRamp(SpeedConfig{Initial: 9})

	if r.IsEnabled() {
		t.Error("ramp without an increase should report disabled")
	}
	if r.Next(9) != 9 {
		t.Errorf("Next(9) = %v, expected 9", r.Next(9))
	}
}
