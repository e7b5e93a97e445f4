package config

// SpeedRamp advances the scroll speed by a fixed amount per tick.
type SpeedRamp struct {
	initial  float64
	increase float64
	max      float64
}

// NewSpeedRamp creates a ramp from the speed section of the config.
func NewSpeedRamp(cfg SpeedConfig) *SpeedRamp {
	return &SpeedRamp{
		initial:  cfg.Initial,
		increase: cfg.Increase,
		max:      cfg.Max,
	}
}

// Initial returns the speed a round starts at.
func (r *SpeedRamp) Initial() float64 {
	return r.initial
}

// IsEnabled returns whether the speed changes at all.
func (r *SpeedRamp) IsEnabled() bool {
	return r.increase != 0
}

// Next returns the speed one tick after current.
// A zero max leaves the ramp uncapped.
func (r *SpeedRamp) Next(current float64) float64 {
	next := current + r.increase
	if r.max > 0 && next > r.max {
		return r.max
	}
	return next
}
