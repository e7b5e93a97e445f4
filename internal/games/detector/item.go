package detector

import (
	"github.com/vovakirdan/detector-run/internal/config"
	"github.com/vovakirdan/detector-run/internal/core"
)

// ItemKind distinguishes collectible bonuses from hazards.
type ItemKind int

const (
	KindBonus ItemKind = iota
	KindHazard
)

// String returns a human-readable name for the kind.
func (k ItemKind) String() string {
	switch k {
	case KindBonus:
		return "bonus"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Lane is the fixed height band an item scrolls along.
type Lane int

const (
	LaneLow  Lane = iota // just above the ground, jump over it
	LaneHigh             // at jump height, jump into it
)

// String returns a human-readable name for the lane.
func (l Lane) String() string {
	switch l {
	case LaneLow:
		return "low"
	case LaneHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Item is a scrolling bonus or hazard. X and Y are the top-left corner.
type Item struct {
	Kind   ItemKind
	Lane   Lane
	X, Y   float64
	Width  float64
	Height float64
}

// NewItem builds an item at x in the given lane for the given ground line.
func NewItem(kind ItemKind, lane Lane, x, ground float64, geo config.ItemsConfig) Item {
	y := ground - geo.Height - geo.LowLaneLift
	if lane == LaneHigh {
		y = ground - geo.HighLaneOffset
	}
	return Item{
		Kind:   kind,
		Lane:   lane,
		X:      x,
		Y:      y,
		Width:  geo.Width,
		Height: geo.Height,
	}
}

// Tick scrolls the item left by speed.
func (it *Item) Tick(speed float64) {
	it.X -= speed
}

// OffScreen reports whether the item has fully left the viewport on the left.
func (it Item) OffScreen() bool {
	return it.X+it.Width < 0
}

// Box returns the item's bounds.
func (it Item) Box() core.Box {
	return core.Box{X: it.X, Y: it.Y, W: it.Width, H: it.Height}
}
