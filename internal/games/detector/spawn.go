package detector

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/detector-run/internal/config"
)

// SpawnScheduler decides when the next item appears and where.
// The wait between spawns is re-rolled after every spawn.
type SpawnScheduler struct {
	rng    *rand.Rand
	spawn  config.SpawnConfig
	geo    config.ItemsConfig
	ticks  int     // ticks since the last spawn
	target float64 // ticks to wait before the next spawn
}

// NewSpawnScheduler creates a scheduler drawing from rng.
// The first item appears after the base interval.
func NewSpawnScheduler(rng *rand.Rand, spawn config.SpawnConfig, geo config.ItemsConfig) *SpawnScheduler {
	s := &SpawnScheduler{rng: rng, spawn: spawn, geo: geo}
	s.Reset()
	return s
}

// Reset restarts the countdown at the base interval.
func (s *SpawnScheduler) Reset() {
	s.ticks = 0
	s.target = s.spawn.BaseInterval
}

// MaybeSpawn advances the countdown by one tick and returns a new item when
// it expires. The item is placed past the right edge of the viewport and at
// least MinGap after the last item in items.
func (s *SpawnScheduler) MaybeSpawn(items []Item, viewportWidth, ground float64) (Item, bool) {
	s.ticks++
	if float64(s.ticks) < s.target {
		return Item{}, false
	}

	kind := KindHazard
	if s.rng.Float64() < s.geo.BonusChance {
		kind = KindBonus
	}

	x := viewportWidth
	if n := len(items); n > 0 {
		x = math.Max(viewportWidth, items[n-1].X+s.spawn.MinGap)
	}
	x += s.rng.Float64() * s.spawn.MaxExtraGap

	lane := LaneLow
	if s.rng.Float64() < s.geo.HighLaneChance {
		lane = LaneHigh
	}

	s.ticks = 0
	s.target = s.spawn.BaseInterval * (0.5 + s.rng.Float64())

	return NewItem(kind, lane, x, ground, s.geo), true
}
