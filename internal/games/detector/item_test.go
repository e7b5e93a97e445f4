package detector

import (
	"testing"

	"github.com/vovakirdan/detector-run/internal/config"
)

func TestNewItemLanes(t *testing.T) {
	geo := config.DefaultDetectorConfig().Items

	tests := []struct {
		lane  Lane
		wantY float64
	}{
		{LaneLow, 384 - 40 - 5},
		{LaneHigh, 384 - 120},
	}

	for _, tc := range tests {
		t.Run(tc.lane.String(), func(t *testing.T) {
			it := NewItem(KindBonus, tc.lane, 800, 384, geo)
			if it.Y != tc.wantY {
				t.Errorf("Y = %v, expected %v", it.Y, tc.wantY)
			}
			if it.X != 800 || it.Width != 40 || it.Height != 40 {
				t.Errorf("unexpected geometry %+v", it)
			}
		})
	}
}

func TestItemTickAndOffScreen(t *testing.T) {
	geo := config.DefaultDetectorConfig().Items

	it := NewItem(KindHazard, LaneLow, 10, 384, geo)
	it.Tick(9)
	if it.X != 1 {
		t.Errorf("X after tick = %v, expected 1", it.X)
	}

	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-40, false}, // right edge exactly at 0
		{-40.5, true},
		{-41, true},
	}
	for _, tc := range tests {
		it.X = tc.x
		if got := it.OffScreen(); got != tc.want {
			t.Errorf("OffScreen() at x=%v = %v, expected %v", tc.x, got, tc.want)
		}
	}
}
