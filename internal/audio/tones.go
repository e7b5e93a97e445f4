package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Coin pickup: a quick B5 then a held E6.
func bonusTone() (beep.Streamer, error) {
	return notes(
		note{987.77, 80 * time.Millisecond},
		note{1318.51, 220 * time.Millisecond},
	)
}

// Hit: a short low thud.
func hazardTone() (beep.Streamer, error) {
	return notes(
		note{110, 60 * time.Millisecond},
		note{82.41, 140 * time.Millisecond},
	)
}

type note struct {
	freq float64
	dur  time.Duration
}

func notes(ns ...note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(ns))
	for _, n := range ns {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}
