// Package audio plays the short cues that accompany collisions.
// Cues are decoded or synthesized once and replayed from memory.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/detector-run/internal/config"
	"github.com/vovakirdan/detector-run/internal/core"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player maps game events to sound cues. A nil or uninitialized Player
// is silent, so callers never need to check whether audio is available.
type Player struct {
	mu          sync.Mutex
	volume      float64
	cues        map[core.Event]*beep.Buffer
	logger      *log.Logger
	initialized bool
}

// NewPlayer prepares the bonus and hazard cues. A configured wav file that
// cannot be decoded is logged and replaced by the built-in tone.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	p := &Player{
		volume: cfg.Volume,
		cues:   make(map[core.Event]*beep.Buffer),
		logger: logger,
	}
	p.addCue(core.EventBonus, cfg.BonusFile, bonusTone)
	p.addCue(core.EventHazard, cfg.HazardFile, hazardTone)
	return p
}

func (p *Player) addCue(e core.Event, path string, fallback func() (beep.Streamer, error)) {
	if path != "" {
		buf, err := decodeFile(path)
		if err == nil {
			p.cues[e] = buf
			return
		}
		p.logger.Warn("audio cue unreadable, using built-in tone", "cue", e, "file", path, "error", err)
	}

	s, err := fallback()
	if err != nil {
		p.logger.Warn("could not synthesize audio cue", "cue", e, "error", err)
		return
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	p.cues[e] = buf
}

// Initialize opens the speaker. Until it succeeds Play does nothing.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Play starts the cue for e, if there is one. It never blocks on playback.
func (p *Player) Play(e core.Event) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.cues[e]
	if !ok {
		return
	}
	speaker.Play(p.withVolume(buf.Streamer(0, buf.Len())))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// withVolume scales s by the linear volume in [0, 1].
func (p *Player) withVolume(s beep.Streamer) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(p.volume),
		Silent:   p.volume <= 0,
	}
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if fileFormat.SampleRate != sampleRate {
		src = beep.Resample(4, fileFormat.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}
