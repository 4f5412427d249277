package cue

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// LevelTap wraps a beep.Streamer and records the peak amplitude of recently
// streamed samples so the renderer can pulse with the sound.
type LevelTap struct {
	Source beep.Streamer
	level  float64
	mu     sync.Mutex
}

func NewLevelTap(src beep.Streamer) *LevelTap {
	return &LevelTap{Source: src}
}

func (t *LevelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		peak := 0.0
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Max(math.Abs(samples[i][0]), math.Abs(samples[i][1])))
		}
		t.mu.Lock()
		if peak > t.level {
			t.level = peak
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *LevelTap) Err() error { return t.Source.Err() }

// Decay returns the current level and then scales it by factor.
func (t *LevelTap) Decay(factor float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	l := t.level
	t.level *= factor
	return l
}
