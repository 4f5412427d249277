package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/monetary-storm/internal/config"
	"github.com/iburimskiy/monetary-storm/internal/cue"
)

// Audio plays the cue after each simulated day through the system speaker.
type Audio struct {
	rate   beep.SampleRate
	volume float64
	custom *beep.Buffer
	tap    *cue.LevelTap
}

// NewAudio initializes the speaker and loads the custom cue file, if any.
func NewAudio(s config.Settings) (*Audio, error) {
	sr := beep.SampleRate(config.CueSampleRate)
	a := &Audio{rate: sr, volume: s.CueVolume}

	if s.CueFile != "" {
		buf, err := cue.Load(s.CueFile, sr)
		if err != nil {
			return nil, fmt.Errorf("load cue %s: %w", s.CueFile, err)
		}
		a.custom = buf
	}

	if err := speaker.Init(sr, sr.N(config.CueBufferMillis*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return a, nil
}

// Play starts the cue without waiting for it. The built-in tone is higher
// when GDP rose; a custom cue ignores the direction.
func (a *Audio) Play(rising bool) {
	var s beep.Streamer
	if a.custom != nil {
		s = a.custom.Streamer(0, a.custom.Len())
	} else {
		freq := float64(config.CueFallHz)
		if rising {
			freq = config.CueRiseHz
		}
		s = cue.Tone(a.rate, freq, config.CueAmplitude, config.CueDurationMs*time.Millisecond)
	}

	a.tap = cue.NewLevelTap(s)
	speaker.Play(&effects.Volume{Streamer: a.tap, Base: 2, Volume: a.volume})
}

// Level returns the decaying peak of the last cue.
func (a *Audio) Level() float64 {
	if a.tap == nil {
		return 0
	}
	return a.tap.Decay(config.PulseDecay)
}

func (a *Audio) Close() {
	speaker.Clear()
	speaker.Close()
}
