package cue

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone returns a sine tone of freq Hz lasting d, fading linearly to
// silence. Samples are identical on both channels.
func Tone(sr beep.SampleRate, freq, amplitude float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			fade := 1 - float64(pos)/float64(total)
			v := amplitude * fade * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
