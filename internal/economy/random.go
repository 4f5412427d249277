package economy

import (
	"math/rand/v2"
)

// Source draws the integer noise added to each indicator delta.
type Source interface {
	// IntN returns an integer in the closed range [lo, hi].
	IntN(lo, hi int) int
}

// RandSource draws from math/rand/v2.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a source seeded with seed. A zero seed uses the
// process-wide generator, so runs are not reproducible.
func NewRandSource(seed uint64) *RandSource {
	if seed == 0 {
		return &RandSource{}
	}
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandSource) IntN(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	n := hi - lo + 1
	if s.rng == nil {
		return lo + rand.IntN(n)
	}
	return lo + s.rng.IntN(n)
}

// FixedSource always returns the same value, clamped into range.
type FixedSource int

func (f FixedSource) IntN(lo, hi int) int {
	return clampInt(int(f), lo, hi)
}

// ScriptedSource replays a sequence of draws and then repeats the last one.
// An empty script behaves like FixedSource(0).
type ScriptedSource struct {
	values []int
	next   int
}

func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) IntN(lo, hi int) int {
	if len(s.values) == 0 {
		return clampInt(0, lo, hi)
	}
	v := s.values[len(s.values)-1]
	if s.next < len(s.values) {
		v = s.values[s.next]
		s.next++
	}
	return clampInt(v, lo, hi)
}

// Drawn reports how many scripted values have been consumed.
func (s *ScriptedSource) Drawn() int { return s.next }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
