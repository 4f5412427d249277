package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandSource_StaysInClosedRange(t *testing.T) {
	for _, src := range []Source{NewRandSource(0), NewRandSource(99)} {
		seen := map[int]bool{}
		for i := 0; i < 2000; i++ {
			v := src.IntN(-3, 3)
			assert.GreaterOrEqual(t, v, -3)
			assert.LessOrEqual(t, v, 3)
			seen[v] = true
		}
		assert.Len(t, seen, 7)
	}
}

func TestRandSource_SwappedBounds(t *testing.T) {
	v := NewRandSource(1).IntN(4, -4)
	assert.GreaterOrEqual(t, v, -4)
	assert.LessOrEqual(t, v, 4)
}

func TestScriptedSource_RepeatsLastValue(t *testing.T) {
	src := NewScriptedSource(1, 2)

	assert.Equal(t, 1, src.IntN(-5, 5))
	assert.Equal(t, 2, src.IntN(-5, 5))
	assert.Equal(t, 2, src.IntN(-5, 5))
	assert.Equal(t, 2, src.Drawn())
}

func TestScriptedSource_ClampsIntoRange(t *testing.T) {
	src := NewScriptedSource(10, -10)

	assert.Equal(t, 3, src.IntN(-3, 3))
	assert.Equal(t, -3, src.IntN(-3, 3))
	assert.Equal(t, 0, NewScriptedSource().IntN(-3, 3))
}
