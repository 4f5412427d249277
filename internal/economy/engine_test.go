package economy

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietEngine() *Engine {
	return NewEngine(WithSource(FixedSource(0)))
}

func TestApplyPolicy_NeutralPolicyWithoutNoise(t *testing.T) {
	e := quietEngine()

	s, err := e.ApplyPolicy("5.0", "100")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Day)
	assert.Equal(t, 100.0, s.GDP)
	// the absolute rate terms remain at the neutral rate
	assert.Equal(t, 48.0, s.Inflation)
	assert.Equal(t, 52.5, s.Unemployment)
	assert.Equal(t, 5.0, s.InterestRate)
	assert.Equal(t, 100.0, s.MoneySupply)
}

func TestApplyPolicy_MoneyExpansionWithoutNoise(t *testing.T) {
	e := quietEngine()

	s, err := e.ApplyPolicy("5.0", "150")
	require.NoError(t, err)

	assert.InDelta(t, 125.0, s.GDP, 1e-9)
	// -rate*0.4 still applies at rate 5: 50 + 30 - 2
	assert.InDelta(t, 78.0, s.Inflation, 1e-9)
	// +rate*0.5 still applies at rate 5: 50 - 15 + 2.5
	assert.InDelta(t, 37.5, s.Unemployment, 1e-9)
}

func TestApplyPolicy_InvalidInput_LeavesStateUntouched(t *testing.T) {
	e := quietEngine()
	_, err := e.ApplyPolicy("4", "120")
	require.NoError(t, err)

	notified := 0
	e.Subscribe(func(State, Record) { notified++ })

	before := e.State()
	beforeHistory := e.History()

	cases := [][2]string{
		{"abc", "100"},
		{"5.0", "abc"},
		{"", "100"},
		{"NaN", "100"},
		{"5", "Inf"},
		{"1e400", "100"},
	}
	for _, c := range cases {
		s, err := e.ApplyPolicy(c[0], c[1])
		require.Error(t, err, "input %q", c)
		assert.True(t, errors.Is(err, ErrInvalidInput), "input %q", c)
		assert.Equal(t, before, s)
	}

	assert.Equal(t, before, e.State())
	assert.Equal(t, beforeHistory, e.History())
	assert.Zero(t, notified)
}

func TestApplyPolicy_InvalidInput_NamesField(t *testing.T) {
	e := quietEngine()

	_, err := e.ApplyPolicy("5", "lots")

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "money", inputErr.Field)
	assert.Equal(t, "lots", inputErr.Input)
	assert.Contains(t, err.Error(), "invalid numeric input")
}

func TestApplyPolicy_TrimsWhitespace(t *testing.T) {
	e := quietEngine()

	s, err := e.ApplyPolicy(" 5.0 ", "\t100\n")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Day)
}

func TestApplyPolicy_HistoryGrowsOnePerDay(t *testing.T) {
	e := NewEngine(WithSource(NewRandSource(7)))

	const n = 25
	for i := 0; i < n; i++ {
		_, err := e.ApplyPolicy("3.5", "110")
		require.NoError(t, err)
	}

	h := e.History()
	require.Len(t, h, n)
	assert.Equal(t, n, e.State().Day)
	assert.Equal(t, n, e.Days())
	for i, r := range h {
		assert.Equal(t, i+1, r.Day)
	}
	assert.Equal(t, e.State().Record(), h[n-1])
}

func TestApplyPolicy_ExtremeInputsStayClamped(t *testing.T) {
	policies := [][2]string{
		{"5.0", "1000"},
		{"-500", "1000"},
		{"500", "-1000"},
		{"0", "0"},
		{"1e300", "-1e300"},
		{"-1e300", "1e300"},
	}
	for _, p := range policies {
		e := NewEngine()
		for i := 0; i < 50; i++ {
			s, err := e.ApplyPolicy(p[0], p[1])
			require.NoError(t, err)
			assert.GreaterOrEqual(t, s.GDP, 0.0)
			assert.GreaterOrEqual(t, s.Inflation, 0.0)
			assert.LessOrEqual(t, s.Inflation, 100.0)
			assert.GreaterOrEqual(t, s.Unemployment, 0.0)
			assert.LessOrEqual(t, s.Unemployment, 100.0)
		}
	}
}

func TestApplyPolicy_RepeatedExpansionWithoutNoise_HitsBounds(t *testing.T) {
	e := quietEngine()

	var s State
	for i := 0; i < 10; i++ {
		var err error
		s, err = e.ApplyPolicy("5.0", "1000")
		require.NoError(t, err)
	}

	assert.Equal(t, 100.0, s.Inflation)
	assert.Equal(t, 0.0, s.Unemployment)
	assert.Equal(t, 100.0+10*450, s.GDP)
	assert.Equal(t, 1000.0, s.MoneySupply)
}

func TestApplyPolicy_StoresPolicyUnclamped(t *testing.T) {
	e := quietEngine()

	s, err := e.ApplyPolicy("-42.5", "99999")
	require.NoError(t, err)
	assert.Equal(t, -42.5, s.InterestRate)
	assert.Equal(t, 99999.0, s.MoneySupply)
}

func TestApplyPolicy_NoiseDrawOrder(t *testing.T) {
	src := NewScriptedSource(5, -3, 4)
	e := NewEngine(WithSource(src))

	s, err := e.ApplyPolicy("5", "100")
	require.NoError(t, err)

	assert.Equal(t, 105.0, s.GDP)
	assert.Equal(t, 45.0, s.Inflation)
	assert.Equal(t, 56.5, s.Unemployment)
	assert.Equal(t, 3, src.Drawn())
}

func TestApplyPolicy_SeededSourceIsReproducible(t *testing.T) {
	run := func() []Record {
		e := NewEngine(WithSource(NewRandSource(42)))
		for i := 0; i < 10; i++ {
			_, err := e.ApplyPolicy("6", "105")
			require.NoError(t, err)
		}
		return e.History()
	}

	assert.Equal(t, run(), run())
}

func TestSubscribe_ObserversSeeNewStateInOrder(t *testing.T) {
	e := quietEngine()

	var calls []string
	var seen State
	var rec Record
	e.Subscribe(func(s State, r Record) {
		calls = append(calls, "first")
		seen, rec = s, r
	})
	e.Subscribe(func(State, Record) { calls = append(calls, "second") })

	s, err := e.ApplyPolicy("5", "120")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, s, seen)
	assert.Equal(t, s.Record(), rec)
}

func TestHistory_ReturnsCopies(t *testing.T) {
	e := quietEngine()
	_, err := e.ApplyPolicy("5", "100")
	require.NoError(t, err)

	h := e.History()
	h[0].GDP = -1

	assert.Equal(t, 100.0, e.History()[0].GDP)
}

func TestNewEngine_StartsAtDayZero(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, InitialState(), e.State())
	assert.Empty(t, e.History())
	assert.Equal(t, 5.0, e.State().InterestRate)
	assert.Equal(t, 100.0, e.State().MoneySupply)
}

func TestWithModel_UsesCustomCoefficients(t *testing.T) {
	m := DefaultModel()
	m.GDPMoney = 1
	m.InflationRate = 0
	m.UnemploymentRate = 0
	e := NewEngine(WithModel(m), WithSource(FixedSource(0)))

	s, err := e.ApplyPolicy("5", "110")
	require.NoError(t, err)

	assert.Equal(t, 110.0, s.GDP)
	assert.InDelta(t, 56.0, s.Inflation, 1e-9)
	assert.InDelta(t, 47.0, s.Unemployment, 1e-9)
}

func TestApplyPolicy_InvalidInput_KeepsParseCause(t *testing.T) {
	e := quietEngine()

	_, err := e.ApplyPolicy("5", "1e400")

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.ApplyPolicy("NaN", "100")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, errors.As(err, &numErr))
}
