package economy

import "math"

// Indicator bounds.
const (
	MinGDP     = 0
	MinPercent = 0
	MaxPercent = 100
)

// Model holds the coefficients of the indicator response to policy.
//
// Each delta is linear in the policy distance from neutral plus a uniform
// integer noise term in [-Noise, Noise].
type Model struct {
	NeutralMoney float64
	NeutralRate  float64

	GDPMoney float64
	GDPRate  float64
	GDPNoise int

	InflationMoney float64
	InflationRate  float64
	InflationNoise int

	UnemploymentMoney float64
	UnemploymentRate  float64
	UnemploymentNoise int
}

// DefaultModel returns the classroom coefficients.
func DefaultModel() Model {
	return Model{
		NeutralMoney: 100,
		NeutralRate:  5,

		GDPMoney: 0.5,
		GDPRate:  0.3,
		GDPNoise: 5,

		InflationMoney: 0.6,
		InflationRate:  0.4,
		InflationNoise: 3,

		UnemploymentMoney: 0.3,
		UnemploymentRate:  0.5,
		UnemploymentNoise: 4,
	}
}

// Deltas returns the raw indicator changes for p. Noise is drawn from src
// in the order GDP, inflation, unemployment.
func (m Model) Deltas(p Policy, src Source) (gdp, inflation, unemployment float64) {
	money := p.Money - m.NeutralMoney

	gdp = money*m.GDPMoney - (p.Rate-m.NeutralRate)*m.GDPRate +
		float64(src.IntN(-m.GDPNoise, m.GDPNoise))
	// inflation and unemployment respond to the absolute rate, not its
	// distance from neutral
	inflation = money*m.InflationMoney - p.Rate*m.InflationRate +
		float64(src.IntN(-m.InflationNoise, m.InflationNoise))
	unemployment = -money*m.UnemploymentMoney + p.Rate*m.UnemploymentRate +
		float64(src.IntN(-m.UnemploymentNoise, m.UnemploymentNoise))
	return gdp, inflation, unemployment
}

// Step advances s by one day under policy p.
func (m Model) Step(s State, p Policy, src Source) State {
	dGDP, dInflation, dUnemployment := m.Deltas(p, src)

	return State{
		Day:          s.Day + 1,
		GDP:          floorGDP(s.GDP + dGDP),
		Inflation:    clampPercent(s.Inflation + dInflation),
		Unemployment: clampPercent(s.Unemployment + dUnemployment),
		InterestRate: p.Rate,
		MoneySupply:  p.Money,
	}
}

func floorGDP(v float64) float64 {
	switch {
	case math.IsNaN(v), v < MinGDP:
		return MinGDP
	case math.IsInf(v, 1):
		return math.MaxFloat64
	}
	return v
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < MinPercent:
		return MinPercent
	case v > MaxPercent:
		return MaxPercent
	}
	return v
}
