package shell

import (
	"math"
	"strconv"

	"github.com/iburimskiy/monetary-storm/internal/economy"
)

const maxTickCount = 50

// Series names in plotting order.
const (
	SeriesGDP = iota
	SeriesInflation
	SeriesUnemployment
	seriesCount
)

// Chart is the plot geometry for a slice of history.
type Chart struct {
	Plot       Rect
	MinX, MaxX float64
	MinY, MaxY float64
	XTicks     []float64
	YTicks     []float64
}

// NewChart fits records into plot with at most maxTicks ticks per axis.
// Empty history yields days 0..1 and values 0..100.
func NewChart(records []economy.Record, plot Rect, maxTicks int) Chart {
	c := Chart{Plot: plot, MinX: 0, MaxX: 1, MinY: 0, MaxY: 100}

	if len(records) > 0 {
		c.MinX = float64(records[0].Day)
		c.MaxX = float64(records[len(records)-1].Day)
		if c.MaxX == c.MinX {
			c.MinX--
			c.MaxX++
		}

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, r := range records {
			for _, v := range Values(r) {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
		}
		c.MinY, c.MaxY = lo, hi
	}

	xStep := NiceStep(c.MaxX-c.MinX, maxTicks)
	c.XTicks = Ticks(c.MinX, c.MaxX, xStep)

	yStep := NiceStep(c.MaxY-c.MinY, maxTicks)
	c.MinY = math.Floor(c.MinY/yStep) * yStep
	// rounding up past the largest float keeps the unrounded maximum
	if top := math.Ceil(c.MaxY/yStep) * yStep; !math.IsInf(top, 0) {
		c.MaxY = top
	}
	if c.MaxY == c.MinY {
		c.MaxY += yStep
	}
	c.YTicks = Ticks(c.MinY, c.MaxY, yStep)
	return c
}

// Values returns the plotted values of r in series order.
func Values(r economy.Record) [seriesCount]float64 {
	return [seriesCount]float64{r.GDP, r.Inflation, r.Unemployment}
}

// Point maps a day and value into screen coordinates.
func (c Chart) Point(day, v float64) (float32, float32) {
	fx := (day - c.MinX) / (c.MaxX - c.MinX)
	fy := (v - c.MinY) / (c.MaxY - c.MinY)
	x := float64(c.Plot.X) + fx*float64(c.Plot.W)
	y := float64(c.Plot.Y+c.Plot.H) - fy*float64(c.Plot.H)
	return float32(x), float32(y)
}

// NiceStep returns an integer tick step of 1, 2 or 5 times a power of ten
// that splits span into at most maxTicks intervals.
func NiceStep(span float64, maxTicks int) float64 {
	if maxTicks < 1 {
		maxTicks = 1
	}
	if !(span > 0) || math.IsInf(span, 0) {
		return 1
	}
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}
	return math.Max(1, step)
}

// Ticks lists the finite multiples of step within [lo, hi].
func Ticks(lo, hi, step float64) []float64 {
	var out []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step/1e6 && len(out) < maxTickCount; v += step {
		if math.IsInf(v, 0) {
			break
		}
		out = append(out, v)
	}
	return out
}

// TickLabel formats a tick value; large magnitudes use exponent form.
func TickLabel(v float64) string {
	if math.Abs(v) >= 1e7 {
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
