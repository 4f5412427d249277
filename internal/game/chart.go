package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/monetary-storm/internal/config"
	"github.com/iburimskiy/monetary-storm/internal/shell"
)

type marker int

const (
	markerCircle marker = iota
	markerSquare
	markerTriangle
)

type seriesStyle struct {
	label  string
	color  color.RGBA
	marker marker
}

var seriesStyles = [...]seriesStyle{
	shell.SeriesGDP:          {"series.gdp", config.GDPColor, markerCircle},
	shell.SeriesInflation:    {"series.inflation", config.InflationColor, markerSquare},
	shell.SeriesUnemployment: {"series.unemployment", config.UnemploymentColor, markerTriangle},
}

func (g *Game) drawChart(screen *ebiten.Image) {
	c := g.ctrl.Chart()
	p := c.Plot

	vector.DrawFilledRect(screen, config.ChartX, config.ChartY, config.ChartWidth, config.ChartHeight, config.PanelColor, false)
	vector.StrokeRect(screen, config.ChartX, config.ChartY, config.ChartWidth, config.ChartHeight, 1, config.BorderColor, false)

	title := g.ctrl.Label("chart.title")
	ebitenutil.DebugPrintAt(screen, title, p.X+(p.W-textWidth(title))/2, config.ChartY+12)

	left, right := float32(p.X), float32(p.X+p.W)
	top, bottom := float32(p.Y), float32(p.Y+p.H)

	// Grid and tick labels
	for _, v := range c.YTicks {
		_, y := c.Point(c.MinX, v)
		dashedLine(screen, left, y, right, y, 4, config.GridColor)
		label := shell.TickLabel(v)
		ebitenutil.DebugPrintAt(screen, label, p.X-textWidth(label)-6, int(y)-config.GlyphHeight/2)
	}
	for _, d := range c.XTicks {
		x, _ := c.Point(d, c.MinY)
		dashedLine(screen, x, top, x, bottom, 4, config.GridColor)
		label := shell.TickLabel(d)
		ebitenutil.DebugPrintAt(screen, label, int(x)-textWidth(label)/2, int(bottom)+4)
	}

	vector.StrokeLine(screen, left, bottom, right, bottom, 1, config.AxisColor, false)
	vector.StrokeLine(screen, left, top, left, bottom, 1, config.AxisColor, false)

	xLabel := g.ctrl.Label("chart.xaxis")
	ebitenutil.DebugPrintAt(screen, xLabel, p.X+(p.W-textWidth(xLabel))/2, int(bottom)+config.GlyphHeight+6)
	ebitenutil.DebugPrintAt(screen, g.ctrl.Label("chart.yaxis"), config.ChartX+8, p.Y-config.GlyphHeight-4)

	g.drawSeries(screen, c)
	g.drawLegend(screen, p)
}

func (g *Game) drawSeries(screen *ebiten.Image, c shell.Chart) {
	records := g.ctrl.Series()
	markers := len(records) <= config.MarkerMaxPoints

	for i, style := range seriesStyles {
		var px, py float32
		for j, r := range records {
			x, y := c.Point(float64(r.Day), shell.Values(r)[i])
			if j > 0 {
				vector.StrokeLine(screen, px, py, x, y, 2, style.color, true)
			}
			if markers {
				drawMarker(screen, style.marker, x, y, style.color)
			}
			px, py = x, y
		}
	}
}

func drawMarker(screen *ebiten.Image, m marker, x, y float32, clr color.Color) {
	const r = config.MarkerRadius
	switch m {
	case markerCircle:
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	case markerSquare:
		vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, clr, false)
	case markerTriangle:
		vector.StrokeLine(screen, x, y-r-1, x+r+1, y+r, 2, clr, true)
		vector.StrokeLine(screen, x+r+1, y+r, x-r-1, y+r, 2, clr, true)
		vector.StrokeLine(screen, x-r-1, y+r, x, y-r-1, 2, clr, true)
	}
}

func (g *Game) drawLegend(screen *ebiten.Image, p shell.Rect) {
	const (
		rowHeight = config.GlyphHeight + 4
		swatch    = 18
	)
	width := 0
	for _, style := range seriesStyles {
		width = max(width, textWidth(g.ctrl.Label(style.label)))
	}
	width += swatch + 22

	x := p.X + p.W - width - 8
	y := p.Y + 8
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(len(seriesStyles)*rowHeight+8), config.BackgroundColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(len(seriesStyles)*rowHeight+8), 1, config.BorderColor, false)

	for i, style := range seriesStyles {
		cy := float32(y + 4 + i*rowHeight + rowHeight/2)
		vector.StrokeLine(screen, float32(x+6), cy, float32(x+6+swatch), cy, 2, style.color, true)
		drawMarker(screen, style.marker, float32(x+6+swatch/2), cy, style.color)
		ebitenutil.DebugPrintAt(screen, g.ctrl.Label(style.label), x+swatch+14, int(cy)-config.GlyphHeight/2)
	}
}
