package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/monetary-storm/internal/config"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// textWidth approximates the debug font width of s.
func textWidth(s string) int {
	return len([]rune(s)) * config.GlyphWidth
}

// dashedLine strokes an axis-aligned dashed line.
func dashedLine(dst *ebiten.Image, x0, y0, x1, y1, dash float32, clr color.Color) {
	horizontal := y0 == y1
	length := y1 - y0
	if horizontal {
		length = x1 - x0
	}
	for off := float32(0); off < length; off += 2 * dash {
		end := off + dash
		if end > length {
			end = length
		}
		if horizontal {
			vector.StrokeLine(dst, x0+off, y0, x0+end, y0, 1, clr, false)
		} else {
			vector.StrokeLine(dst, x0, y0+off, x0, y0+end, 1, clr, false)
		}
	}
}
