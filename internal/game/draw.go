package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/monetary-storm/internal/config"
	"github.com/iburimskiy/monetary-storm/internal/shell"
)

func (g *Game) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, config.PanelX, config.PanelY, config.PanelWidth, config.PanelHeight, config.PanelColor, false)
	vector.StrokeRect(screen, config.PanelX, config.PanelY, config.PanelWidth, config.PanelHeight, 1, config.BorderColor, false)
	ebitenutil.DebugPrintAt(screen, g.ctrl.Label("panel.controls"), config.PanelX+10, config.PanelY+6)

	hint := g.ctrl.Label("hint.keys")
	ebitenutil.DebugPrintAt(screen, hint, config.ChartX, config.WindowHeight-config.GlyphHeight-2)
}

func (g *Game) drawField(screen *ebiten.Image, f *shell.Field) {
	ebitenutil.DebugPrintAt(screen, f.Label, f.X, f.Y-config.GlyphHeight-4)

	border := config.BorderColor
	focused := g.ctrl.Focused() == f
	if focused {
		border = config.FocusColor
	}
	vector.DrawFilledRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), config.FieldColor, false)
	vector.StrokeRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), 2, border, false)

	textY := f.Y + (f.H-config.GlyphHeight)/2
	ebitenutil.DebugPrintAt(screen, f.Text(), f.X+shell.FieldPadding, textY)

	// blink twice a second
	if focused && g.ticks/30%2 == 0 {
		cx := float32(f.X + shell.FieldPadding + f.Cursor()*config.GlyphWidth)
		vector.StrokeLine(screen, cx, float32(textY+1), cx, float32(textY+config.GlyphHeight-1), 1, config.CursorColor, false)
	}
}

func drawButton(screen *ebiten.Image, b *shell.Button) {
	// Button background
	var bgColor color.Color
	if b.Pressed {
		bgColor = config.ButtonPressedColor
	} else if b.Hovered {
		bgColor = config.ButtonHoverColor
	} else {
		bgColor = config.ButtonColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bgColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, config.ButtonBorderColor, false)

	textX := b.X + (b.W-textWidth(b.Label))/2
	textY := b.Y + (b.H-config.GlyphHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Label, textX, textY)
}

// drawPulse rings r with the level of the last audio cue.
func (g *Game) drawPulse(screen *ebiten.Image, r shell.Rect) {
	if g.pulse < 0.01 {
		return
	}
	grow := float32(g.pulse * config.PulseMaxRadius)
	alpha := uint8(80 + 175*g.pulse)
	clr := color.RGBA{R: config.FocusColor.R, G: config.FocusColor.G, B: config.FocusColor.B, A: alpha}
	vector.StrokeRect(screen, float32(r.X)-grow/2, float32(r.Y)-grow/2, float32(r.W)+grow, float32(r.H)+grow, 2, clr, true)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	x, y := config.FieldX, config.StatusY
	ebitenutil.DebugPrintAt(screen, g.ctrl.Label("panel.status"), x-10, y-config.GlyphHeight-8)

	lines := g.ctrl.StatusLines()
	h := len(lines)*(config.GlyphHeight+6) + 8
	vector.StrokeRect(screen, float32(x-10), float32(y-4), config.PanelWidth-20, float32(h), 1, config.BorderColor, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*(config.GlyphHeight+6))
	}
}
