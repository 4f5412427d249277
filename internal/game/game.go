package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/monetary-storm/internal/config"
	"github.com/iburimskiy/monetary-storm/internal/shell"
)

// Game adapts the shell controller to the ebiten loop.
type Game struct {
	ctrl  *shell.Controller
	audio *Audio

	chars []rune
	keys  []shell.Key
	ticks int
	pulse float64
}

// NewGame returns a game driving ctrl. audio may be nil.
func NewGame(ctrl *shell.Controller, audio *Audio) *Game {
	return &Game{ctrl: ctrl, audio: audio}
}

func (g *Game) Update() error {
	g.ticks++

	in := g.readInput()
	if err := g.ctrl.Handle(in); err != nil {
		if errors.Is(err, shell.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}

	if g.audio != nil {
		g.pulse = clamp01(g.audio.Level())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	g.drawPanel(screen)
	g.drawField(screen, g.ctrl.Rate)
	g.drawField(screen, g.ctrl.Money)
	g.drawPulse(screen, g.ctrl.ApplyButton.Rect)
	drawButton(screen, &g.ctrl.ApplyButton)
	drawButton(screen, &g.ctrl.HelpButton)
	g.drawStatus(screen)
	g.drawChart(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
