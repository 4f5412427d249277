package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/monetary-storm/internal/config"
	"github.com/iburimskiy/monetary-storm/internal/shell"
)

type keyBinding struct {
	key ebiten.Key
	to  shell.Key
}

// editing keys repeat while held
var repeatKeys = []keyBinding{
	{ebiten.KeyBackspace, shell.KeyBackspace},
	{ebiten.KeyDelete, shell.KeyDelete},
	{ebiten.KeyArrowLeft, shell.KeyLeft},
	{ebiten.KeyArrowRight, shell.KeyRight},
}

var commandKeys = []keyBinding{
	{ebiten.KeyHome, shell.KeyHome},
	{ebiten.KeyEnd, shell.KeyEnd},
	{ebiten.KeyTab, shell.KeyTab},
	{ebiten.KeyEnter, shell.KeyEnter},
	{ebiten.KeyNumpadEnter, shell.KeyEnter},
	{ebiten.KeyF1, shell.KeyHelp},
	{ebiten.KeyEscape, shell.KeyQuit},
}

func (g *Game) readInput() shell.Input {
	mouseX, mouseY := ebiten.CursorPosition()

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.keys = g.keys[:0]
	for _, b := range repeatKeys {
		if repeatingKeyPressed(b.key) {
			g.keys = append(g.keys, b.to)
		}
	}
	for _, b := range commandKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			g.keys = append(g.keys, b.to)
		}
	}

	return shell.Input{
		MouseX:   mouseX,
		MouseY:   mouseY,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Chars:    g.chars,
		Keys:     g.keys,
	}
}

func repeatingKeyPressed(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= config.RepeatDelay && (d-config.RepeatDelay)%config.RepeatInterval == 0
}
