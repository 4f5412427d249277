package main

import (
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/monetary-storm/internal/config"
	"github.com/iburimskiy/monetary-storm/internal/economy"
	"github.com/iburimskiy/monetary-storm/internal/game"
	"github.com/iburimskiy/monetary-storm/internal/i18n"
	"github.com/iburimskiy/monetary-storm/internal/shell"
)

func main() {
	logger := log.New(os.Stderr, "[storm "+uuid.NewString()[:8]+"] ", log.LstdFlags)

	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		logger.Fatalf("load settings: %v", err)
	}

	messages, err := i18n.Load()
	if err != nil {
		logger.Fatalf("load messages: %v", err)
	}
	text := messages.Printer(settings.Locale)
	logger.Printf("locale=%s seed=%d sound=%t", settings.Locale, settings.Seed, settings.Sound)

	engine := economy.NewEngine(economy.WithSource(economy.NewRandSource(settings.Seed)))

	var audio *game.Audio
	opts := shell.Options{
		Engine: engine,
		// the debug font only renders ASCII
		Screen:      messages.Printer(i18n.BaseLocale),
		Text:        text,
		Dialogs:     game.NativeDialogs(),
		RateText:    settings.Policy.Rate,
		MoneyText:   settings.Policy.Money,
		ChartWindow: settings.ChartWindow,
		Logger:      logger,
	}
	if settings.Sound {
		audio, err = game.NewAudio(settings)
		if err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			opts.Cue = audio
			defer audio.Close()
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(text.Sprintf("window.title"))

	g := game.NewGame(shell.New(opts), audio)
	release := func() {}
	if audio != nil {
		release = audio.Close
	}
	if code := exitCode(ebiten.RunGame(g), logger, release); code != 0 {
		os.Exit(code)
	}
	logger.Printf("exit after %d days", engine.Days())
}

// exitCode maps the error from the game loop to a process exit status.
// A failed run calls release itself because os.Exit skips deferred calls.
func exitCode(err error, logger *log.Logger, release func()) int {
	if err == nil || errors.Is(err, ebiten.Termination) {
		return 0
	}
	logger.Printf("run: %v", err)
	release()
	return 1
}
