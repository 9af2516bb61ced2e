package main

import (
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"snake/internal/config"
	"snake/internal/engine"
	"snake/internal/game"
	"snake/internal/highscore"
)

type options struct {
	SettingsPath string `env:"SNAKE_SETTINGS"`
	Audio        bool   `env:"SNAKE_ENABLE_AUDIO"`
	ConfigDir    string `env:"SNAKE_CONFIG_DIR"`
}

func main() {
	var opts options
	if err := config.ParseEnv(&opts); err != nil {
		log.Fatal(err)
	}
	settings, err := engine.LoadSettings(opts.SettingsPath)
	if err != nil {
		log.Fatal(err)
	}

	kv, err := highscore.Open(opts.ConfigDir)
	if err != nil {
		slog.Warn("best score will not be saved", slog.String("error", err.Error()))
		kv = highscore.NewMemoryKV()
	}
	eng := engine.New(settings, highscore.New(kv, settings.StorageKey))

	g := game.New(eng, game.NewAudioManager(opts.Audio))
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
