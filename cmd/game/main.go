// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/level"
	"duckslayer/internal/state"
	"duckslayer/pkg/logger"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelDir := flag.String("levels", "assets/levels", "directory with level files")
	cardsPath := flag.String("cards", "", "optional card tuning override (JSON)")
	flag.Parse()

	logger.Init()

	cards := defs.DefaultCardConsts()
	if *cardsPath != "" {
		var err error
		if cards, err = defs.LoadCardConsts(*cardsPath); err != nil {
			logger.Log.WithError(err).Fatal("could not load card definitions")
		}
	}
	levels, err := level.LoadDir(*levelDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load levels")
	}
	if len(levels) == 0 {
		logger.Log.WithField("dir", *levelDir).Fatal("no levels found")
	}

	assets := &state.Assets{
		Levels: levels,
		Cards:  cards,
		Debug:  os.Getenv(config.DebugEnvVar) == "1",
	}
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewTitleState(sm, assets))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("DuckSlayer")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("game loop stopped")
	}
}
