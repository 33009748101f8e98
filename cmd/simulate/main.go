// cmd/simulate/main.go
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"duckslayer/internal/app"
	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/level"
	"duckslayer/pkg/logger"
)

// simulate прогоняет уровень без окна с фиксированным шагом и печатает исход.
func main() {
	levelPath := flag.String("level", "assets/levels/bridges.level.json", "level file to run")
	cardsPath := flag.String("cards", "", "optional card tuning override (JSON)")
	maxSeconds := flag.Float64("max", 120, "give up after this much simulated time")
	flag.Parse()

	logger.Init()

	cards := defs.DefaultCardConsts()
	if *cardsPath != "" {
		var err error
		if cards, err = defs.LoadCardConsts(*cardsPath); err != nil {
			logger.Log.WithError(err).Fatal("could not load card definitions")
		}
	}
	lvl, err := level.Load(*levelPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load level")
	}

	game := app.NewGame(cards)
	if err := game.EnterLevel(lvl); err != nil {
		logger.Log.WithError(err).Fatal("could not enter level")
	}
	game.TogglePause()

	for game.GameTime() < *maxSeconds && !game.Progress().Terminal() {
		game.Update(config.FixedTimestep)
	}

	win, lose := game.Goals()
	entry := logger.Log.WithFields(logrus.Fields{
		"level_name": lvl.Name,
		"attempt":    game.AttemptID(),
		"result":     game.Progress(),
		"time":       game.GameTime(),
		"win_left":   win.Remaining,
		"lose_left":  lose.Remaining,
		"units":      len(game.ECS.IDs()),
	})
	if !game.Progress().Terminal() {
		entry.Warn("level undecided")
		os.Exit(2)
	}
	entry.Info("level decided")
}
