// cmd/terminal/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"duckslayer/internal/app"
	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/level"
	"duckslayer/internal/tui"
	"duckslayer/pkg/logger"
)

// terminal — тот же уровень в терминале: ASCII арена и писк на каждую смерть.
func main() {
	levelPath := flag.String("level", "assets/levels/bridges.level.json", "level file to play")
	cardsPath := flag.String("cards", "", "optional card tuning override (JSON)")
	logPath := flag.String("log", "", "write log lines to this file instead of discarding them")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger.InitWithOutput(logOut)

	if err := run(*levelPath, *cardsPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(levelPath, cardsPath string, mute bool) error {
	cards := defs.DefaultCardConsts()
	if cardsPath != "" {
		var err error
		if cards, err = defs.LoadCardConsts(cardsPath); err != nil {
			return fmt.Errorf("could not load card definitions: %w", err)
		}
	}
	lvl, err := level.Load(levelPath)
	if err != nil {
		return fmt.Errorf("could not load level: %w", err)
	}

	game := app.NewGame(cards)

	sound := tui.NewSound()
	if !mute {
		if err := sound.Init(); err != nil {
			// без звука тоже играем
			logger.Log.WithError(err).Warn("audio initialization failed")
		}
	}
	defer sound.Close()
	defer sound.Subscribe(game.EventDispatcher)()

	if err := game.EnterLevel(lvl); err != nil {
		return fmt.Errorf("could not enter level: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	viewer := tui.NewViewer(game, tui.NewRenderer(screen, game.Arena, game.Exit, game.Cards))

	tickSeconds := config.FixedTimestep
	ticker := time.NewTicker(time.Duration(tickSeconds * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go tui.PollEvents(screen, eventChan, done)

	last := time.Now()
	viewer.Draw()
	for {
		select {
		case ev := <-eventChan:
			if !viewer.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			game.Update(now.Sub(last).Seconds())
			last = now
			viewer.Draw()
		}
	}
}
