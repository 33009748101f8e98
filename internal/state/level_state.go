// internal/state/level_state.go
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"duckslayer/internal/config"
	"duckslayer/internal/interfaces"
	"duckslayer/internal/ui"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/logger"
	"duckslayer/pkg/pathfind"
	"duckslayer/pkg/render"
)

// LevelState — идущий уровень
type LevelState struct {
	sm            *StateMachine
	assets        *Assets
	session       interfaces.Session
	renderer      *render.ArenaRenderer
	deckBar       *ui.DeckBar
	goalBoard     *ui.GoalBoard
	messageBox    *ui.MessageBox
	indicator     *ui.PauseIndicator
	lastClickTime time.Time
}

func NewLevelState(sm *StateMachine, assets *Assets, session interfaces.Session) *LevelState {
	colors := render.ArenaColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		RiverColor:      config.RiverColor,
		ExitColor:       config.ExitColor,
	}
	return &LevelState{
		sm:            sm,
		assets:        assets,
		session:       session,
		renderer:      render.NewArenaRenderer(config.Arena(), config.FarmerExit, colors, assets.Cards),
		deckBar:       ui.NewDeckBar(ui.DefaultFace, assets.Cards),
		goalBoard:     ui.NewGoalBoard(10, 10, ui.DefaultFace),
		messageBox:    ui.NewMessageBox(ui.DefaultFace),
		indicator:     ui.NewPauseIndicator(config.MapWidth-24, 24, 12),
		lastClickTime: time.Now(),
	}
}

func (l *LevelState) Enter() {}

func (l *LevelState) Update(deltaTime float64) {
	if !l.handleInput() {
		return
	}
	l.session.Update(deltaTime)
	if l.session.Paused() {
		l.sm.SetState(NewPauseState(l.sm, l))
	}
}

// handleInput processes keys and clicks shared by the running and paused
// modes. It returns false once the state has been replaced.
func (l *LevelState) handleInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		l.session.ExitLevel()
		l.sm.SetState(NewTitleState(l.sm, l.assets))
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := l.session.Restart(); err != nil {
			logger.Log.WithError(err).Error("restart failed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		l.togglePause()
	}
	if i, ok := justPressedDigit(); ok {
		l.session.SelectSlot(i)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(l.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
		x, y := ebiten.CursorPosition()
		l.handleClick(x, y)
		l.lastClickTime = time.Now()
	}
	return true
}

func (l *LevelState) togglePause() {
	l.session.TogglePause()
	l.indicator.Toggled()
}

func (l *LevelState) handleClick(x, y int) {
	switch {
	case l.indicator.IsClicked(x, y):
		l.togglePause()
	case l.deckBar.Contains(x, y):
		if slot, ok := l.deckBar.SlotAt(x, y, len(l.session.Deck())); ok {
			l.session.SelectSlot(slot)
		}
	default:
		if len(l.session.Deck()) == 0 {
			return
		}
		_, err := l.session.PlaceSelected(geom.V(float64(x), float64(y)))
		switch {
		case err == nil:
		case errors.Is(err, pathfind.ErrNoPath):
			logger.Log.WithError(err).Warn("no route from there to the exit")
		default:
			logger.Log.WithError(err).Info("card not placed")
		}
	}
}

func (l *LevelState) Draw(screen *ebiten.Image) {
	l.renderer.Draw(screen, l.session.World(), l.session.Targets(), l.assets.Debug)
	l.deckBar.Draw(screen, l.session.Deck(), l.session.SelectedSlot())
	win, lose := l.session.Goals()
	l.goalBoard.Draw(screen, win, lose)
	l.messageBox.Draw(screen, l.session.Message())
	l.indicator.Draw(screen, l.session.Paused())

	if l.assets.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  units: %d", ebiten.ActualTPS(), len(l.session.World().IDs())), 10, config.ScreenHeight-20)
	}
}

func (l *LevelState) Exit() {}
