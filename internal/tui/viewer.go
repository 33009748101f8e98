// internal/tui/viewer.go
package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"duckslayer/internal/interfaces"
	"duckslayer/pkg/logger"
	"duckslayer/pkg/pathfind"
)

// Viewer drives a session from terminal input and draws it.
type Viewer struct {
	session  interfaces.Session
	renderer *Renderer
	buttons  tcell.ButtonMask
	log      *logrus.Entry
}

func NewViewer(session interfaces.Session, renderer *Renderer) *Viewer {
	return &Viewer{
		session:  session,
		renderer: renderer,
		log:      logger.Log.WithField("component", "tui"),
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.renderer.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	return v.handleRune(ev.Rune())
}

func (v *Viewer) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r == ' ':
		v.session.TogglePause()
	case r == 'r':
		if err := v.session.Restart(); err != nil {
			v.log.WithError(err).Error("restart failed")
		}
	case r >= '1' && r <= '9':
		v.session.SelectSlot(int(r - '1'))
	}
	return true
}

// handleMouse places the selected card on the press of the left button.
// tcell repeats the event while the button is held, so only the edge counts.
func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
	v.buttons = buttons
	if !pressed || len(v.session.Deck()) == 0 {
		return
	}

	v.click(ev.Position())
}

// click places the selected card at the center of cell (x, y).
func (v *Viewer) click(x, y int) {
	grid := v.renderer.Grid()
	if x < 0 || y < 0 || x >= grid.Cols || y >= grid.Rows {
		return
	}
	_, err := v.session.PlaceSelected(grid.Center(x, y))
	switch {
	case err == nil:
	case errors.Is(err, pathfind.ErrNoPath):
		v.log.WithError(err).Warn("no route from there to the exit")
	default:
		v.log.WithError(err).Info("card not placed")
	}
}

// Draw renders the current frame.
func (v *Viewer) Draw() {
	v.renderer.Draw(v.session)
}

// PollEvents forwards screen events to events until done is closed or the
// screen is finalized. Run it in its own goroutine.
func PollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
