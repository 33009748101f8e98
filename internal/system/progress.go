// internal/system/progress.go
package system

import (
	"github.com/sirupsen/logrus"

	"duckslayer/internal/component"
	"duckslayer/internal/defs"
	"duckslayer/internal/event"
	"duckslayer/pkg/logger"
)

// ProgressSystem следит за условиями победы и поражения уровня.
type ProgressSystem struct {
	eventDispatcher *event.Dispatcher

	initialWin, initialLose component.DeathGoal
	win, lose               component.DeathGoal
	progress                component.GameProgress
}

func NewProgressSystem(eventDispatcher *event.Dispatcher) *ProgressSystem {
	ps := &ProgressSystem{eventDispatcher: eventDispatcher}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.CardDied, ps)
	}
	return ps
}

// Reset arms both goals and puts the level back to Ongoing.
func (s *ProgressSystem) Reset(win, lose component.DeathGoal) {
	s.initialWin, s.initialLose = win, lose
	s.Restart()
}

// Restart rearms the goals last passed to Reset.
func (s *ProgressSystem) Restart() {
	s.win, s.lose = s.initialWin, s.initialLose
	s.progress = component.Ongoing
}

func (s *ProgressSystem) OnEvent(e event.Event) {
	if e.Type != event.CardDied {
		return
	}
	if death, ok := e.Data.(event.CardDeath); ok {
		s.Record(death.Kind)
	}
}

// Record consumes one death. The win goal is counted and checked first; a
// death that ends the level as won never reaches the lose goal. Once the
// level is over nothing changes until Reset or Restart.
func (s *ProgressSystem) Record(kind defs.CardKind) component.GameProgress {
	if s.progress.Terminal() {
		return s.progress
	}
	if s.win.Record(kind) {
		s.finish(component.Won, event.LevelWon)
		return s.progress
	}
	if s.lose.Record(kind) {
		s.finish(component.Lost, event.LevelLost)
	}
	return s.progress
}

func (s *ProgressSystem) finish(p component.GameProgress, t event.EventType) {
	s.progress = p
	logger.Log.WithFields(logrus.Fields{
		"component": "progress",
		"win_left":  s.win.Remaining,
		"lose_left": s.lose.Remaining,
	}).Infof("level %s", p)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: p})
	}
}

func (s *ProgressSystem) Progress() component.GameProgress { return s.progress }

// Win returns the remaining win goal.
func (s *ProgressSystem) Win() component.DeathGoal { return s.win }

// Lose returns the remaining lose goal.
func (s *ProgressSystem) Lose() component.DeathGoal { return s.lose }
