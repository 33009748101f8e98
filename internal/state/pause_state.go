// internal/state/pause_state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — уровень стоит. Колода и клики работают, симуляция нет.
// Выигранный или проигранный уровень остаётся здесь до рестарта или выхода.
type PauseState struct {
	stateMachine *StateMachine
	level        *LevelState
}

func NewPauseState(sm *StateMachine, level *LevelState) *PauseState {
	return &PauseState{stateMachine: sm, level: level}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if !s.level.handleInput() {
		return
	}
	if !s.level.session.Paused() {
		s.stateMachine.SetState(s.level)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.level.Draw(screen)
}

func (s *PauseState) Exit() {}
