// internal/interfaces/session.go
package interfaces

import (
	"duckslayer/internal/component"
	"duckslayer/internal/defs"
	"duckslayer/internal/entity"
	"duckslayer/internal/system"
	"duckslayer/internal/types"
	"duckslayer/pkg/geom"
)

// Session is what a viewer needs from a running level. Both the window and
// the terminal front ends drive the game through it.
type Session interface {
	Update(deltaTime float64)
	TogglePause()
	Paused() bool
	Restart() error
	ExitLevel()

	Progress() component.GameProgress
	Goals() (win, lose component.DeathGoal)
	Message() string

	Deck() []defs.CardKind
	SelectedSlot() int
	SelectSlot(i int) bool
	PlaceSelected(pos geom.Vec2) (types.EntityID, error)

	World() *entity.ECS
	Targets() system.TargetSource
}
