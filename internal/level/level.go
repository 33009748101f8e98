// internal/level/level.go
package level

import (
	"errors"
	"fmt"

	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/pathfind"
)

// ErrInvalidLevel wraps every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Placement is one card on the map at level start.
type Placement struct {
	Kind     defs.CardKind
	Position geom.Vec2
}

// Condition ends the level once CountDead cards of Kind have died.
type Condition struct {
	Kind      defs.CardKind
	CountDead uint32
}

// Level — описание уровня: стартовые карты, колода и условия.
type Level struct {
	Name         string
	Cards        []Placement
	StartingDeck []defs.CardKind
	Win          Condition
	Lose         Condition
}

// Validate checks a level against the standard arena.
func (l *Level) Validate() error {
	return l.ValidateIn(config.Arena())
}

// ValidateIn checks a level against the given obstacles.
func (l *Level) ValidateIn(arena pathfind.Obstacles) error {
	conditions := []struct {
		name string
		c    Condition
	}{{"win", l.Win}, {"lose", l.Lose}}
	for _, cond := range conditions {
		name, c := cond.name, cond.c
		if !c.Kind.Valid() {
			return fmt.Errorf("%w: %s condition has no card", ErrInvalidLevel, name)
		}
		if c.CountDead < 1 {
			return fmt.Errorf("%w: %s condition needs at least one death", ErrInvalidLevel, name)
		}
	}
	for i, p := range l.Cards {
		if !p.Kind.Valid() {
			return fmt.Errorf("%w: card %d has unknown kind", ErrInvalidLevel, i)
		}
		if arena.Blocked(p.Position) {
			return fmt.Errorf("%w: %s at (%.1f, %.1f) is off the map or in a river", ErrInvalidLevel, p.Kind, p.Position.X, p.Position.Y)
		}
	}
	for i, k := range l.StartingDeck {
		if !k.Valid() {
			return fmt.Errorf("%w: deck slot %d has unknown kind", ErrInvalidLevel, i)
		}
	}
	return nil
}

// Clone returns a deep copy, so a running session never shares slices with
// the level it was started from.
func (l Level) Clone() Level {
	out := l
	out.Cards = append([]Placement(nil), l.Cards...)
	out.StartingDeck = append([]defs.CardKind(nil), l.StartingDeck...)
	return out
}
