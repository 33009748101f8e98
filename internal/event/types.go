// internal/event/types.go
package event

import (
	"duckslayer/internal/defs"
	"duckslayer/internal/types"
	"duckslayer/pkg/geom"
)

const (
	CardSpawned  EventType = "CardSpawned"  // юнит появился на карте
	CardDied     EventType = "CardDied"     // юнит погиб, Data: CardDeath
	LevelStarted EventType = "LevelStarted" // уровень (пере)запущен
	LevelWon     EventType = "LevelWon"
	LevelLost    EventType = "LevelLost"
)

// CardDeath is the payload of CardDied.
type CardDeath struct {
	ID       types.EntityID
	Kind     defs.CardKind
	Position geom.Vec2
}

// CardSpawn is the payload of CardSpawned.
type CardSpawn struct {
	ID       types.EntityID
	Kind     defs.CardKind
	Position geom.Vec2
}
