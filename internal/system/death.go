// internal/system/death.go
package system

import (
	"github.com/sirupsen/logrus"

	"duckslayer/internal/entity"
	"duckslayer/internal/event"
	"duckslayer/pkg/logger"
)

// DeathSystem удаляет юниты с нулевым здоровьем и сообщает о смерти.
type DeathSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDeathSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DeathSystem {
	return &DeathSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update destroys dead units in ascending id order. Each unit is destroyed
// before its event goes out, so it can be reported only once.
func (s *DeathSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedKeys(s.ecs.Healths) {
		health := s.ecs.Healths[id]
		if health.Alive() {
			continue
		}
		death := event.CardDeath{ID: id, Kind: s.ecs.Kind(id)}
		if pos, ok := s.ecs.Positions[id]; ok {
			death.Position = pos.Vec()
		}
		s.ecs.Destroy(id)

		logger.Log.WithFields(logrus.Fields{"component": "death", "entity": id, "card": death.Kind}).Debug("card died")
		s.eventDispatcher.Dispatch(event.Event{Type: event.CardDied, Data: death})
	}
}
