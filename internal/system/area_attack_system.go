// internal/system/area_attack_system.go
package system

import (
	"github.com/sirupsen/logrus"

	"duckslayer/internal/entity"
	"duckslayer/pkg/logger"
)

// AreaAttackSystem взрывает детонаторы (водяной шар) по истечении задержки.
type AreaAttackSystem struct {
	ecs *entity.ECS
}

func NewAreaAttackSystem(ecs *entity.ECS) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs}
}

// Update ticks every detonator. On expiry it damages all living prey within
// the radius and removes itself whether or not anything was hit. A detonator
// is not a card death, so no event is sent.
func (s *AreaAttackSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedKeys(s.ecs.Detonators) {
		det := s.ecs.Detonators[id]
		det.Delay.Tick(deltaTime)
		if !det.Delay.Finished() {
			continue
		}

		hits := 0
		if pos, ok := s.ecs.Positions[id]; ok {
			center := pos.Vec()
			for _, victim := range s.ecs.Query(det.Prey) {
				if victim == id {
					continue
				}
				if center.Dist(s.ecs.Positions[victim].Vec()) > det.Radius {
					continue
				}
				if ApplyDamage(s.ecs, victim, det.Damage) {
					hits++
				}
			}
		}

		logger.Log.WithFields(logrus.Fields{"component": "area_attack", "entity": id, "hits": hits}).Debug("detonated")
		s.ecs.Destroy(id)
	}
}
