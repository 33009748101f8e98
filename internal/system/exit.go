// internal/system/exit.go
package system

import (
	"image"

	"github.com/sirupsen/logrus"

	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/entity"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/logger"
)

// ExitSystem убивает фермеров, дошедших до выхода.
type ExitSystem struct {
	ecs  *entity.ECS
	exit geom.Vec2
}

func NewExitSystem(ecs *entity.ECS, exit image.Point) *ExitSystem {
	return &ExitSystem{ecs: ecs, exit: geom.V(float64(exit.X), float64(exit.Y))}
}

// Update kills every farmer standing on the exit or on the final waypoint of
// its route. The death itself is reported later by DeathSystem.
func (s *ExitSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.Query(defs.NewKindSet(defs.CardFarmer)) {
		health, ok := s.ecs.Healths[id]
		if !ok || !health.Alive() {
			continue
		}
		pos := s.ecs.Positions[id].Vec()
		escaped := pos.Dist(s.exit) < config.ExitTolerance
		if path, ok := s.ecs.FollowPaths[id]; ok && path.AtLast() {
			escaped = escaped || pos.Dist(path.Target()) < config.ExitTolerance
		}
		if escaped {
			health.Kill()
			logger.Log.WithFields(logrus.Fields{"component": "exit", "entity": id}).Debug("farmer reached the exit")
		}
	}
}
