// internal/system/movement.go
package system

import (
	"duckslayer/internal/component"
	"duckslayer/internal/config"
	"duckslayer/internal/entity"
	"duckslayer/internal/types"
)

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	ecs     *entity.ECS
	targets TargetSource
}

func NewMovementSystem(ecs *entity.ECS, targets TargetSource) *MovementSystem {
	return &MovementSystem{ecs: ecs, targets: targets}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedKeys(s.ecs.FollowPaths) {
		s.setMoving(id, s.followPath(id, s.ecs.FollowPaths[id], deltaTime))
	}
	for _, id := range entity.SortedKeys(s.ecs.Chasers) {
		if _, onPath := s.ecs.FollowPaths[id]; onPath {
			continue
		}
		s.setMoving(id, s.chase(id, s.ecs.Chasers[id], deltaTime))
	}
}

// followPath moves first and then checks arrival, so a unit never idles for a
// tick on a waypoint it has just reached.
func (s *MovementSystem) followPath(id types.EntityID, path *component.FollowPath, deltaTime float64) bool {
	pos, ok := s.ecs.Positions[id]
	if !ok || len(path.Waypoints) == 0 || !s.alive(id) {
		return false
	}
	next, moved := stepTowards(pos.Vec(), path.Target(), path.Speed*deltaTime)
	pos.Set(next)
	if next.Dist(path.Target()) < config.PathTolerance {
		path.Advance()
	}
	return moved > 0
}

// chase walks straight at the current victim while it is out of range.
func (s *MovementSystem) chase(id types.EntityID, chaser *component.Chaser, deltaTime float64) bool {
	pos, ok := s.ecs.Positions[id]
	if !ok || s.targets == nil || !s.alive(id) {
		return false
	}
	victimPos, info, ok := VictimPosition(s.ecs, s.targets, id)
	if !ok || info.InRange {
		return false
	}
	next, moved := stepTowards(pos.Vec(), victimPos, chaser.Speed*deltaTime)
	pos.Set(next)
	return moved > 0
}

func (s *MovementSystem) alive(id types.EntityID) bool {
	health, ok := s.ecs.Healths[id]
	return !ok || health.Alive()
}

func (s *MovementSystem) setMoving(id types.EntityID, moving bool) {
	motion, ok := s.ecs.Motions[id]
	if !ok {
		motion = &component.Motion{}
		s.ecs.Motions[id] = motion
	}
	motion.Moving = moving
}

// Moving reports the last observed motion of id.
func (s *MovementSystem) Moving(id types.EntityID) bool {
	motion, ok := s.ecs.Motions[id]
	return ok && motion.Moving
}
