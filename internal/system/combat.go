// internal/system/combat.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"duckslayer/internal/entity"
	"duckslayer/internal/types"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/logger"
)

// TargetInfo is what the combat pass decided for one attacker this tick.
// Consumers outside combat (movement, egg rendering) read it instead of
// reaching into Attacker state.
type TargetInfo struct {
	Victim   types.EntityID
	Distance float64
	InRange  bool
	Fraction float64 // прогресс перезарядки, 0..1
}

// TargetSource exposes the latest combat snapshot.
type TargetSource interface {
	Target(attacker types.EntityID) (TargetInfo, bool)
}

// CombatSystem выбирает ближайшую цель и наносит урон по перезарядке.
type CombatSystem struct {
	ecs     *entity.ECS
	targets map[types.EntityID]TargetInfo
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs, targets: make(map[types.EntityID]TargetInfo)}
}

type hit struct {
	attacker types.EntityID
	victim   types.EntityID
	damage   float64
}

type selection struct {
	victim types.EntityID
	dist   float64
	found  bool
}

// Update runs in two phases: every attacker picks its victim from the health
// and positions as they were at the start of the pass, then all damage is
// applied. No attacker sees another attacker's damage within the same tick.
func (s *CombatSystem) Update(deltaTime float64) {
	ids := entity.SortedKeys(s.ecs.Attackers)

	selections := make([]selection, len(ids))
	for i, id := range ids {
		if !s.canAct(id) {
			continue
		}
		victim, dist, found := s.findNearest(id)
		selections[i] = selection{victim: victim, dist: dist, found: found}
	}

	s.targets = make(map[types.EntityID]TargetInfo, len(ids))
	var hits []hit
	for i, id := range ids {
		attacker := s.ecs.Attackers[id]
		sel := selections[i]
		if !sel.found {
			attacker.Cooldown.Reset()
			continue
		}

		info := TargetInfo{Victim: sel.victim, Distance: sel.dist}
		if sel.dist < attacker.Range {
			info.InRange = true
			attacker.Cooldown.Tick(deltaTime)
			if attacker.Cooldown.Finished() {
				hits = append(hits, hit{attacker: id, victim: sel.victim, damage: attacker.Damage})
				attacker.Cooldown.Reset()
			}
		} else {
			attacker.Cooldown.Reset()
		}
		info.Fraction = attacker.Cooldown.Fraction()
		s.targets[id] = info
	}

	for _, h := range hits {
		ApplyDamage(s.ecs, h.victim, h.damage)
		logger.Log.WithFields(logrus.Fields{
			"component": "combat",
			"attacker":  h.attacker,
			"victim":    h.victim,
			"damage":    h.damage,
		}).Debug("hit")
	}
}

// Target returns the snapshot entry of an attacker. ok is false when the
// attacker had no valid prey this tick.
func (s *CombatSystem) Target(attacker types.EntityID) (TargetInfo, bool) {
	info, ok := s.targets[attacker]
	return info, ok
}

// Snapshot returns a copy of all current target entries.
func (s *CombatSystem) Snapshot() map[types.EntityID]TargetInfo {
	out := make(map[types.EntityID]TargetInfo, len(s.targets))
	for id, info := range s.targets {
		out[id] = info
	}
	return out
}

// Reset forgets the snapshot, used when the world is cleared.
func (s *CombatSystem) Reset() {
	s.targets = make(map[types.EntityID]TargetInfo)
}

// canAct: an attacker already at zero health is waiting for removal and does not fight.
func (s *CombatSystem) canAct(id types.EntityID) bool {
	if _, ok := s.ecs.Positions[id]; !ok {
		return false
	}
	if health, ok := s.ecs.Healths[id]; ok && !health.Alive() {
		return false
	}
	return true
}

// findNearest scans prey in ascending id order with a strict comparison, so
// the lowest id wins among equally distant candidates.
func (s *CombatSystem) findNearest(id types.EntityID) (types.EntityID, float64, bool) {
	attacker := s.ecs.Attackers[id]
	origin := s.ecs.Positions[id].Vec()

	var best types.EntityID
	bestDist := math.Inf(1)
	found := false
	for _, candidate := range s.ecs.Query(attacker.Prey) {
		if candidate == id {
			continue
		}
		health, ok := s.ecs.Healths[candidate]
		if !ok || !health.Alive() {
			continue
		}
		dist := origin.Dist(s.ecs.Positions[candidate].Vec())
		if dist < bestDist {
			best, bestDist, found = candidate, dist, true
		}
	}
	return best, bestDist, found
}

// VictimPosition resolves the snapshot victim of an attacker to a position.
func VictimPosition(ecs *entity.ECS, targets TargetSource, attacker types.EntityID) (geom.Vec2, TargetInfo, bool) {
	info, ok := targets.Target(attacker)
	if !ok {
		return geom.Vec2{}, info, false
	}
	pos, ok := ecs.Positions[info.Victim]
	if !ok {
		return geom.Vec2{}, info, false
	}
	return pos.Vec(), info, true
}
