// internal/system/utils.go
package system

import (
	"duckslayer/internal/entity"
	"duckslayer/internal/types"
	"duckslayer/pkg/geom"
)

// ApplyDamage наносит урон сущности. Сущности без здоровья и уже мёртвые
// игнорируются: жертва могла погибнуть между выбором и ударом.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, ok := ecs.Healths[entityID]
	if !ok || !health.Alive() {
		return false
	}
	health.Damage(damage)
	return true
}

// stepTowards moves from towards to by at most step, never overshooting.
// It returns the new position and the distance actually travelled.
func stepTowards(from, to geom.Vec2, step float64) (geom.Vec2, float64) {
	if step <= 0 {
		return from, 0
	}
	dist := from.Dist(to)
	if dist <= step {
		return to, dist
	}
	return from.Add(to.Sub(from).NormalizeOrZero().Scale(step)), step
}
