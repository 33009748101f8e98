package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duckslayer/internal/component"
	"duckslayer/internal/defs"
	"duckslayer/internal/entity"
)

func TestWaterballHitsEveryPreyInRadius(t *testing.T) {
	ecs := entity.NewECS()
	ball := ecs.NewUnit(defs.CardWaterball, component.Position{X: 100, Y: 100})
	ecs.Detonators[ball] = &component.Detonator{
		Radius: 50,
		Damage: 30,
		Delay:  component.MustCooldown(0.125),
		Prey:   defs.NewKindSet(defs.CardQuakka),
	}
	near := addUnit(ecs, defs.CardQuakka, 100, 140, 100)
	edge := addUnit(ecs, defs.CardQuakka, 150, 100, 100)
	outside := addUnit(ecs, defs.CardQuakka, 151, 100, 100)
	nest := addUnit(ecs, defs.CardNest, 100, 100, 100)

	sys := NewAreaAttackSystem(ecs)
	sys.Update(0.0625)
	assert.True(t, ecs.Exists(ball))
	assert.Equal(t, 100.0, ecs.Healths[near].Current)

	sys.Update(0.0625)
	assert.False(t, ecs.Exists(ball))
	assert.Equal(t, 70.0, ecs.Healths[near].Current)
	assert.Equal(t, 70.0, ecs.Healths[edge].Current)
	assert.Equal(t, 100.0, ecs.Healths[outside].Current)
	assert.Equal(t, 100.0, ecs.Healths[nest].Current)
}

func TestWaterballDisappearsWithoutTargets(t *testing.T) {
	ecs := entity.NewECS()
	ball := ecs.NewUnit(defs.CardWaterball, component.Position{})
	ecs.Detonators[ball] = &component.Detonator{Radius: 50, Damage: 30, Delay: component.MustCooldown(0.1)}
	NewAreaAttackSystem(ecs).Update(1)
	assert.False(t, ecs.Exists(ball))
	assert.Empty(t, ecs.Detonators)
}
