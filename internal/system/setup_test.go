package system

import (
	"os"
	"testing"

	"duckslayer/internal/component"
	"duckslayer/internal/defs"
	"duckslayer/internal/entity"
	"duckslayer/internal/types"
	"duckslayer/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func addUnit(ecs *entity.ECS, kind defs.CardKind, x, y, hp float64) types.EntityID {
	id := ecs.NewUnit(kind, component.Position{X: x, Y: y})
	ecs.Healths[id] = component.NewHealth(hp)
	return id
}

func addAttacker(ecs *entity.ECS, id types.EntityID, damage, rng, cooldown float64, prey ...defs.CardKind) *component.Attacker {
	a := &component.Attacker{
		Damage:   damage,
		Range:    rng,
		Cooldown: component.MustCooldown(cooldown),
		Prey:     defs.NewKindSet(prey...),
	}
	ecs.Attackers[id] = a
	return a
}
