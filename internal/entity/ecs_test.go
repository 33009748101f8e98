package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duckslayer/internal/component"
	"duckslayer/internal/defs"
	"duckslayer/internal/types"
)

func TestQueryByKindIsOrdered(t *testing.T) {
	ecs := NewECS()
	n1 := ecs.NewUnit(defs.CardNest, component.Position{X: 1})
	q1 := ecs.NewUnit(defs.CardQuakka, component.Position{X: 2})
	f1 := ecs.NewUnit(defs.CardFarmer, component.Position{X: 3})
	n2 := ecs.NewUnit(defs.CardNest, component.Position{X: 4})

	assert.Equal(t, []types.EntityID{n1, f1, n2}, ecs.Query(defs.NewKindSet(defs.CardFarmer, defs.CardNest)))
	assert.Equal(t, []types.EntityID{q1}, ecs.Query(defs.NewKindSet(defs.CardQuakka)))
	assert.Empty(t, ecs.Query(defs.NewKindSet(defs.CardWaterball)))
	assert.Equal(t, 2, ecs.Count(defs.CardNest))
	assert.Equal(t, 4.0, ecs.Positions[n2].X)
}

func TestDestroyRemovesEverything(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewUnit(defs.CardQuakka, component.Position{})
	ecs.Healths[id] = component.NewHealth(10)
	ecs.Attackers[id] = &component.Attacker{}
	ecs.Motions[id] = &component.Motion{}

	ecs.Destroy(id)
	assert.False(t, ecs.Exists(id))
	assert.Empty(t, ecs.Healths)
	assert.Empty(t, ecs.Attackers)
	assert.Empty(t, ecs.Motions)
	assert.Empty(t, ecs.Query(defs.NewKindSet(defs.CardQuakka)))
	assert.Equal(t, defs.CardNone, ecs.Kind(id))
}

func TestClearKeepsIDsIncreasing(t *testing.T) {
	ecs := NewECS()
	first := ecs.NewUnit(defs.CardNest, component.Position{})
	ecs.Clear()
	second := ecs.NewUnit(defs.CardNest, component.Position{})
	assert.Greater(t, second, first)
	assert.Equal(t, []types.EntityID{second}, ecs.IDs())
}

func TestSortedKeys(t *testing.T) {
	m := map[types.EntityID]int{5: 0, 2: 0, 9: 0}
	assert.Equal(t, []types.EntityID{2, 5, 9}, SortedKeys(m))
}
