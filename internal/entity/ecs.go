// internal/entity/ecs.go
package entity

import (
	"sort"

	"duckslayer/internal/component"
	"duckslayer/internal/defs"
	"duckslayer/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Units       map[types.EntityID]*component.Unit
	Positions   map[types.EntityID]*component.Position
	Healths     map[types.EntityID]*component.Health
	Attackers   map[types.EntityID]*component.Attacker
	Chasers     map[types.EntityID]*component.Chaser
	FollowPaths map[types.EntityID]*component.FollowPath
	Detonators  map[types.EntityID]*component.Detonator
	Motions     map[types.EntityID]*component.Motion
	WalkAnims   map[types.EntityID]*component.WalkAnim

	// вторичный индекс по типу карты
	byKind map[defs.CardKind]map[types.EntityID]struct{}
}

func NewECS() *ECS {
	ecs := &ECS{NextID: 1}
	ecs.Clear()
	return ecs
}

// Clear removes every entity. IDs keep increasing so stale handles never alias.
func (ecs *ECS) Clear() {
	ecs.Units = make(map[types.EntityID]*component.Unit)
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Healths = make(map[types.EntityID]*component.Health)
	ecs.Attackers = make(map[types.EntityID]*component.Attacker)
	ecs.Chasers = make(map[types.EntityID]*component.Chaser)
	ecs.FollowPaths = make(map[types.EntityID]*component.FollowPath)
	ecs.Detonators = make(map[types.EntityID]*component.Detonator)
	ecs.Motions = make(map[types.EntityID]*component.Motion)
	ecs.WalkAnims = make(map[types.EntityID]*component.WalkAnim)
	ecs.byKind = make(map[defs.CardKind]map[types.EntityID]struct{})
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// NewUnit allocates an entity tagged with a card kind and placed at pos.
func (ecs *ECS) NewUnit(kind defs.CardKind, pos component.Position) types.EntityID {
	id := ecs.NewEntity()
	ecs.Units[id] = &component.Unit{Kind: kind}
	ecs.Positions[id] = &pos
	set, ok := ecs.byKind[kind]
	if !ok {
		set = make(map[types.EntityID]struct{})
		ecs.byKind[kind] = set
	}
	set[id] = struct{}{}
	return id
}

// Destroy removes an entity and all of its components.
func (ecs *ECS) Destroy(id types.EntityID) {
	if unit, ok := ecs.Units[id]; ok {
		delete(ecs.byKind[unit.Kind], id)
	}
	delete(ecs.Units, id)
	delete(ecs.Positions, id)
	delete(ecs.Healths, id)
	delete(ecs.Attackers, id)
	delete(ecs.Chasers, id)
	delete(ecs.FollowPaths, id)
	delete(ecs.Detonators, id)
	delete(ecs.Motions, id)
	delete(ecs.WalkAnims, id)
}

// Exists reports whether id is a live entity.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Units[id]
	return ok
}

// Kind returns the card kind of id, or CardNone.
func (ecs *ECS) Kind(id types.EntityID) defs.CardKind {
	if unit, ok := ecs.Units[id]; ok {
		return unit.Kind
	}
	return defs.CardNone
}

// Query returns every unit whose kind is in kinds, in ascending id order.
func (ecs *ECS) Query(kinds defs.KindSet) []types.EntityID {
	var ids []types.EntityID
	for _, kind := range kinds.Kinds() {
		for id := range ecs.byKind[kind] {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)
	return ids
}

// Count returns the number of live units of a kind.
func (ecs *ECS) Count(kind defs.CardKind) int {
	return len(ecs.byKind[kind])
}

// IDs returns all live unit ids in ascending order.
func (ecs *ECS) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Units))
	for id := range ecs.Units {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// SortedKeys returns the keys of a component map in ascending order, so
// systems iterate deterministically.
func SortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
