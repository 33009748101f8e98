// internal/app/spawn.go
package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"duckslayer/internal/component"
	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/event"
	"duckslayer/internal/types"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/pathfind"
)

// SpawnCard creates a unit with the components its card needs. Farmers get a
// route to the exit; if there is none the unit is removed again and
// pathfind.ErrNoPath is returned, so no farmer ever stands without a path.
func (g *Game) SpawnCard(kind defs.CardKind, pos geom.Vec2) (types.EntityID, error) {
	def, ok := g.Cards.Get(kind)
	if !ok || !kind.Valid() {
		return 0, fmt.Errorf("%w: %s", defs.ErrUnknownCard, kind)
	}

	id := g.ECS.NewUnit(kind, component.Position{X: pos.X, Y: pos.Y})
	if err := g.attachComponents(id, kind, def, pos); err != nil {
		g.ECS.Destroy(id)
		g.log.WithFields(logrus.Fields{"card": kind, "x": pos.X, "y": pos.Y}).WithError(err).Warn("spawn refused")
		return 0, err
	}

	g.log.WithFields(logrus.Fields{"entity": id, "card": kind}).Debug("card spawned")
	g.EventDispatcher.Dispatch(event.Event{Type: event.CardSpawned, Data: event.CardSpawn{ID: id, Kind: kind, Position: pos}})
	return id, nil
}

func (g *Game) attachComponents(id types.EntityID, kind defs.CardKind, def defs.CardDefinition, pos geom.Vec2) error {
	if def.Health > 0 {
		g.ECS.Healths[id] = component.NewHealth(def.Health)
	}

	if def.Radius > 0 {
		delay, err := component.NewCooldown(def.Delay)
		if err != nil {
			return fmt.Errorf("%s delay: %w", kind, err)
		}
		g.ECS.Detonators[id] = &component.Detonator{
			Radius: def.Radius,
			Damage: def.Damage,
			Delay:  delay,
			Prey:   def.PreySet(),
		}
	} else if def.Damage > 0 {
		cooldown, err := component.NewCooldown(def.Cooldown)
		if err != nil {
			return fmt.Errorf("%s cooldown: %w", kind, err)
		}
		g.ECS.Attackers[id] = &component.Attacker{
			Damage:   def.Damage,
			Range:    def.Range,
			Cooldown: cooldown,
			Prey:     def.PreySet(),
		}
	}

	if def.Speed <= 0 {
		return nil
	}
	if kind == defs.CardFarmer {
		waypoints, err := pathfind.FindPath(pos, g.Exit, g.Arena.Blocked, pathfind.WithResolution(config.AStarResolution))
		if err != nil {
			return err
		}
		g.ECS.FollowPaths[id] = &component.FollowPath{Goal: g.Exit, Waypoints: waypoints, Speed: def.Speed}
	} else {
		g.ECS.Chasers[id] = &component.Chaser{Speed: def.Speed}
	}
	g.ECS.Motions[id] = &component.Motion{}
	g.ECS.WalkAnims[id] = &component.WalkAnim{}
	return nil
}

// PlaceFromDeck drops the card in deck slot onto the map and removes it from
// the deck. The deck is left untouched when the drop fails.
func (g *Game) PlaceFromDeck(slot int, pos geom.Vec2) (types.EntityID, error) {
	if g.level == nil {
		return 0, ErrNoLevel
	}
	kind, ok := g.deck.At(slot)
	if !ok {
		return 0, fmt.Errorf("%w: slot %d", ErrCardNotInDeck, slot)
	}
	if g.Arena.Blocked(pos) {
		return 0, fmt.Errorf("%w: (%.0f, %.0f)", ErrBlockedPlacement, pos.X, pos.Y)
	}
	id, err := g.SpawnCard(kind, pos)
	if err != nil {
		return 0, err
	}
	g.deck.Remove(slot)
	return id, nil
}
