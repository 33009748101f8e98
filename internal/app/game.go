// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"duckslayer/internal/component"
	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/entity"
	"duckslayer/internal/event"
	"duckslayer/internal/interfaces"
	"duckslayer/internal/level"
	"duckslayer/internal/system"
	"duckslayer/internal/types"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/logger"
	"duckslayer/pkg/pathfind"
)

var (
	// ErrNoLevel is returned by operations that need a running level.
	ErrNoLevel = errors.New("no level loaded")
	// ErrCardNotInDeck is returned for an empty or out-of-range deck slot.
	ErrCardNotInDeck = errors.New("card not in deck")
	// ErrBlockedPlacement is returned for a drop off the map or in a river.
	ErrBlockedPlacement = errors.New("placement blocked")
)

const (
	MessageStart = "[Space] to start level"
	MessageWon   = "You won! :)"
	MessageLost  = "You lost :("
)

// Game holds the session state: world, systems, deck and level progress.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Cards           defs.CardConsts
	Arena           pathfind.Obstacles
	Exit            image.Point

	ExitSystem       *system.ExitSystem
	CombatSystem     *system.CombatSystem
	AreaAttackSystem *system.AreaAttackSystem
	MovementSystem   *system.MovementSystem
	WalkAnimSystem   *system.WalkAnimSystem
	DeathSystem      *system.DeathSystem
	ProgressSystem   *system.ProgressSystem

	level     *level.Level
	deck      *Deck
	attemptID uuid.UUID
	isPaused  bool
	gameTime  float64
	log       *logrus.Entry
}

// NewGame builds a session on the standard arena. A nil cards table means
// built-in tuning.
func NewGame(cards defs.CardConsts) *Game {
	return NewGameWithArena(cards, config.Arena(), config.FarmerExit)
}

// NewGameWithArena is NewGame with custom geometry, mostly for tests.
func NewGameWithArena(cards defs.CardConsts, arena pathfind.Obstacles, exit image.Point) *Game {
	if cards == nil {
		cards = defs.DefaultCardConsts()
	}
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Cards:           cards,
		Arena:           arena,
		Exit:            exit,
		deck:            NewDeck(nil),
		isPaused:        true,
	}
	g.ExitSystem = system.NewExitSystem(ecs, exit)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.AreaAttackSystem = system.NewAreaAttackSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs, g.CombatSystem)
	g.WalkAnimSystem = system.NewWalkAnimSystem(ecs)
	g.DeathSystem = system.NewDeathSystem(ecs, eventDispatcher)
	g.ProgressSystem = system.NewProgressSystem(eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LevelWon, listener)
	eventDispatcher.Subscribe(event.LevelLost, listener)

	g.log = logger.Log.WithField("component", "game")
	return g
}

// GameEventListener pauses the level once it is decided.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelWon, event.LevelLost:
		l.game.isPaused = true
		l.game.log.WithFields(logrus.Fields{
			"attempt": l.game.attemptID,
			"result":  e.Data,
			"time":    l.game.gameTime,
		}).Info("level finished")
	}
}

// EnterLevel clears the world and starts a fresh, paused attempt of lvl.
func (g *Game) EnterLevel(lvl level.Level) error {
	if err := lvl.ValidateIn(g.Arena); err != nil {
		return err
	}
	lvl = lvl.Clone()

	g.clearWorld()
	g.level = &lvl
	g.attemptID = uuid.New()
	g.log = logger.Log.WithFields(logrus.Fields{"component": "game", "level_name": lvl.Name, "attempt": g.attemptID})

	g.ProgressSystem.Reset(
		component.DeathGoal{Kind: lvl.Win.Kind, Remaining: lvl.Win.CountDead},
		component.DeathGoal{Kind: lvl.Lose.Kind, Remaining: lvl.Lose.CountDead},
	)
	for _, p := range lvl.Cards {
		if _, err := g.SpawnCard(p.Kind, p.Position); err != nil {
			g.clearWorld()
			g.level = nil
			return fmt.Errorf("level %q: spawn %s: %w", lvl.Name, p.Kind, err)
		}
	}
	g.deck = NewDeck(lvl.StartingDeck)
	g.isPaused = true

	g.log.WithField("units", len(lvl.Cards)).Info("level entered")
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: lvl.Name})
	return nil
}

// Restart replays the current level from its initial state.
func (g *Game) Restart() error {
	if g.level == nil {
		return ErrNoLevel
	}
	return g.EnterLevel(*g.level)
}

// ExitLevel unloads the level.
func (g *Game) ExitLevel() {
	g.clearWorld()
	g.level = nil
	g.deck = NewDeck(nil)
	g.isPaused = true
	g.ProgressSystem.Reset(component.DeathGoal{}, component.DeathGoal{})
}

func (g *Game) clearWorld() {
	g.ECS.Clear()
	g.CombatSystem.Reset()
	g.gameTime = 0
}

// Update advances the simulation by one frame. Systems run in a fixed order:
// exits, combat, explosions, movement, animation, deaths, and finally the
// progress goals through the CardDied events sent by DeathSystem.
func (g *Game) Update(deltaTime float64) {
	if g.level == nil || g.isPaused || g.ProgressSystem.Progress().Terminal() {
		return
	}
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.gameTime += deltaTime

	g.ExitSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.AreaAttackSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.WalkAnimSystem.Update(deltaTime)
	g.DeathSystem.Update(deltaTime)
}

// TogglePause switches between running and paused. A decided level stays paused.
func (g *Game) TogglePause() {
	if g.level == nil || g.ProgressSystem.Progress().Terminal() {
		return
	}
	g.isPaused = !g.isPaused
	g.log.WithField("paused", g.isPaused).Debug("pause toggled")
}

func (g *Game) Paused() bool { return g.isPaused }

func (g *Game) Progress() component.GameProgress { return g.ProgressSystem.Progress() }

// Goals returns the remaining win and lose goals.
func (g *Game) Goals() (win, lose component.DeathGoal) {
	return g.ProgressSystem.Win(), g.ProgressSystem.Lose()
}

// Message is the banner text for the current session state.
func (g *Game) Message() string {
	if g.level == nil {
		return ""
	}
	switch g.Progress() {
	case component.Won:
		return MessageWon
	case component.Lost:
		return MessageLost
	}
	if g.isPaused {
		return MessageStart
	}
	return ""
}

// AttemptID identifies the current level attempt; it changes on every restart.
func (g *Game) AttemptID() uuid.UUID { return g.attemptID }

// Level returns the loaded level, if any.
func (g *Game) Level() (level.Level, bool) {
	if g.level == nil {
		return level.Level{}, false
	}
	return g.level.Clone(), true
}

func (g *Game) GameTime() float64 { return g.gameTime }

func (g *Game) World() *entity.ECS { return g.ECS }

func (g *Game) Targets() system.TargetSource { return g.CombatSystem }

// Deck returns the remaining deck cards in slot order.
func (g *Game) Deck() []defs.CardKind { return g.deck.Cards() }

// Snapshot captures the current world as a level: units become placements
// and the remaining deck becomes the starting deck. Goals are kept from the
// loaded level.
func (g *Game) Snapshot() (level.Level, error) {
	if g.level == nil {
		return level.Level{}, ErrNoLevel
	}
	snap := level.Level{
		Name:         g.level.Name,
		StartingDeck: g.deck.Cards(),
		Win:          g.level.Win,
		Lose:         g.level.Lose,
	}
	for _, id := range g.ECS.IDs() {
		kind := g.ECS.Kind(id)
		// водяной шар живёт доли секунды и в уровень не попадает
		if kind == defs.CardWaterball {
			continue
		}
		snap.Cards = append(snap.Cards, level.Placement{Kind: kind, Position: g.ECS.Positions[id].Vec()})
	}
	return snap, nil
}

// SelectedSlot is the deck slot the viewer will place on the next click.
func (g *Game) SelectedSlot() int { return g.deck.Selected() }

// SelectSlot chooses a deck slot; false for an empty slot.
func (g *Game) SelectSlot(i int) bool { return g.deck.Select(i) }

// PlaceSelected places the selected deck card at pos.
func (g *Game) PlaceSelected(pos geom.Vec2) (types.EntityID, error) {
	return g.PlaceFromDeck(g.deck.Selected(), pos)
}

var _ interfaces.Session = (*Game)(nil)
