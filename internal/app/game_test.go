package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"image"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duckslayer/internal/component"
	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/event"
	"duckslayer/internal/level"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/logger"
	"duckslayer/pkg/pathfind"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func duel() level.Level {
	return level.Level{
		Name: "duel",
		Cards: []level.Placement{
			{Kind: defs.CardNest, Position: geom.V(100, 100)},
			{Kind: defs.CardQuakka, Position: geom.V(100, 300)},
		},
		StartingDeck: []defs.CardKind{defs.CardWaterball, defs.CardFarmer},
		Win:          level.Condition{Kind: defs.CardQuakka, CountDead: 1},
		Lose:         level.Condition{Kind: defs.CardNest, CountDead: 1},
	}
}

func runUntilDecided(g *Game, seconds float64) {
	for i := 0; i < int(seconds/config.FixedTimestep) && !g.Progress().Terminal(); i++ {
		g.Update(config.FixedTimestep)
	}
}

func TestEnterLevelStartsPaused(t *testing.T) {
	g := NewGame(nil)
	assert.Equal(t, "", g.Message())
	require.NoError(t, g.EnterLevel(duel()))

	assert.True(t, g.Paused())
	assert.Equal(t, MessageStart, g.Message())
	assert.Equal(t, 1, g.ECS.Count(defs.CardNest))
	assert.Equal(t, 1, g.ECS.Count(defs.CardQuakka))
	assert.Equal(t, []defs.CardKind{defs.CardWaterball, defs.CardFarmer}, g.Deck())

	quakka := g.ECS.Query(defs.NewKindSet(defs.CardQuakka))[0]
	before := g.ECS.Positions[quakka].Vec()
	g.Update(config.FixedTimestep)
	assert.Equal(t, before, g.ECS.Positions[quakka].Vec(), "paused level does not simulate")
}

func TestDuelIsWon(t *testing.T) {
	g := NewGame(nil)
	var deaths []event.CardDeath
	g.EventDispatcher.Subscribe(event.CardDied, event.ListenerFunc(func(e event.Event) {
		deaths = append(deaths, e.Data.(event.CardDeath))
	}))
	require.NoError(t, g.EnterLevel(duel()))
	first := g.AttemptID()

	g.TogglePause()
	assert.False(t, g.Paused())
	assert.Equal(t, "", g.Message())
	runUntilDecided(g, 20)

	assert.Equal(t, component.Won, g.Progress())
	assert.Equal(t, MessageWon, g.Message())
	assert.True(t, g.Paused(), "a decided level pauses itself")
	require.Len(t, deaths, 1)
	assert.Equal(t, defs.CardQuakka, deaths[0].Kind)

	g.TogglePause()
	assert.True(t, g.Paused())

	require.NoError(t, g.Restart())
	assert.Equal(t, component.Ongoing, g.Progress())
	assert.NotEqual(t, first, g.AttemptID())
	assert.Equal(t, 1, g.ECS.Count(defs.CardQuakka))
	win, lose := g.Goals()
	assert.Equal(t, uint32(1), win.Remaining)
	assert.Equal(t, uint32(1), lose.Remaining)
}

func smallArena() pathfind.Obstacles {
	return pathfind.Obstacles{Bounds: geom.R(0, 0, 300, 300)}
}

func TestFarmerEscapesAndLevelIsLost(t *testing.T) {
	g := NewGameWithArena(nil, smallArena(), image.Pt(150, 30))
	lvl := level.Level{
		Name:  "escape",
		Cards: []level.Placement{{Kind: defs.CardFarmer, Position: geom.V(150, 200)}},
		Win:   level.Condition{Kind: defs.CardQuakka, CountDead: 1},
		Lose:  level.Condition{Kind: defs.CardFarmer, CountDead: 1},
	}
	require.NoError(t, g.EnterLevel(lvl))
	farmer := g.ECS.Query(defs.NewKindSet(defs.CardFarmer))[0]
	require.Contains(t, g.ECS.FollowPaths, farmer)

	g.TogglePause()
	g.Update(1.0)
	assert.InDelta(t, 197, g.ECS.Positions[farmer].Y, 1e-9, "frame time is clamped")
	assert.True(t, g.MovementSystem.Moving(farmer))

	runUntilDecided(g, 20)
	assert.Equal(t, component.Lost, g.Progress())
	assert.Equal(t, MessageLost, g.Message())
	assert.False(t, g.ECS.Exists(farmer))
}

func TestFarmerNextToRiverStaysOnLand(t *testing.T) {
	g := NewGame(nil)
	lvl := level.Level{
		Name:  "riverbank",
		Cards: []level.Placement{{Kind: defs.CardFarmer, Position: geom.V(100, 404.5)}},
		Win:   level.Condition{Kind: defs.CardQuakka, CountDead: 1},
		Lose:  level.Condition{Kind: defs.CardFarmer, CountDead: 1},
	}
	require.NoError(t, g.EnterLevel(lvl))
	farmer := g.ECS.Query(defs.NewKindSet(defs.CardFarmer))[0]

	g.TogglePause()
	for i := 0; i < 180 && g.ECS.Exists(farmer); i++ {
		g.Update(config.FixedTimestep)
		pos := g.ECS.Positions[farmer].Vec()
		require.Falsef(t, g.Arena.Blocked(pos), "tick %d: farmer at %v is in the river", i, pos)
	}
}

func TestLevelLogFields(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	logger.InitWithOutput(&buf)
	t.Cleanup(logger.Init)

	g := NewGame(nil)
	require.NoError(t, g.EnterLevel(duel()))

	found := false
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		if line["msg"] != "level entered" {
			continue
		}
		found = true
		assert.Equal(t, "duel", line["level_name"])
		assert.Equal(t, "info", line["level"])
		assert.NotContains(t, line, "fields.level")
	}
	assert.True(t, found)
}

func TestSpawnWithoutPathIsRefused(t *testing.T) {
	// выход окружён рекой
	arena := pathfind.Obstacles{
		Bounds: geom.R(0, 0, 300, 300),
		Rivers: []geom.Rect{
			geom.R(100, 100, 200, 115), geom.R(100, 185, 200, 200),
			geom.R(100, 100, 115, 200), geom.R(185, 100, 200, 200),
		},
	}
	g := NewGameWithArena(nil, arena, image.Pt(150, 150))
	lvl := level.Level{
		Name:         "closed",
		StartingDeck: []defs.CardKind{defs.CardFarmer},
		Win:          level.Condition{Kind: defs.CardQuakka, CountDead: 1},
		Lose:         level.Condition{Kind: defs.CardFarmer, CountDead: 1},
	}
	require.NoError(t, g.EnterLevel(lvl))

	_, err := g.PlaceFromDeck(0, geom.V(30, 30))
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
	assert.Empty(t, g.ECS.IDs())
	assert.Empty(t, g.ECS.FollowPaths)
	assert.Equal(t, []defs.CardKind{defs.CardFarmer}, g.Deck(), "failed drop keeps the card")

	lvl.Cards = []level.Placement{{Kind: defs.CardFarmer, Position: geom.V(30, 30)}}
	assert.ErrorIs(t, g.EnterLevel(lvl), pathfind.ErrNoPath)
	_, loaded := g.Level()
	assert.False(t, loaded)
}

func TestPlaceFromDeck(t *testing.T) {
	g := NewGame(nil)
	_, err := g.PlaceFromDeck(0, geom.V(10, 10))
	assert.ErrorIs(t, err, ErrNoLevel)

	require.NoError(t, g.EnterLevel(duel()))
	_, err = g.PlaceFromDeck(5, geom.V(10, 10))
	assert.ErrorIs(t, err, ErrCardNotInDeck)
	_, err = g.PlaceFromDeck(0, geom.V(100, 380))
	assert.ErrorIs(t, err, ErrBlockedPlacement)
	assert.Len(t, g.Deck(), 2)

	require.True(t, g.SelectSlot(1))
	id, err := g.PlaceSelected(geom.V(600, 700))
	require.NoError(t, err)
	assert.Equal(t, defs.CardFarmer, g.ECS.Kind(id))
	assert.Equal(t, []defs.CardKind{defs.CardWaterball}, g.Deck())
	assert.Equal(t, 0, g.SelectedSlot())

	ball, err := g.PlaceSelected(geom.V(100, 300))
	require.NoError(t, err)
	assert.Contains(t, g.ECS.Detonators, ball)
	assert.Empty(t, g.Deck())
}

func TestSnapshot(t *testing.T) {
	g := NewGame(nil)
	_, err := g.Snapshot()
	assert.ErrorIs(t, err, ErrNoLevel)

	require.NoError(t, g.EnterLevel(duel()))
	_, err = g.PlaceFromDeck(0, geom.V(500, 500))
	require.NoError(t, err)

	snap, err := g.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, duel().Cards, snap.Cards, "waterballs are not saved")
	assert.Equal(t, []defs.CardKind{defs.CardFarmer}, snap.StartingDeck)
	assert.Equal(t, duel().Win, snap.Win)
	assert.NoError(t, snap.Validate())
}

func TestExitLevel(t *testing.T) {
	g := NewGame(nil)
	require.NoError(t, g.EnterLevel(duel()))
	g.ExitLevel()
	assert.Empty(t, g.ECS.IDs())
	assert.Empty(t, g.Deck())
	assert.Equal(t, "", g.Message())
	assert.ErrorIs(t, g.Restart(), ErrNoLevel)

	g.TogglePause()
	assert.True(t, g.Paused())
}

func TestDeck(t *testing.T) {
	d := NewDeck([]defs.CardKind{defs.CardNest, defs.CardQuakka, defs.CardFarmer})
	assert.True(t, d.Select(2))
	assert.False(t, d.Select(3))
	assert.True(t, d.Remove(2))
	assert.Equal(t, 1, d.Selected())
	d.Push(defs.CardWaterball)
	k, ok := d.At(2)
	assert.True(t, ok)
	assert.Equal(t, defs.CardWaterball, k)
	assert.False(t, d.Remove(-1))
	assert.Equal(t, 3, d.Len())
}
