package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duckslayer/pkg/geom"
)

func TestArenaRiversHaveBridges(t *testing.T) {
	arena := Arena()
	y := (riverTop + riverBottom) / 2
	assert.True(t, arena.Blocked(geom.V(100, y)))
	assert.False(t, arena.Blocked(geom.V(345, y)), "left bridge")
	assert.False(t, arena.Blocked(geom.V(885, y)), "right bridge")
	assert.True(t, arena.Blocked(geom.V(-1, 10)))
}

func TestFarmerExitIsWalkable(t *testing.T) {
	arena := Arena()
	assert.False(t, arena.Blocked(geom.V(float64(FarmerExit.X), float64(FarmerExit.Y))))
}
