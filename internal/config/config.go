// internal/config/config.go
package config

import (
	"image"
	"image/color"

	"duckslayer/pkg/geom"
	"duckslayer/pkg/pathfind"
)

const (
	ScreenWidth  = 1366
	ScreenHeight = 768
	DeckWidth    = 136 // полоса колоды справа
	MapWidth     = ScreenWidth - DeckWidth
	MapHeight    = ScreenHeight

	FixedTimestep = 1.0 / 60.0
	MaxDeltaTime  = 0.06

	AStarResolution = pathfind.DefaultResolution
	PathTolerance   = 1.0 // distance at which a waypoint counts as reached
	ExitTolerance   = 1.0 // a farmer closer than this to the exit has escaped

	WalkAnimSpeed           = 4.0
	WalkAnimLength          = 1.0 / 40.0 // fraction of a full turn
	WalkAnimCancelThreshold = 0.05

	HealthbarWidth  = 60.0
	HealthbarHeight = 8.0
	HealthbarOffset = 40.0

	EggWidth  = 25.0
	EggHeight = 32.5

	TerminalCellWidth  = 12.0 // world units per terminal column
	TerminalCellHeight = 24.0 // world units per terminal row
	ClickCooldown      = 150  // ms
	DebugEnvVar        = "DUCKSLAYER_DEBUG"
)

const (
	riverTop    = 364.0
	riverBottom = 404.0
)

var (
	EntireMap   = geom.R(0, 0, MapWidth, MapHeight)
	LeftRiver   = geom.R(0, riverTop, 300, riverBottom)
	MiddleRiver = geom.R(390, riverTop, 840, riverBottom)
	RightRiver  = geom.R(930, riverTop, MapWidth, riverBottom)

	// FarmerExit is where farmers walk to. Reaching it kills the farmer.
	FarmerExit = image.Pt(615, 30)
)

// Arena returns the obstacle set of the standard map.
func Arena() pathfind.Obstacles {
	return pathfind.Obstacles{
		Bounds: EntireMap,
		Rivers: []geom.Rect{LeftRiver, MiddleRiver, RightRiver},
	}
}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GrassColor       = color.RGBA{70, 120, 70, 255}
	RiverColor       = color.RGBA{60, 110, 200, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	DeckColor        = color.RGBA{40, 40, 55, 255}
	DeckSelectColor  = color.RGBA{240, 240, 240, 255}
	HealthbarBack    = color.RGBA{60, 0, 0, 255}
	HealthbarColor   = color.RGBA{220, 40, 40, 255}
	PathDebugColor   = color.RGBA{255, 255, 0, 255}
	RangeDebugColor  = color.RGBA{219, 39, 119, 255}
	EggColor         = color.RGBA{250, 250, 240, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	MessageBackColor = color.RGBA{0, 0, 0, 204}
	PausedColor      = color.RGBA{200, 60, 60, 255}
	RunningColor     = color.RGBA{60, 200, 90, 255}
)
