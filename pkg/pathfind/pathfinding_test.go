package pathfind

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duckslayer/pkg/geom"
)

// wallScenario splits start (0,0) and goal (100,100) with a wall attached to the
// left edge of the map. Edges sit half-way between lattice lines.
func wallScenario() (Obstacles, geom.Rect) {
	wall := geom.R(-60, 37.5, 67.5, 52.5)
	return Obstacles{
		Bounds: geom.R(-52.5, -52.5, 202.5, 202.5),
		Rivers: []geom.Rect{wall},
	}, wall
}

func assertSegmentsClear(t *testing.T, path []geom.Vec2, blocked Blocked) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		for k := 0; k <= 30; k++ {
			p := a.Lerp(b, float64(k)/30)
			assert.Falsef(t, blocked(p), "segment %d (%v -> %v) crosses blocked point %v", i, a, b, p)
		}
	}
}

func TestFindPathRoutesAroundWall(t *testing.T) {
	obstacles, wall := wallScenario()
	goal := image.Pt(100, 100)

	path, err := FindPath(geom.V(0, 0), goal, obstacles.Blocked)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 3)

	for _, wp := range path {
		assert.Falsef(t, wall.Contains(wp), "waypoint %v inside the wall", wp)
	}
	assertSegmentsClear(t, path, obstacles.Blocked)

	last := path[len(path)-1]
	assert.LessOrEqual(t, last.Dist(geom.V(100, 100)), float64(DefaultResolution))
	assert.Equal(t, geom.V(0, 0), path[0])

	// Going around the free end of the wall means passing x > 67.5 somewhere
	// at the wall's height.
	crossed := false
	for _, wp := range path {
		if wp.Y >= 37.5 && wp.Y <= 52.5 {
			crossed = true
			assert.Greater(t, wp.X, 67.5)
		}
	}
	assert.True(t, crossed)
}

func TestFindPathStartNextToRiver(t *testing.T) {
	obstacles := Obstacles{
		Bounds: geom.R(0, 0, 1230, 768),
		Rivers: []geom.Rect{geom.R(0, 364, 300, 404), geom.R(390, 364, 840, 404)},
	}
	start := geom.V(100, 404.5)
	require.False(t, obstacles.Blocked(start))
	require.True(t, obstacles.Blocked(toVec(Snap(start, DefaultResolution))), "snapped corner sits in the river")

	path, err := FindPath(start, image.Pt(615, 30), obstacles.Blocked)
	require.NoError(t, err)
	assert.Equal(t, geom.V(105, 405), path[0], "nearest free corner of the start cell")
	assertSegmentsClear(t, append([]geom.Vec2{start}, path...), obstacles.Blocked)
}

func TestFindPathDetectsThinWall(t *testing.T) {
	wall := geom.R(-60, 20, 150, 22)
	obstacles := Obstacles{
		Bounds: geom.R(-52.5, -52.5, 202.5, 202.5),
		Rivers: []geom.Rect{wall},
	}

	path, err := FindPath(geom.V(0, 0), image.Pt(0, 100), obstacles.Blocked)
	require.NoError(t, err)
	assertSegmentsClear(t, path, obstacles.Blocked)
	assert.False(t, segmentClear(geom.V(0, 15), geom.V(0, 30), obstacles.Blocked))
}

func TestFindPathIsDeterministic(t *testing.T) {
	obstacles, _ := wallScenario()
	first, err := FindPath(geom.V(3, 7), image.Pt(100, 100), obstacles.Blocked)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := FindPath(geom.V(3, 7), image.Pt(100, 100), obstacles.Blocked)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFindPathEnclosedGoal(t *testing.T) {
	obstacles := Obstacles{
		Bounds: geom.R(-97.5, -97.5, 307.5, 307.5),
		Rivers: []geom.Rect{
			geom.R(97.5, 97.5, 202.5, 112.5),
			geom.R(97.5, 187.5, 202.5, 202.5),
			geom.R(97.5, 97.5, 112.5, 202.5),
			geom.R(187.5, 97.5, 202.5, 202.5),
		},
	}

	path, err := FindPath(geom.V(0, 0), image.Pt(150, 150), obstacles.Blocked)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPath))
	assert.Nil(t, path)
}

func TestFindPathSearchLimit(t *testing.T) {
	open := func(geom.Vec2) bool { return false }
	path, err := FindPath(geom.V(0, 0), image.Pt(3000, 3000), open, WithMaxExpanded(10))
	assert.ErrorIs(t, err, ErrNoPath)
	assert.Nil(t, path)
}

func TestFindPathStartAtGoal(t *testing.T) {
	path, err := FindPath(geom.V(101, 99), image.Pt(100, 100), nil)
	require.NoError(t, err)
	assert.Equal(t, []geom.Vec2{geom.V(90, 90)}, path)
}

func TestFindPathWithoutDiagonals(t *testing.T) {
	obstacles, _ := wallScenario()
	path, err := FindPath(geom.V(0, 0), image.Pt(100, 100), obstacles.Blocked, WithoutDiagonals())
	require.NoError(t, err)
	for i := 1; i < len(path); i++ {
		d := path[i].Sub(path[i-1])
		moved := 0
		if d.X != 0 {
			moved++
		}
		if d.Y != 0 {
			moved++
		}
		assert.Equal(t, 1, moved, "step %d is not orthogonal: %v", i, d)
	}
	assertSegmentsClear(t, path, obstacles.Blocked)
}

func TestFindPathCustomResolutionAndHeuristic(t *testing.T) {
	obstacles, _ := wallScenario()
	path, err := FindPath(geom.V(0, 0), image.Pt(100, 100), obstacles.Blocked,
		WithResolution(DefaultResolution), WithHeuristic(Octile(DefaultResolution)))
	require.NoError(t, err)
	assert.LessOrEqual(t, path[len(path)-1].Dist(geom.V(100, 100)), float64(DefaultResolution))
	assertSegmentsClear(t, path, obstacles.Blocked)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, image.Pt(0, 0), Snap(geom.V(14.9, 0.1), 15))
	assert.Equal(t, image.Pt(-15, -15), Snap(geom.V(-1, -0.5), 15))
	assert.Equal(t, image.Pt(30, 15), Snap(geom.V(30, 29.99), 15))
}

func TestObstaclesBlocked(t *testing.T) {
	obstacles, wall := wallScenario()
	assert.True(t, obstacles.Blocked(wall.Center()))
	assert.True(t, obstacles.Blocked(geom.V(500, 0)))
	assert.False(t, obstacles.Blocked(geom.V(0, 0)))
	assert.True(t, obstacles.InRiver(wall.Center()))
	assert.False(t, obstacles.InRiver(geom.V(500, 0)))
}
