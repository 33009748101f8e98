package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrZero(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.NormalizeOrZero())
	n := V(3, 4).NormalizeOrZero()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.Equal(t, Vec2{}, V(math.NaN(), 1).NormalizeOrZero())
}

func TestRectContainsInclusive(t *testing.T) {
	r := R(10, 10, 0, 0)
	assert.Equal(t, V(0, 0), r.Min)
	assert.True(t, r.Contains(V(0, 0)))
	assert.True(t, r.Contains(V(10, 10)))
	assert.True(t, r.Contains(V(5, 5)))
	assert.False(t, r.Contains(V(10.01, 5)))
	assert.Equal(t, V(5, 5), r.Center())
}

func TestDist(t *testing.T) {
	assert.InDelta(t, 5.0, V(0, 0).Dist(V(3, 4)), 1e-9)
}

func TestRotatedCorners(t *testing.T) {
	flat := RotatedCorners(V(10, 10), 4, 2, 0)
	assert.Equal(t, [4]Vec2{{8, 9}, {12, 9}, {12, 11}, {8, 11}}, flat)

	turned := RotatedCorners(V(0, 0), 4, 2, math.Pi/2)
	assert.InDelta(t, 1, turned[0].X, 1e-9)
	assert.InDelta(t, -2, turned[0].Y, 1e-9)
}
