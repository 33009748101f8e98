// component/movement.go
package component

import (
	"image"

	"duckslayer/pkg/geom"
)

// Position — компонент позиции
type Position struct {
	X, Y float64
}

func (p Position) Vec() geom.Vec2 { return geom.Vec2{X: p.X, Y: p.Y} }

// Set moves the position to v.
func (p *Position) Set(v geom.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// FollowPath makes a unit walk a precomputed route. Waypoints are filled once
// at attach time and never change afterwards.
type FollowPath struct {
	Goal      image.Point
	Waypoints []geom.Vec2
	Current   int
	Speed     float64
}

// Target is the waypoint the unit is currently walking to.
func (f *FollowPath) Target() geom.Vec2 {
	return f.Waypoints[f.Current]
}

// AtLast reports whether the current waypoint is the final one.
func (f *FollowPath) AtLast() bool {
	return f.Current >= len(f.Waypoints)-1
}

// Advance moves to the next waypoint unless already at the last one.
func (f *FollowPath) Advance() bool {
	if f.AtLast() {
		return false
	}
	f.Current++
	return true
}

// Chaser walks in a straight line towards its attacker victim while out of range.
type Chaser struct {
	Speed float64
}

// Motion is written by the movement system every tick.
type Motion struct {
	Moving bool
}
