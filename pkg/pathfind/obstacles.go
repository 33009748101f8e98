package pathfind

import "duckslayer/pkg/geom"

// Obstacles is the level geometry: everything outside Bounds and everything
// inside one of the Rivers is blocked.
type Obstacles struct {
	Bounds geom.Rect
	Rivers []geom.Rect
}

// Blocked implements the predicate expected by FindPath.
func (o Obstacles) Blocked(p geom.Vec2) bool {
	if !o.Bounds.Contains(p) {
		return true
	}
	for _, r := range o.Rivers {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// InRiver reports whether p is inside one of the rivers, ignoring the bounds.
func (o Obstacles) InRiver(p geom.Vec2) bool {
	for _, r := range o.Rivers {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
