// pkg/geom/geom.go
package geom

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// NormalizeOrZero returns the unit vector in the direction of v,
// or the zero vector if v has no direction.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp interpolates between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rect is an axis-aligned rectangle. Contains is inclusive on both edges.
type Rect struct {
	Min, Max Vec2
}

// R builds a rectangle from two corners in any order.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Vec2{math.Min(x0, x1), math.Min(y0, y1)},
		Max: Vec2{math.Max(x0, x1), math.Max(y0, y1)},
	}
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Min.Lerp(r.Max, 0.5)
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Rotate turns v around the origin by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// RotatedCorners returns the corners of a w×h box centred on c and turned by
// angle, in drawing order.
func RotatedCorners(c Vec2, w, h, angle float64) [4]Vec2 {
	hw, hh := w/2, h/2
	local := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Vec2
	for i, p := range local {
		out[i] = c.Add(p.Rotate(angle))
	}
	return out
}
