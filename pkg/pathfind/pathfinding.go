// pkg/pathfind/pathfinding.go
package pathfind

import (
	"container/heap"
	"errors"
	"fmt"
	"image"
	"math"

	"duckslayer/pkg/geom"
)

// ErrNoPath is returned when the goal cannot be reached from the start.
var ErrNoPath = errors.New("pathfind: no path found")

const (
	DefaultResolution  = 15
	DefaultMaxExpanded = 200000

	// Costs are integer-scaled so that a diagonal step approximates √2 straight steps.
	StraightCost = 100
	DiagonalCost = 141

	// шаг проверки отрезков, в мировых единицах
	sampleStep = 1.0
)

// Blocked reports whether a world point is not walkable.
type Blocked func(p geom.Vec2) bool

// Heuristic estimates the remaining cost from a lattice point to the goal.
type Heuristic func(p, goal image.Point) int

// ScaledEuclidean is the default heuristic: world distance divided by 3.
// It stays well below the real step cost (100 per cell), which keeps it
// admissible but loose; the divisor is a tuning knob for search shape.
func ScaledEuclidean(p, goal image.Point) int {
	return distance(p, goal) / 3
}

// Octile is an admissible heuristic measured in step-cost units.
func Octile(resolution int) Heuristic {
	return func(p, goal image.Point) int {
		dx := geom.Abs(p.X-goal.X) / resolution
		dy := geom.Abs(p.Y-goal.Y) / resolution
		lo, hi := dx, dy
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo*DiagonalCost + (hi-lo)*StraightCost
	}
}

type options struct {
	resolution  int
	heuristic   Heuristic
	maxExpanded int
	diagonals   bool
}

// Option tunes a single FindPath call.
type Option func(*options)

func WithResolution(r int) Option {
	return func(o *options) {
		if r > 0 {
			o.resolution = r
		}
	}
}

func WithHeuristic(h Heuristic) Option {
	return func(o *options) {
		if h != nil {
			o.heuristic = h
		}
	}
}

// WithMaxExpanded caps the number of expanded nodes; past the cap the search gives up with ErrNoPath.
func WithMaxExpanded(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxExpanded = n
		}
	}
}

// WithoutDiagonals restricts successors to the 4 orthogonal neighbours.
func WithoutDiagonals() Option {
	return func(o *options) { o.diagonals = false }
}

type step struct {
	dx, dy int
	cost   int
}

var steps = [8]step{
	{1, 0, StraightCost},
	{-1, 0, StraightCost},
	{0, 1, StraightCost},
	{0, -1, StraightCost},
	{1, 1, DiagonalCost},
	{1, -1, DiagonalCost},
	{-1, 1, DiagonalCost},
	{-1, -1, DiagonalCost},
}

// FindPath находит путь от start до goal по решётке с шагом resolution.
// The search starts from the snapped corner of the cell containing start, or from the
// nearest free corner of that cell when the snapped one is blocked, so a free start
// never gets a first waypoint inside an obstacle. The search succeeds at the first
// lattice point within one resolution of goal. Segments are sampled every world unit;
// obstacles thinner than that may be crossed. The returned waypoints are never empty
// on success.
func FindPath(start geom.Vec2, goal image.Point, blocked Blocked, opts ...Option) ([]geom.Vec2, error) {
	o := options{
		resolution:  DefaultResolution,
		heuristic:   ScaledEuclidean,
		maxExpanded: DefaultMaxExpanded,
		diagonals:   true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if blocked == nil {
		blocked = func(geom.Vec2) bool { return false }
	}

	res := o.resolution
	origin := startCorner(start, res, blocked)
	isGoal := func(p image.Point) bool {
		dx := float64(p.X - goal.X)
		dy := float64(p.Y - goal.Y)
		return math.Hypot(dx, dy) <= float64(res)
	}

	succ := steps[:]
	if !o.diagonals {
		succ = steps[:4]
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Point: origin, Cost: 0, Priority: o.heuristic(origin, goal), seq: seq})
	bestCost := map[image.Point]int{origin: 0}
	closed := make(map[image.Point]bool)
	expanded := 0

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Point] {
			continue
		}
		if isGoal(current.Point) {
			return reconstructPath(current), nil
		}
		closed[current.Point] = true
		expanded++
		if expanded > o.maxExpanded {
			return nil, fmt.Errorf("%w: search limit of %d nodes reached towards %v", ErrNoPath, o.maxExpanded, goal)
		}

		for _, s := range succ {
			next := image.Pt(current.Point.X+s.dx*res, current.Point.Y+s.dy*res)
			if closed[next] {
				continue
			}
			if !passable(current.Point, s, res, blocked) {
				continue
			}
			newCost := current.Cost + s.cost
			if old, ok := bestCost[next]; ok && newCost >= old {
				continue
			}
			bestCost[next] = newCost
			seq++
			heap.Push(pq, &Node{
				Point:    next,
				Cost:     newCost,
				Priority: newCost + o.heuristic(next, goal),
				Parent:   current,
				seq:      seq,
			})
		}
	}
	return nil, fmt.Errorf("%w: goal %v unreachable", ErrNoPath, goal)
}

// Snap returns the lattice point of the cell containing p.
func Snap(p geom.Vec2, resolution int) image.Point {
	r := float64(resolution)
	return image.Pt(int(math.Floor(p.X/r))*resolution, int(math.Floor(p.Y/r))*resolution)
}

// startCorner picks the lattice point the search starts from. A start inside an
// obstacle keeps its snapped corner and walks out of it.
func startCorner(start geom.Vec2, res int, blocked Blocked) image.Point {
	base := Snap(start, res)
	if blocked(start) || (!blocked(toVec(base)) && segmentClear(start, toVec(base), blocked)) {
		return base
	}
	corners := [3]image.Point{
		image.Pt(base.X+res, base.Y),
		image.Pt(base.X, base.Y+res),
		image.Pt(base.X+res, base.Y+res),
	}
	best, bestDist := base, math.Inf(1)
	for _, c := range corners {
		v := toVec(c)
		if blocked(v) || !segmentClear(start, v, blocked) {
			continue
		}
		if d := start.Dist(v); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// segmentClear samples the open segment a-b every sampleStep.
func segmentClear(a, b geom.Vec2, blocked Blocked) bool {
	n := int(math.Ceil(a.Dist(b) / sampleStep))
	for k := 1; k < n; k++ {
		if blocked(a.Lerp(b, float64(k)/float64(n))) {
			return false
		}
	}
	return true
}

// passable checks the destination, forbids cutting corners on diagonals and
// samples the segment in between. A blocked origin (a unit standing inside an
// obstacle) only has its destinations checked so it can walk out.
func passable(from image.Point, s step, res int, blocked Blocked) bool {
	to := image.Pt(from.X+s.dx*res, from.Y+s.dy*res)
	if blocked(toVec(to)) {
		return false
	}
	a := toVec(from)
	if blocked(a) {
		return true
	}
	if s.dx != 0 && s.dy != 0 {
		if blocked(toVec(image.Pt(to.X, from.Y))) || blocked(toVec(image.Pt(from.X, to.Y))) {
			return false
		}
	}
	return segmentClear(a, toVec(to), blocked)
}

func distance(a, b image.Point) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

func toVec(p image.Point) geom.Vec2 {
	return geom.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// PriorityQueue для A*: ordered by Priority, ties by discovery order.
type PriorityQueue []*Node

type Node struct {
	Point    image.Point
	Cost     int
	Priority int
	Parent   *Node
	seq      int
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []geom.Vec2 {
	n := 0
	for p := node; p != nil; p = p.Parent {
		n++
	}
	path := make([]geom.Vec2, n)
	for p := node; p != nil; p = p.Parent {
		n--
		path[n] = toVec(p.Point)
	}
	return path
}
