package component

import "duckslayer/internal/defs"

// GameProgress — состояние уровня
type GameProgress int

const (
	Ongoing GameProgress = iota
	Won
	Lost
)

func (p GameProgress) String() string {
	switch p {
	case Ongoing:
		return "Ongoing"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the level attempt is over.
func (p GameProgress) Terminal() bool {
	return p == Won || p == Lost
}

// DeathGoal counts down deaths of one card kind.
type DeathGoal struct {
	Kind      defs.CardKind
	Remaining uint32
}

// Record registers a death of kind k. It returns true when this death brought
// the goal to zero. A goal already at zero is left alone.
func (g *DeathGoal) Record(k defs.CardKind) bool {
	if k != g.Kind || g.Remaining == 0 {
		return false
	}
	g.Remaining--
	return g.Remaining == 0
}
