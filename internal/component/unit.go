package component

import "duckslayer/internal/defs"

// Unit marks a spawned card.
type Unit struct {
	Kind defs.CardKind
}
