package component

import "duckslayer/internal/defs"

// Detonator blows up once its delay expires, hitting every prey within Radius,
// and then removes its own unit.
type Detonator struct {
	Radius float64
	Damage float64
	Delay  Cooldown
	Prey   defs.KindSet
}
