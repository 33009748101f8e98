package component

// WalkAnim is the cosmetic waddle. Rotation is in radians around the unit center.
type WalkAnim struct {
	Progress  float64
	Rotation  float64
	Canceling bool
}
