package component

import (
	"errors"
	"fmt"
)

// ErrInvalidCooldown is returned for a cooldown that could never finish.
var ErrInvalidCooldown = errors.New("cooldown duration must be positive")

// Cooldown is a fire-once timer. Once Finished it stays finished until Reset;
// there is no repeating mode.
type Cooldown struct {
	duration float64
	elapsed  float64
}

// NewCooldown builds a cooldown of the given length in seconds.
func NewCooldown(duration float64) (Cooldown, error) {
	if !(duration > 0) {
		return Cooldown{}, fmt.Errorf("%w: got %v", ErrInvalidCooldown, duration)
	}
	return Cooldown{duration: duration}, nil
}

// MustCooldown is NewCooldown for constants known to be valid.
func MustCooldown(duration float64) Cooldown {
	c, err := NewCooldown(duration)
	if err != nil {
		panic(err)
	}
	return c
}

// Tick advances the timer by dt seconds, saturating at the duration.
func (c *Cooldown) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	if c.elapsed > c.duration {
		c.elapsed = c.duration
	}
}

func (c *Cooldown) Finished() bool { return c.elapsed >= c.duration }

// Reset starts a fresh countdown. Progress is discarded.
func (c *Cooldown) Reset() { c.elapsed = 0 }

// Fraction is the progress in [0, 1].
func (c *Cooldown) Fraction() float64 {
	if c.duration == 0 {
		return 0
	}
	return c.elapsed / c.duration
}

func (c *Cooldown) Duration() float64 { return c.duration }
