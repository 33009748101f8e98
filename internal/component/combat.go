package component

import "duckslayer/internal/defs"

// Health — компонент здоровья
type Health struct {
	Current float64
	Max     float64
}

// NewHealth creates a full health pool.
func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

// Damage reduces health, never below zero. Non-positive amounts are ignored.
func (h *Health) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *Health) Alive() bool { return h.Current > 0 }

// Kill sets health to zero.
func (h *Health) Kill() { h.Current = 0 }

// Fraction is current/max, used by health bars.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Attacker — компонент для юнитов, которые бьют ближайшую цель
type Attacker struct {
	Damage   float64
	Range    float64
	Cooldown Cooldown
	Prey     defs.KindSet
}
