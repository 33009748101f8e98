// internal/defs/cards.go
package defs

import (
	"image/color"
)

// CardDefinition holds all the static data for a specific card.
// Fields that do not apply to a card are left zero.
type CardDefinition struct {
	Health   float64    `json:"health"`
	Damage   float64    `json:"damage"`
	Range    float64    `json:"range"`
	Speed    float64    `json:"speed"`
	Cooldown float64    `json:"cooldown"` // seconds between hits
	Radius   float64    `json:"radius"`   // explosion radius
	Delay    float64    `json:"delay"`    // seconds from spawn to explosion
	Prey     []CardKind `json:"prey"`
	Visuals  Visuals    `json:"visuals"`
}

// Visuals contains parameters for rendering a card.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Glyph  string     `json:"glyph"`
}

// PreySet returns the prey list as a set.
func (d CardDefinition) PreySet() KindSet {
	return NewKindSet(d.Prey...)
}

// CardConsts is the tuning table for every card.
type CardConsts map[CardKind]CardDefinition

// DefaultCardConsts returns the built-in tuning.
func DefaultCardConsts() CardConsts {
	return CardConsts{
		CardFarmer: {
			Health: 100,
			Speed:  50,
			Visuals: Visuals{
				Color: color.RGBA{222, 184, 135, 255},
				Width: 60, Height: 53,
				Glyph: "F",
			},
		},
		CardQuakka: {
			Health:   100,
			Damage:   25,
			Range:    60,
			Speed:    70,
			Cooldown: 1.0,
			Prey:     []CardKind{CardFarmer, CardNest},
			Visuals: Visuals{
				Color: color.RGBA{255, 215, 0, 255},
				Width: 100, Height: 100,
				Glyph: "Q",
			},
		},
		CardWaterball: {
			Damage: 30,
			Radius: 50,
			Delay:  0.1,
			Prey:   []CardKind{CardQuakka},
			Visuals: Visuals{
				Color: color.RGBA{50, 100, 255, 200},
				Width: 100, Height: 100,
				Glyph: "o",
			},
		},
		CardNest: {
			Health:   100,
			Damage:   20,
			Range:    250,
			Cooldown: 1.0,
			Prey:     []CardKind{CardQuakka},
			Visuals: Visuals{
				Color: color.RGBA{139, 69, 19, 255},
				Width: 50, Height: 50,
				Glyph: "N",
			},
		},
	}
}

// Get returns the definition for k, falling back to the built-in defaults.
func (c CardConsts) Get(k CardKind) (CardDefinition, bool) {
	if def, ok := c[k]; ok {
		return def, true
	}
	def, ok := DefaultCardConsts()[k]
	return def, ok
}
