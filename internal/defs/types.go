// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCard is returned when a card name cannot be parsed.
var ErrUnknownCard = errors.New("unknown card")

// CardKind identifies what a unit is.
type CardKind uint8

const (
	CardNone CardKind = iota
	CardFarmer
	CardQuakka
	CardWaterball
	CardNest
)

// AllCards lists every playable card in a stable order.
var AllCards = []CardKind{CardFarmer, CardQuakka, CardWaterball, CardNest}

var cardNames = map[CardKind]string{
	CardNone:      "Empty",
	CardFarmer:    "Farmer",
	CardQuakka:    "Quakka",
	CardWaterball: "Waterball",
	CardNest:      "Nest",
}

func (k CardKind) String() string {
	if name, ok := cardNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CardKind(%d)", uint8(k))
}

// Valid reports whether k is one of the playable cards.
func (k CardKind) Valid() bool {
	return k >= CardFarmer && k <= CardNest
}

// ParseCardKind parses a card name, case-insensitively.
func ParseCardKind(s string) (CardKind, error) {
	for _, k := range AllCards {
		if strings.EqualFold(cardNames[k], s) {
			return k, nil
		}
	}
	return CardNone, fmt.Errorf("%w: %q", ErrUnknownCard, s)
}

func (k CardKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCard, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *CardKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCardKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindSet is a small set of card kinds, used for prey filters.
type KindSet uint8

func NewKindSet(kinds ...CardKind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

func (s KindSet) With(k CardKind) KindSet {
	if !k.Valid() {
		return s
	}
	return s | 1<<k
}

func (s KindSet) Has(k CardKind) bool {
	return k.Valid() && s&(1<<k) != 0
}

func (s KindSet) Empty() bool { return s == 0 }

// Kinds returns the members in AllCards order.
func (s KindSet) Kinds() []CardKind {
	var out []CardKind
	for _, k := range AllCards {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
