// internal/app/deck.go
package app

import "duckslayer/internal/defs"

// Deck — карты, которые игрок ещё может выложить. Выбранный слот сдвигается
// при удалении карт, чтобы всегда указывать на существующую карту.
type Deck struct {
	cards    []defs.CardKind
	selected int
}

func NewDeck(cards []defs.CardKind) *Deck {
	return &Deck{cards: append([]defs.CardKind(nil), cards...)}
}

// Cards returns a copy of the deck in slot order.
func (d *Deck) Cards() []defs.CardKind {
	return append([]defs.CardKind(nil), d.cards...)
}

func (d *Deck) Len() int { return len(d.cards) }

// At returns the card in slot i.
func (d *Deck) At(i int) (defs.CardKind, bool) {
	if i < 0 || i >= len(d.cards) {
		return defs.CardNone, false
	}
	return d.cards[i], true
}

// Remove takes slot i out of the deck.
func (d *Deck) Remove(i int) bool {
	if i < 0 || i >= len(d.cards) {
		return false
	}
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	if d.selected >= len(d.cards) && d.selected > 0 {
		d.selected = len(d.cards) - 1
	}
	return true
}

// Push adds a card at the end, like the level editor does.
func (d *Deck) Push(k defs.CardKind) {
	d.cards = append(d.cards, k)
}

func (d *Deck) Selected() int { return d.selected }

// Select marks slot i as chosen. Out-of-range slots are ignored.
func (d *Deck) Select(i int) bool {
	if i < 0 || i >= len(d.cards) {
		return false
	}
	d.selected = i
	return true
}
