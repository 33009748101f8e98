// internal/ui/deck_bar.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/pkg/render"
)

const (
	slotMargin = 8
	slotHeight = 110
)

// DeckBar — колода справа от карты. Слоты идут сверху вниз.
type DeckBar struct {
	Rect     image.Rectangle
	fontFace font.Face
	cards    defs.CardConsts
}

func NewDeckBar(fontFace font.Face, cards defs.CardConsts) *DeckBar {
	return &DeckBar{
		Rect:     image.Rect(config.MapWidth, 0, config.ScreenWidth, config.ScreenHeight),
		fontFace: fontFace,
		cards:    cards,
	}
}

func (d *DeckBar) slotRect(i int) image.Rectangle {
	y := d.Rect.Min.Y + slotMargin + i*(slotHeight+slotMargin)
	return image.Rect(d.Rect.Min.X+slotMargin, y, d.Rect.Max.X-slotMargin, y+slotHeight)
}

// SlotAt returns the slot under a screen point.
func (d *DeckBar) SlotAt(x, y, count int) (int, bool) {
	p := image.Pt(x, y)
	for i := 0; i < count; i++ {
		if p.In(d.slotRect(i)) {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether a click landed on the bar.
func (d *DeckBar) Contains(x, y int) bool {
	return image.Pt(x, y).In(d.Rect)
}

func (d *DeckBar) Draw(screen *ebiten.Image, deck []defs.CardKind, selected int) {
	r := d.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.DeckColor, false)

	for i, kind := range deck {
		slot := d.slotRect(i)
		def, _ := d.cards.Get(kind)
		fill := render.DarkenColor(def.Visuals.Color)
		vector.DrawFilledRect(screen, float32(slot.Min.X), float32(slot.Min.Y), float32(slot.Dx()), float32(slot.Dy()), fill, false)
		if i == selected {
			vector.StrokeRect(screen, float32(slot.Min.X), float32(slot.Min.Y), float32(slot.Dx()), float32(slot.Dy()), 3, config.DeckSelectColor, false)
		}

		label := kind.String()
		w, h := TextSize(d.fontFace, label)
		text.Draw(screen, label, d.fontFace, slot.Min.X+(slot.Dx()-w)/2, slot.Min.Y+(slot.Dy()+h)/2, config.TextLightColor)
		if i < 9 {
			key := string(rune('1' + i))
			text.Draw(screen, key, d.fontFace, slot.Min.X+4, slot.Min.Y+14, config.TextLightColor)
		}
	}
}
