// internal/ui/fonts.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face used for every label.
var DefaultFace font.Face = basicfont.Face7x13

// TextSize measures s in face.
func TextSize(face font.Face, s string) (int, int) {
	b := text.BoundString(face, s)
	return b.Dx(), b.Dy()
}
