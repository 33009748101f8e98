// internal/ui/message_box.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"duckslayer/internal/config"
)

// MessageBox — сообщение по центру карты с тёмной подложкой.
type MessageBox struct {
	fontFace font.Face
	top      int
}

func NewMessageBox(fontFace font.Face) *MessageBox {
	return &MessageBox{fontFace: fontFace, top: 80}
}

func (m *MessageBox) Draw(screen *ebiten.Image, message string) {
	if message == "" {
		return
	}
	w, h := TextSize(m.fontFace, message)
	const pad = 10
	x := (config.MapWidth - w) / 2
	vector.DrawFilledRect(screen, float32(x-pad), float32(m.top-pad), float32(w+2*pad), float32(h+2*pad), config.MessageBackColor, false)
	text.Draw(screen, message, m.fontFace, x, m.top+h, config.TextLightColor)
}
