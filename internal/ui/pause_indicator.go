// internal/ui/pause_indicator.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"duckslayer/internal/config"
)

// PauseIndicator — кружок в углу: красный на паузе, зелёный в игре.
// После переключения он коротко «пульсирует».
type PauseIndicator struct {
	X, Y           float32
	Radius         float32
	LastToggleTime time.Time
}

func NewPauseIndicator(x, y, radius float32) *PauseIndicator {
	return &PauseIndicator{X: x, Y: y, Radius: radius}
}

func (i *PauseIndicator) Toggled() { i.LastToggleTime = time.Now() }

// IsClicked проверяет, был ли клик внутри индикатора
func (i *PauseIndicator) IsClicked(x, y int) bool {
	dx, dy := float32(x)-i.X, float32(y)-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *PauseIndicator) Draw(screen *ebiten.Image, paused bool) {
	elapsed := time.Since(i.LastToggleTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	c := config.RunningColor
	if paused {
		c = config.PausedColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)
}
