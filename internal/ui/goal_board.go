// internal/ui/goal_board.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"duckslayer/internal/component"
	"duckslayer/internal/config"
)

// GoalBoard показывает, сколько смертей осталось до победы и до поражения.
type GoalBoard struct {
	X, Y     int
	fontFace font.Face
}

func NewGoalBoard(x, y int, fontFace font.Face) *GoalBoard {
	return &GoalBoard{X: x, Y: y, fontFace: fontFace}
}

// GoalLines formats the two goals.
func GoalLines(win, lose component.DeathGoal) [2]string {
	return [2]string{
		fmt.Sprintf("Kill:    %d x %s", win.Remaining, win.Kind),
		fmt.Sprintf("Protect: %d x %s", lose.Remaining, lose.Kind),
	}
}

func (b *GoalBoard) Draw(screen *ebiten.Image, win, lose component.DeathGoal) {
	lines := GoalLines(win, lose)
	width := 0
	for _, l := range lines {
		if w, _ := TextSize(b.fontFace, l); w > width {
			width = w
		}
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(width+16), 44, config.MessageBackColor, false)
	for i, l := range lines {
		text.Draw(screen, l, b.fontFace, b.X+8, b.Y+18+i*18, config.TextLightColor)
	}
}
