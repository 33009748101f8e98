// internal/state/title_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"duckslayer/internal/app"
	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/level"
	"duckslayer/internal/ui"
	"duckslayer/pkg/logger"
)

// Assets — всё, что загружено при старте и нужно состояниям.
type Assets struct {
	Levels []level.Level
	Cards  defs.CardConsts
	Debug  bool
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// justPressedDigit returns the 0-based index of a digit key pressed this frame.
func justPressedDigit() (int, bool) {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i, true
		}
	}
	return 0, false
}

// TitleState — выбор уровня
type TitleState struct {
	sm     *StateMachine
	assets *Assets
	status string
}

func NewTitleState(sm *StateMachine, assets *Assets) *TitleState {
	return &TitleState{sm: sm, assets: assets}
}

func (t *TitleState) Enter() {}

func (t *TitleState) Update(deltaTime float64) {
	if i, ok := justPressedDigit(); ok {
		t.start(i)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		t.start(0)
	}
}

func (t *TitleState) start(i int) {
	if i >= len(t.assets.Levels) {
		return
	}
	game := app.NewGame(t.assets.Cards)
	if err := game.EnterLevel(t.assets.Levels[i]); err != nil {
		logger.Log.WithError(err).Error("could not enter level")
		t.status = err.Error()
		return
	}
	t.sm.SetState(NewLevelState(t.sm, t.assets, game))
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := ui.DefaultFace
	text.Draw(screen, "DuckSlayer", face, 80, 80, config.TextLightColor)
	for i, lvl := range t.assets.Levels {
		if i >= len(digitKeys) {
			break
		}
		line := fmt.Sprintf("[%d] %s  (kill %d %s, lose at %d %s)",
			i+1, lvl.Name, lvl.Win.CountDead, lvl.Win.Kind, lvl.Lose.CountDead, lvl.Lose.Kind)
		text.Draw(screen, line, face, 80, 130+i*22, config.TextLightColor)
	}
	if t.status != "" {
		text.Draw(screen, t.status, face, 80, config.ScreenHeight-60, config.ExitColor)
	}
}

func (t *TitleState) Exit() {}
