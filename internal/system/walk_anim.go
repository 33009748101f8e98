// internal/system/walk_anim.go
package system

import (
	"math"

	"duckslayer/internal/config"
	"duckslayer/internal/entity"
	"duckslayer/internal/utils"
)

// WalkAnimSystem раскачивает движущиеся юниты. Чисто косметика: позиция не меняется.
type WalkAnimSystem struct {
	ecs *entity.ECS
}

func NewWalkAnimSystem(ecs *entity.ECS) *WalkAnimSystem {
	return &WalkAnimSystem{ecs: ecs}
}

func (s *WalkAnimSystem) Update(deltaTime float64) {
	amplitude := config.WalkAnimLength * 2 * math.Pi
	for _, id := range entity.SortedKeys(s.ecs.WalkAnims) {
		anim := s.ecs.WalkAnims[id]
		motion, ok := s.ecs.Motions[id]
		moving := ok && motion.Moving

		if !moving && anim.Progress == 0 {
			anim.Rotation, anim.Canceling = 0, false
			continue
		}
		anim.Canceling = !moving

		prev := walkWave(anim.Progress)
		anim.Progress = utils.WrapUnit(anim.Progress + deltaTime*config.WalkAnimSpeed)
		wave := walkWave(anim.Progress)

		// остановка только на естественном переходе через ноль
		if anim.Canceling && (math.Abs(wave) < config.WalkAnimCancelThreshold || crossesZero(prev, wave)) {
			anim.Progress, anim.Rotation, anim.Canceling = 0, 0, false
			continue
		}
		anim.Rotation = wave * amplitude
	}
}

// walkWave maps progress in [0,1) to one swing: 0 → 1 → 0 → -1 → 0.
func walkWave(p float64) float64 {
	switch {
	case p < 0.25:
		return utils.EaseInOutCubic(p * 4)
	case p < 0.5:
		return utils.EaseInOutCubic((0.5 - p) * 4)
	case p < 0.75:
		return -utils.EaseInOutCubic((p - 0.5) * 4)
	default:
		return -utils.EaseInOutCubic((1 - p) * 4)
	}
}

func crossesZero(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}
