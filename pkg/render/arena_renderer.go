// pkg/render/arena_renderer.go
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/entity"
	"duckslayer/internal/system"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/pathfind"
)

// ArenaRenderer рисует карту (один раз, в отдельное изображение) и юниты поверх неё.
type ArenaRenderer struct {
	arena    pathfind.Obstacles
	exit     image.Point
	colors   ArenaColors
	cards    defs.CardConsts
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	mapImage *ebiten.Image // предрендеренная карта
}

func NewArenaRenderer(arena pathfind.Obstacles, exit image.Point, colors ArenaColors, cards defs.CardConsts) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &ArenaRenderer{
		arena:    arena,
		exit:     exit,
		colors:   colors,
		cards:    cards,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 8),
		mapImage: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *ArenaRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)
	b := r.arena.Bounds
	vector.DrawFilledRect(r.mapImage, float32(b.Min.X), float32(b.Min.Y), float32(b.Width()), float32(b.Height()), r.colors.GrassColor, false)
	for _, river := range r.arena.Rivers {
		vector.DrawFilledRect(r.mapImage, float32(river.Min.X), float32(river.Min.Y), float32(river.Width()), float32(river.Height()), r.colors.RiverColor, false)
	}
	vector.DrawFilledCircle(r.mapImage, float32(r.exit.X), float32(r.exit.Y), 8, r.colors.ExitColor, true)
}

// Draw рисует карту, юниты, яйца гнёзд и полоски здоровья.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, targets system.TargetSource, debug bool) {
	screen.DrawImage(r.mapImage, nil)

	for _, id := range ecs.IDs() {
		def, ok := r.cards.Get(ecs.Kind(id))
		if !ok {
			continue
		}
		rotation := 0.0
		if anim, ok := ecs.WalkAnims[id]; ok {
			rotation = anim.Rotation
		}
		corners := geom.RotatedCorners(ecs.Positions[id].Vec(), def.Visuals.Width, def.Visuals.Height, rotation)
		r.drawQuad(screen, corners, def.Visuals.Color)
	}

	if targets != nil {
		for _, id := range ecs.Query(defs.NewKindSet(defs.CardNest)) {
			victimPos, info, ok := system.VictimPosition(ecs, targets, id)
			if !ok || !info.InRange {
				continue
			}
			egg := ecs.Positions[id].Vec().Lerp(victimPos, info.Fraction)
			r.drawQuad(screen, geom.RotatedCorners(egg, config.EggWidth, config.EggHeight, 0), config.EggColor)
		}
	}

	for _, id := range entity.SortedKeys(ecs.Healths) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x := float32(pos.X - config.HealthbarWidth/2)
		y := float32(pos.Y - config.HealthbarOffset)
		vector.DrawFilledRect(screen, x, y, config.HealthbarWidth, config.HealthbarHeight, config.HealthbarBack, false)
		vector.DrawFilledRect(screen, x, y, float32(config.HealthbarWidth*ecs.Healths[id].Fraction()), config.HealthbarHeight, config.HealthbarColor, false)
	}

	if debug {
		r.drawDebug(screen, ecs)
	}
}

func (r *ArenaRenderer) drawQuad(target *ebiten.Image, corners [4]geom.Vec2, c color.RGBA) {
	path := vector.Path{}
	path.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, p := range corners[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawDebug: маршруты фермеров и радиусы атаки.
func (r *ArenaRenderer) drawDebug(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range entity.SortedKeys(ecs.FollowPaths) {
		path := ecs.FollowPaths[id]
		for i := 1; i < len(path.Waypoints); i++ {
			a, b := path.Waypoints[i-1], path.Waypoints[i]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, config.PathDebugColor, true)
		}
	}
	for _, id := range entity.SortedKeys(ecs.Attackers) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(ecs.Attackers[id].Range), 1, config.RangeDebugColor, true)
	}
}
