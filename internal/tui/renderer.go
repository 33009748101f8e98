// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"duckslayer/internal/config"
	"duckslayer/internal/defs"
	"duckslayer/internal/interfaces"
	"duckslayer/internal/system"
	"duckslayer/pkg/geom"
	"duckslayer/pkg/pathfind"
)

const (
	grassRune = '.'
	riverRune = '~'
	exitRune  = 'X'
	eggRune   = '*'
)

// Grid maps world coordinates onto terminal cells.
type Grid struct {
	CellWidth, CellHeight float64
	Cols, Rows            int
}

// NewGrid covers a world of the given size with cells of the configured size.
func NewGrid(worldWidth, worldHeight float64) Grid {
	return Grid{
		CellWidth:  config.TerminalCellWidth,
		CellHeight: config.TerminalCellHeight,
		Cols:       int(math.Ceil(worldWidth / config.TerminalCellWidth)),
		Rows:       int(math.Ceil(worldHeight / config.TerminalCellHeight)),
	}
}

// Cell returns the cell holding p. ok is false outside the grid.
func (g Grid) Cell(p geom.Vec2) (x, y int, ok bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	x = int(p.X / g.CellWidth)
	y = int(p.Y / g.CellHeight)
	return x, y, x < g.Cols && y < g.Rows
}

// Center returns the world point in the middle of cell (x, y).
func (g Grid) Center(x, y int) geom.Vec2 {
	return geom.V((float64(x)+0.5)*g.CellWidth, (float64(y)+0.5)*g.CellHeight)
}

// Renderer рисует арену символами
type Renderer struct {
	screen tcell.Screen
	grid   Grid
	arena  pathfind.Obstacles
	exit   image.Point
	cards  defs.CardConsts
}

func NewRenderer(screen tcell.Screen, arena pathfind.Obstacles, exit image.Point, cards defs.CardConsts) *Renderer {
	return &Renderer{
		screen: screen,
		grid:   NewGrid(arena.Bounds.Max.X, arena.Bounds.Max.Y),
		arena:  arena,
		exit:   exit,
		cards:  cards,
	}
}

func (r *Renderer) Grid() Grid { return r.grid }

// Draw renders one frame and shows it.
func (r *Renderer) Draw(session interfaces.Session) {
	r.screen.Clear()
	r.drawMap()
	r.drawUnits(session)
	r.drawStatus(session)
	r.screen.Show()
}

func (r *Renderer) drawMap() {
	grass := tcell.StyleDefault.Foreground(toColor(config.GrassColor))
	river := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(toColor(config.RiverColor))
	for y := 0; y < r.grid.Rows; y++ {
		for x := 0; x < r.grid.Cols; x++ {
			if r.arena.InRiver(r.grid.Center(x, y)) {
				r.screen.SetContent(x, y, riverRune, nil, river)
			} else {
				r.screen.SetContent(x, y, grassRune, nil, grass)
			}
		}
	}
	exit := geom.V(float64(r.exit.X), float64(r.exit.Y))
	if x, y, ok := r.grid.Cell(exit); ok {
		r.screen.SetContent(x, y, exitRune, nil, tcell.StyleDefault.Foreground(toColor(config.ExitColor)).Bold(true))
	}
}

func (r *Renderer) drawUnits(session interfaces.Session) {
	world := session.World()
	targets := session.Targets()

	// старшие id рисуются поверх
	for _, id := range world.IDs() {
		pos, ok := world.Positions[id]
		if !ok {
			continue
		}
		def, _ := r.cards.Get(world.Kind(id))
		x, y, ok := r.grid.Cell(pos.Vec())
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(toColor(def.Visuals.Color)).Bold(true)
		if h, ok := world.Healths[id]; ok && h.Max > 0 && h.Current < h.Max/2 {
			style = style.Dim(true)
		}
		r.screen.SetContent(x, y, glyphOf(def), nil, style)
	}

	egg := tcell.StyleDefault.Foreground(toColor(config.EggColor))
	for _, id := range world.IDs() {
		if _, ok := world.Attackers[id]; !ok {
			continue
		}
		victim, info, ok := system.VictimPosition(world, targets, id)
		if !ok || !info.InRange {
			continue
		}
		p := world.Positions[id].Vec().Lerp(victim, info.Fraction)
		if x, y, ok := r.grid.Cell(p); ok {
			r.screen.SetContent(x, y, eggRune, nil, egg)
		}
	}
}

func (r *Renderer) drawStatus(session interfaces.Session) {
	text := tcell.StyleDefault.Foreground(toColor(config.TextLightColor))
	row := r.grid.Rows

	r.drawString(0, row, DeckLine(session.Deck(), session.SelectedSlot()), text)

	win, lose := session.Goals()
	goals := fmt.Sprintf("Kill: %d x %s   Protect: %d x %s", win.Remaining, win.Kind, lose.Remaining, lose.Kind)
	r.drawString(0, row+1, goals, text)

	state := tcell.StyleDefault.Foreground(toColor(config.RunningColor))
	label := "RUNNING"
	if session.Paused() {
		state = tcell.StyleDefault.Foreground(toColor(config.PausedColor))
		label = "PAUSED"
	}
	r.drawString(0, row+2, label, state.Bold(true))
	if msg := session.Message(); msg != "" {
		r.drawString(len(label)+2, row+2, msg, text.Bold(true))
	}
}

func (r *Renderer) drawString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// DeckLine lists the deck with the selected slot in brackets.
func DeckLine(deck []defs.CardKind, selected int) string {
	if len(deck) == 0 {
		return "Deck: (empty)"
	}
	parts := make([]string, len(deck))
	for i, k := range deck {
		if i == selected {
			parts[i] = fmt.Sprintf("[%d:%s]", i+1, k)
		} else {
			parts[i] = fmt.Sprintf(" %d:%s ", i+1, k)
		}
	}
	return "Deck:" + strings.Join(parts, "")
}

func glyphOf(def defs.CardDefinition) rune {
	for _, ch := range def.Visuals.Glyph {
		return ch
	}
	return '?'
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
