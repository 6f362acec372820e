package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridgeom/geom"
	"github.com/samdwyer/gridgeom/internal/walk"
)

// Renderer draws the arena, the walker's trail, and the HUD.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the current walker state to the screen.
func (r *Renderer) Render(arena *walk.Arena, walker *walk.Walker) {
	r.screen.Clear()

	for y := 0; y < arena.Height(); y++ {
		for x := 0; x < arena.Width(); x++ {
			p := geom.Pt(x, y)
			ch := arena.Tile(p).Rune()
			style := r.tileStyle(arena.Tile(p))
			if walker.Visited(p) && p != walker.Pos {
				ch = '·'
				style = tcell.StyleDefault.Foreground(tcell.ColorTeal)
			}
			r.screen.SetContent(x, y, ch, style)
		}
	}

	// Walker on top, drawn as its heading.
	walkerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(walker.Pos.X, walker.Pos.Y, headingRune(walker.Heading), walkerStyle)

	r.renderHUD(arena, walker)
	r.screen.Show()
}

// renderHUD writes the status line below the arena.
func (r *Renderer) renderHUD(arena *walk.Arena, walker *walk.Walker) {
	hud := fmt.Sprintf("%s | %v | facing %v | %d from start | %d visited",
		arena.Name, walker.Pos, walker.Heading, walker.DistanceFromStart(), walker.Steps())
	r.RenderMessage(hud, arena.Height()+1)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

// tileStyle returns the style for a tile type.
func (r *Renderer) tileStyle(tile walk.Tile) tcell.Style {
	switch tile {
	case walk.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case walk.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// headingRune maps a direction to the walker's display glyph.
func headingRune(d geom.Direction) rune {
	switch d {
	case geom.DirectionLeft:
		return '<'
	case geom.DirectionRight:
		return '>'
	case geom.DirectionUp:
		return '^'
	default:
		return 'v'
	}
}
