package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/mattn/go-runewidth"
)

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Size() (width, height int)
}

var _ Surface = tcell.Screen(nil)

// TerminalRenderer draws game state onto a terminal surface
type TerminalRenderer struct {
	surface   Surface
	keys      *input.KeyMap
	showDebug bool
}

// NewTerminalRenderer creates a renderer; keys drive the help text, nil means defaults
func NewTerminalRenderer(surface Surface, keys *input.KeyMap, showDebug bool) *TerminalRenderer {
	if keys == nil {
		keys = input.DefaultKeyMap()
	}
	return &TerminalRenderer{
		surface:   surface,
		keys:      keys,
		showDebug: showDebug,
	}
}

// RenderPlaying draws snake, food and status line
func (r *TerminalRenderer) RenderPlaying(gs *engine.GameState) {
	r.surface.Clear()

	for i := 0; i < gs.Snake.Len(); i++ {
		p := gs.Snake.Segment(i)
		r.surface.SetContent(p.X, p.Y, constants.SnakeGlyph, nil, StyleSnake)
	}

	r.surface.SetContent(gs.Food.X, gs.Food.Y, constants.FoodGlyph, nil, StyleFood)

	r.drawText(0, core.StatusRow, r.statusText(gs.Score), StyleStatus)

	if r.showDebug {
		r.drawDebug(gs)
	}

	r.surface.Show()
}

// RenderGameOver draws the centered end-of-game line
func (r *TerminalRenderer) RenderGameOver(gs *engine.GameState) {
	r.surface.Clear()

	text := fmt.Sprintf(constants.GameOverFormat, gs.Score,
		r.keys.Label(input.CommandRestart), r.keys.Label(input.CommandQuit))

	x := gs.Arena.Width/2 - runewidth.StringWidth(text)/2
	if x < 0 {
		x = 0
	}
	r.drawText(x, gs.Arena.Height/2, text, StyleStatus)

	r.surface.Show()
}

func (r *TerminalRenderer) statusText(score int) string {
	return fmt.Sprintf(constants.StatusFormat, score,
		r.keys.Label(input.CommandQuit), r.keys.MoveLabel(), r.keys.Label(input.CommandStop))
}

// drawDebug writes head, scene size and heading on the last row
func (r *TerminalRenderer) drawDebug(gs *engine.GameState) {
	head := gs.Snake.Head()
	text := fmt.Sprintf(constants.DebugFormat, head.X, head.Y,
		gs.Arena.Width, gs.Arena.Height, gs.Direction, gs.Arena.Boundary)
	r.drawText(1, gs.Arena.Height-1, text, StyleDebug)
}

// drawText writes a single line clipped to the surface width
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.surface.Size()
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if x+w > width {
			return
		}
		r.surface.SetContent(x, y, ch, nil, style)
		x += w
	}
}
