package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
)

var (
	RgbSnake      = tcell.PaletteColor(constants.SnakePaletteIndex) // Magenta-pink, 256-color 0xa2
	RgbFood       = tcell.ColorTeal                                 // Cyan cell behind the food glyph
	RgbStatusText = tcell.ColorWhite
	RgbStatusBack = tcell.ColorBlack
	RgbDebugText  = tcell.NewRGBColor(180, 180, 180) // Gray
)

var (
	StyleSnake  = tcell.StyleDefault.Foreground(RgbSnake).Background(RgbSnake).Bold(true)
	StyleFood   = tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbFood)
	StyleStatus = tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBack)
	StyleDebug  = tcell.StyleDefault.Foreground(RgbDebugText).Background(RgbStatusBack)
)
