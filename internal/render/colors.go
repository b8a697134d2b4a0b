package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// HUD palette.
var (
	colorSeparator = tcell.ColorGray
	colorStatus    = tcell.ColorWhite
	colorAlert     = tcell.ColorOrangeRed
	colorMessage   = tcell.ColorLightYellow
	colorBackdrop  = tcell.ColorBlack
)

// tcellColor converts an asset colour to a terminal colour.
func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
