package assets

import "image/color"

// Intro is shown before the first tick.
const Intro = `The ice shelf is quiet. Too quiet.
Penguins patrol the floes and they do not like visitors:
step inside their sight and they waddle after you, blowing bubbles.
Arrows or WASD to move, space to stop, c to copy stats, q to quit.
Press any key to begin...`

// TileTheme holds the glyphs and colours used to draw one level's terrain.
// Emoji are drawn by the terminal with their own colours, so the colours
// here are only used by the window host.
type TileTheme struct {
	Name       string
	Wall       string
	Floor      string
	WallColor  color.RGBA
	FloorColor color.RGBA
}

// Themes is indexed by level number, wrapping around.
var Themes = []TileTheme{
	{
		Name:       "Glacier",
		Wall:       "🧊",
		Floor:      "⬜",
		WallColor:  color.RGBA{0x6a, 0xa6, 0xd8, 0xff},
		FloorColor: color.RGBA{0xe8, 0xf1, 0xf8, 0xff},
	},
	{
		Name:       "Floe",
		Wall:       "🌊",
		Floor:      "🟦",
		WallColor:  color.RGBA{0x1d, 0x4e, 0x89, 0xff},
		FloorColor: color.RGBA{0xb9, 0xd7, 0xee, 0xff},
	},
	{
		Name:       "Crevasse",
		Wall:       "🪨",
		Floor:      "❄️",
		WallColor:  color.RGBA{0x4a, 0x4f, 0x5a, 0xff},
		FloorColor: color.RGBA{0xd4, 0xe4, 0xef, 0xff},
	},
}

// Theme returns the tile theme for level index i.
func Theme(i int) TileTheme {
	if i < 0 {
		i = -i
	}
	return Themes[i%len(Themes)]
}
