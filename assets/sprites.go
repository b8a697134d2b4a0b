// Package assets holds the presentation data of the game: which glyph and
// colour stands for each texture key, tile themes and the built-in levels.
package assets

import (
	"image/color"

	"penguin-patrol/internal/config"
)

// GlyphMissing is drawn for a texture key nobody registered.
const GlyphMissing = "❓"

// SpriteDef is how one texture key looks. Frames holds one glyph per
// animation frame; Radius is the on-screen size used by the window host.
type SpriteDef struct {
	Frames      []string
	Color       color.RGBA
	Radius      float64
	RenderOrder int // lower is drawn first
}

// Sprites maps texture keys to their definitions.
var Sprites = map[string]SpriteDef{
	config.EnemyTexture: {
		Frames:      []string{"🐧", "🐧"},
		Color:       color.RGBA{0x22, 0x22, 0x2a, 0xff},
		Radius:      12,
		RenderOrder: 5,
	},
	config.ProjectileTexture: {
		Frames:      []string{"🫧"},
		Color:       color.RGBA{0x8e, 0xd1, 0xfc, 0xff},
		Radius:      5,
		RenderOrder: 3,
	},
	config.PlayerTexture: {
		Frames:      []string{"🧑"},
		Color:       color.RGBA{0xf5, 0xa6, 0x23, 0xff},
		Radius:      12,
		RenderOrder: 10,
	},
}

// Lookup returns the definition for key.
func Lookup(key string) (SpriteDef, bool) {
	d, ok := Sprites[key]
	return d, ok
}

// Glyph returns the glyph for frame of key, or GlyphMissing.
func Glyph(key string, frame int) string {
	d, ok := Sprites[key]
	if !ok || len(d.Frames) == 0 {
		return GlyphMissing
	}
	if frame < 0 {
		frame = 0
	}
	return d.Frames[frame%len(d.Frames)]
}
