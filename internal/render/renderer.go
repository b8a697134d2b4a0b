package render

import (
	"math"
	"sort"

	"penguin-patrol/assets"
	"penguin-patrol/internal/component"
	"penguin-patrol/internal/ecs"
	"penguin-patrol/internal/geom"
	"penguin-patrol/internal/tilemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 3

// Renderer draws the arena onto a tcell screen, one tile per two columns.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  assets.TileTheme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme assets.TileTheme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(0, h-HUDRows)),
		theme:  theme,
	}
}

// SetTheme changes the terrain glyphs.
func (r *Renderer) SetTheme(theme assets.TileTheme) { r.theme = theme }

// Resize picks up a new screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-HUDRows)
}

// Camera exposes the camera for tests and hosts.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders tiles and entities centred on the player.
// It does not call Show; DrawHUD does.
func (r *Renderer) DrawFrame(w *ecs.World, grid *tilemap.PassableTiles, playerID ecs.EntityID) {
	r.screen.Clear()
	if grid == nil {
		return
	}
	if c := w.Get(playerID, component.CTransform); c != nil {
		tx, ty := tileOf(grid, c.(component.Transform).Pos)
		r.camera.Follow(tx, ty, grid.Width, grid.Height)
	}
	r.drawMap(grid)
	r.drawEntities(w, grid)
}

func (r *Renderer) drawMap(grid *tilemap.PassableTiles) {
	style := tcell.StyleDefault.Background(colorBackdrop)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph := r.theme.Wall
			if grid.IsPassable(x, y) {
				glyph = r.theme.Floor
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

type drawable struct {
	order  int
	tx, ty int
	glyph  string
	fg     tcell.Color
}

// drawEntities renders all entities with Sprite + Transform, lowest
// RenderOrder first so the player ends up on top of a bubble.
func (r *Renderer) drawEntities(w *ecs.World, grid *tilemap.PassableTiles) {
	ids := w.Query(component.CSprite, component.CTransform)
	items := make([]drawable, 0, len(ids))
	for _, id := range ids {
		sp := w.Get(id, component.CSprite).(component.Sprite)
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		def, _ := assets.Lookup(sp.Key)
		tx, ty := tileOf(grid, pos)
		items = append(items, drawable{
			order: def.RenderOrder,
			tx:    tx,
			ty:    ty,
			glyph: assets.Glyph(sp.Key, sp.Frame),
			fg:    tcellColor(def.Color),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].order < items[j].order })

	for _, d := range items {
		sx, sy, onScreen := r.camera.WorldToScreen(d.tx, d.ty)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, d.glyph, tcell.StyleDefault.Foreground(d.fg).Background(colorBackdrop))
	}
}

// tileOf maps a world position to a tile for display. Unlike TileAt it
// floors negative coordinates, so an entity just off the grid draws
// next to it instead of on tile 0.
func tileOf(grid *tilemap.PassableTiles, p geom.Vec2) (int, int) {
	if !p.IsFinite() || grid.TileSize <= 0 {
		return -1, -1
	}
	return int(math.Floor(p.X / grid.TileSize)), int(math.Floor(p.Y / grid.TileSize))
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
