package tilemap

import (
	"math"

	"penguin-patrol/internal/geom"
)

// Rect is an axis-aligned rectangle of tiles used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center tile of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// PassableTiles is the static walkability grid of one level.
// Tiles is indexed [y][x]; true means an entity may stand there.
// Rows may be ragged: a missing cell counts as impassable.
type PassableTiles struct {
	Width, Height int
	TileSize      float64
	Tiles         [][]bool
	Rooms         []Rect
	Start         geom.Vec2 // player start, world pixels
}

// New creates a width×height grid with every tile impassable.
func New(width, height int, tileSize float64) *PassableTiles {
	tiles := make([][]bool, height)
	for y := range tiles {
		tiles[y] = make([]bool, width)
	}
	return &PassableTiles{Width: width, Height: height, TileSize: tileSize, Tiles: tiles}
}

// InBounds reports whether tile (x, y) has data in the grid.
func (m *PassableTiles) InBounds(x, y int) bool {
	return y >= 0 && y < len(m.Tiles) && x >= 0 && x < len(m.Tiles[y])
}

// Set marks tile (x, y) passable or not. Out-of-bounds writes are ignored.
func (m *PassableTiles) Set(x, y int, passable bool) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = passable
	}
}

// IsPassable returns true when (x, y) is in bounds and walkable.
func (m *PassableTiles) IsPassable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x]
}

// TileAt converts a world position to tile coordinates.
// Negative and non-finite coordinates are rejected before the conversion,
// so a position left of or above the grid never truncates onto tile 0.
func (m *PassableTiles) TileAt(p geom.Vec2) (x, y int, ok bool) {
	if !p.IsFinite() || p.X < 0 || p.Y < 0 || !(m.TileSize > 0) {
		return 0, 0, false
	}
	fx := math.Floor(p.X / m.TileSize)
	fy := math.Floor(p.Y / m.TileSize)
	if fx > math.MaxInt32 || fy > math.MaxInt32 {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// PassableAt reports whether the tile under world position p is walkable.
func (m *PassableTiles) PassableAt(p geom.Vec2) bool {
	x, y, ok := m.TileAt(p)
	return ok && m.IsPassable(x, y)
}

// CenterOf returns the world position at the middle of tile (x, y).
func (m *PassableTiles) CenterOf(x, y int) geom.Vec2 {
	return geom.Vec2{
		X: (float64(x) + 0.5) * m.TileSize,
		Y: (float64(y) + 0.5) * m.TileSize,
	}
}

// PassableCount returns the number of walkable tiles.
func (m *PassableTiles) PassableCount() int {
	n := 0
	for _, row := range m.Tiles {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}
