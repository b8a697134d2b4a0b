package generate

import "penguin-patrol/internal/tilemap"

// carveCorridor digs a tunnel between tile (x1,y1) and (x2,y2).
func carveCorridor(grid *tilemap.PassableTiles, x1, y1, x2, y2 int, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(grid, x1, y1, x2, y2, cfg.CorridorWidth)
	case CorridorStraight:
		carveH(grid, x1, x2, y1, cfg.CorridorWidth)
		carveV(grid, y1, y2, x2, cfg.CorridorWidth)
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveH(grid, x1, x2, y1, cfg.CorridorWidth)
			carveV(grid, y1, y2, x2, cfg.CorridorWidth)
		} else {
			carveV(grid, y1, y2, x1, cfg.CorridorWidth)
			carveH(grid, x1, x2, y2, cfg.CorridorWidth)
		}
	}
}

// carveH opens row y (and the width-1 rows below it) from x1 to x2.
func carveH(grid *tilemap.PassableTiles, x1, x2, y, width int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for dy := 0; dy < max(1, width); dy++ {
		for x := x1; x <= x2; x++ {
			carve(grid, x, y+dy)
		}
	}
}

// carveV opens column x (and the width-1 columns right of it) from y1 to y2.
func carveV(grid *tilemap.PassableTiles, y1, y2, x, width int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for dx := 0; dx < max(1, width); dx++ {
		for y := y1; y <= y2; y++ {
			carve(grid, x+dx, y)
		}
	}
}

func carveZShaped(grid *tilemap.PassableTiles, x1, y1, x2, y2, width int) {
	midY := (y1 + y2) / 2
	carveV(grid, y1, midY, x1, width)
	carveH(grid, x1, x2, midY, width)
	carveV(grid, midY, y2, x2, width)
}

// carve opens one tile, leaving the outer border solid.
func carve(grid *tilemap.PassableTiles, x, y int) {
	if x < 1 || y < 1 || x >= grid.Width-1 || y >= grid.Height-1 {
		return
	}
	grid.Set(x, y, true)
}
