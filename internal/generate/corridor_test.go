package generate

import (
	"math/rand"
	"testing"

	"penguin-patrol/internal/tilemap"
)

// allFloorRow checks that every tile at y between x1 and x2 (inclusive) is passable.
func allFloorRow(grid *tilemap.PassableTiles, x1, x2, y int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if !grid.IsPassable(x, y) {
			return false
		}
	}
	return true
}

// allFloorCol checks that every tile at x between y1 and y2 (inclusive) is passable.
func allFloorCol(grid *tilemap.PassableTiles, y1, y2, x int) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if !grid.IsPassable(x, y) {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	grid := tilemap.New(20, 20, 32)
	carveH(grid, 3, 8, 5, 1)

	if !allFloorRow(grid, 3, 8, 5) {
		t.Error("carveH(3,8,5) should open tiles from x=3 to x=8 at y=5")
	}
	// Tiles just outside the segment must remain walls.
	if grid.IsPassable(2, 5) || grid.IsPassable(9, 5) {
		t.Error("tiles outside the segment should remain walls")
	}
	if grid.IsPassable(5, 6) {
		t.Error("width 1 corridor should not open the next row")
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	grid := tilemap.New(20, 20, 32)
	carveH(grid, 8, 3, 5, 1) // reversed
	if !allFloorRow(grid, 3, 8, 5) {
		t.Error("carveH with reversed x args should still carve x=3..8")
	}
}

func TestCarveVWide(t *testing.T) {
	grid := tilemap.New(20, 20, 32)
	carveV(grid, 2, 9, 4, 2)
	if !allFloorCol(grid, 2, 9, 4) || !allFloorCol(grid, 2, 9, 5) {
		t.Error("width 2 vertical corridor should open columns 4 and 5")
	}
	if grid.IsPassable(6, 5) {
		t.Error("column 6 should remain a wall")
	}
}

func TestCarveKeepsBorderSolid(t *testing.T) {
	grid := tilemap.New(10, 10, 32)
	carveH(grid, 0, 9, 0, 1)
	carveV(grid, 0, 9, 9, 1)
	for x := 0; x < 10; x++ {
		if grid.IsPassable(x, 0) || grid.IsPassable(x, 9) {
			t.Fatalf("border row opened at x=%d", x)
		}
	}
	for y := 0; y < 10; y++ {
		if grid.IsPassable(9, y) {
			t.Fatalf("border column opened at y=%d", y)
		}
	}
}

func TestCarveCorridorConnectsEndpoints(t *testing.T) {
	styles := []CorridorStyle{CorridorLShaped, CorridorZShaped, CorridorStraight}
	for _, style := range styles {
		for seed := int64(0); seed < 4; seed++ {
			grid := tilemap.New(30, 30, 32)
			cfg := &Config{CorridorStyle: style, CorridorWidth: 1, Rand: rand.New(rand.NewSource(seed))}
			carveCorridor(grid, 3, 4, 20, 17, cfg)
			if !grid.IsPassable(3, 4) || !grid.IsPassable(20, 17) {
				t.Errorf("style=%d seed=%d: endpoints not carved", style, seed)
			}
		}
	}
}
