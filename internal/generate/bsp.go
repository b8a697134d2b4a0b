// Package generate builds random arenas with binary space partitioning.
package generate

import (
	"math/rand"

	"penguin-patrol/internal/tilemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives procedural generation of one arena.
type Config struct {
	MapWidth, MapHeight int // in tiles
	TileSize            float64
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	CorridorWidth       int
	Rand                *rand.Rand
}

// DefaultConfig returns a medium arena sized for the terminal host.
func DefaultConfig(tileSize float64, rng *rand.Rand) *Config {
	return &Config{
		MapWidth:      48,
		MapHeight:     28,
		TileSize:      tileSize,
		MinLeafSize:   8,
		MaxLeafSize:   18,
		MinRoomSize:   5,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		CorridorWidth: 2,
		Rand:          rng,
	}
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *tilemap.Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false // already split
	}
	// Decide split direction: horizontal when taller, vertical when wider.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false // too small to split
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	split := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: split}
		l.right = &bspLeaf{X: l.X, Y: l.Y + split, W: l.W, H: l.H - split}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: split, H: l.H}
		l.right = &bspLeaf{X: l.X + split, Y: l.Y, W: l.W - split, H: l.H}
	}
	return true
}

// createRooms recursively opens rooms inside terminal leaves.
func (l *bspLeaf) createRooms(grid *tilemap.PassableTiles, cfg *Config) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(grid, cfg)
		}
		if l.right != nil {
			l.right.createRooms(grid, cfg)
		}
		return
	}
	pad := cfg.RoomPadding
	minSize := cfg.MinRoomSize

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := minSize + cfg.Rand.Intn(max(1, availW-minSize+1))
	rh := minSize + cfg.Rand.Intn(max(1, availH-minSize+1))

	// Clamp to leaf bounds
	rw = max(min(rw, l.W-2*pad), 3)
	rh = max(min(rh, l.H-2*pad), 3)

	rx := max(l.X+pad+cfg.Rand.Intn(max(1, l.W-rw-2*pad+1)), 1)
	ry := max(l.Y+pad+cfg.Rand.Intn(max(1, l.H-rh-2*pad+1)), 1)

	// Leave a 1-tile border around the arena.
	if rx+rw >= grid.Width {
		rw = grid.Width - rx - 1
	}
	if ry+rh >= grid.Height {
		rh = grid.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := tilemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			grid.Set(x, y, true)
		}
	}
	grid.Rooms = append(grid.Rooms, room)
}

// getRoom returns a room from this leaf's subtree, or nil.
func (l *bspLeaf) getRoom() *tilemap.Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.getRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.getRoom()
	}
	return nil
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(grid *tilemap.PassableTiles, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(grid, cfg)
	l.right.connectChildren(grid, cfg)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lCX, lCY := lRoom.Center()
	rCX, rCY := rRoom.Center()
	carveCorridor(grid, lCX, lCY, rCX, rCY, cfg)
}

// Arena runs BSP generation and returns the walkability grid.
// The player starts in the center of the first room.
func Arena(cfg *Config) *tilemap.PassableTiles {
	grid := tilemap.New(cfg.MapWidth, cfg.MapHeight, cfg.TileSize)

	root := &bspLeaf{X: 0, Y: 0, W: cfg.MapWidth, H: cfg.MapHeight}

	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(grid, cfg)
	root.connectChildren(grid, cfg)

	px, py := 1, 1
	if len(grid.Rooms) > 0 {
		px, py = grid.Rooms[0].Center()
	}
	grid.Set(px, py, true)
	grid.Start = grid.CenterOf(px, py)
	return grid
}
