package render

// Camera translates between tile coordinates and screen cells.
// Tile X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int // leftmost visible tile
	OffsetY    int // topmost visible tile
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on tile (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that tile (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Follow centers on (cx, cy) but keeps a map of mapW×mapH tiles on screen
// as much as it fits. A map smaller than the view is centered.
func (c *Camera) Follow(cx, cy, mapW, mapH int) {
	c.Center(cx, cy)
	c.OffsetX = clampOffset(c.OffsetX, mapW, c.ViewWidth/2)
	c.OffsetY = clampOffset(c.OffsetY, mapH, c.ViewHeight)
}

func clampOffset(off, size, view int) int {
	if size <= view {
		return -(view - size) / 2
	}
	return max(0, min(off, size-view))
}

// WorldToScreen converts tile (tx, ty) to screen (sx, sy).
// visible is false when the cell falls outside the viewport.
func (c *Camera) WorldToScreen(tx, ty int) (sx, sy int, visible bool) {
	sx = (tx - c.OffsetX) * 2
	sy = ty - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to tile coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetY
}
