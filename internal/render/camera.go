package render

import "space-trader/internal/gamemap"

// Camera translates between world coordinates and screen coordinates
// inside a viewport whose top-left corner sits at (ScreenX, ScreenY).
// Every tile is one terminal column wide.
type Camera struct {
	OffsetX, OffsetY int // world cell shown at the viewport's top-left
	ScreenX, ScreenY int
	ViewWidth        int // in terminal columns
	ViewHeight       int // in terminal rows
}

// NewCamera creates a camera for a viewport at (sx, sy) of size viewW×viewH.
func NewCamera(sx, sy, viewW, viewH int) *Camera {
	return &Camera{ScreenX: sx, ScreenY: sy, ViewWidth: viewW, ViewHeight: viewH}
}

// Center repositions the camera so that (cx, cy) is in the middle of the
// viewport. When the map fits, it is pinned to the top-left instead.
func (c *Camera) Center(cx, cy, mapW, mapH int) {
	c.OffsetX = axisOffset(cx, c.ViewWidth, mapW)
	c.OffsetY = axisOffset(cy, c.ViewHeight, mapH)
}

func axisOffset(center, view, size int) int {
	if size <= view {
		return 0
	}
	off := center - view/2
	return max(0, min(off, size-view))
}

// WorldToScreen converts a world cell to a screen cell. visible is false
// when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p gamemap.Position) (sx, sy int, visible bool) {
	vx, vy := p.X-c.OffsetX, p.Y-c.OffsetY
	visible = vx >= 0 && vx < c.ViewWidth && vy >= 0 && vy < c.ViewHeight
	return vx + c.ScreenX, vy + c.ScreenY, visible
}

// ScreenToWorld converts a screen cell to a world cell. ok is false when
// the screen cell is outside the viewport.
func (c *Camera) ScreenToWorld(sx, sy int) (p gamemap.Position, ok bool) {
	vx, vy := sx-c.ScreenX, sy-c.ScreenY
	if vx < 0 || vx >= c.ViewWidth || vy < 0 || vy >= c.ViewHeight {
		return gamemap.Position{}, false
	}
	return gamemap.Position{X: vx + c.OffsetX, Y: vy + c.OffsetY}, true
}
