package render

import "dungeon-crawler/internal/gamemap"

// Camera is the window of the world shown on screen, kept centered on a
// focus point (normally the player). Right is exclusive; Bottom is inclusive.
type Camera struct {
	Left, Top, Right, Bottom int
	ViewWidth, ViewHeight    int // in tiles
}

// NewCamera creates a viewW x viewH camera focused on p.
func NewCamera(p gamemap.Point, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.OnPlayerMove(p)
	return c
}

// OnPlayerMove recenters the camera on p.
func (c *Camera) OnPlayerMove(p gamemap.Point) {
	c.Left = p.X - c.ViewWidth/2
	c.Right = p.X + c.ViewWidth/2
	c.Top = p.Y - c.ViewHeight/2
	c.Bottom = p.Y + c.ViewHeight/2
}

// Offset is the world coordinate drawn at the top-left screen tile.
func (c *Camera) Offset() gamemap.Point {
	return gamemap.Pt(c.Left, c.Top)
}

// Visible reports whether world point p falls inside the camera window.
func (c *Camera) Visible(p gamemap.Point) bool {
	return p.X >= c.Left && p.X < c.Right && p.Y >= c.Top && p.Y <= c.Bottom
}

// WorldToScreen converts world p to a screen tile. visible is false when the
// result falls outside the viewport.
func (c *Camera) WorldToScreen(p gamemap.Point) (gamemap.Point, bool) {
	return p.Sub(c.Offset()), c.Visible(p)
}

// ScreenToWorld converts a screen tile back to world coordinates.
func (c *Camera) ScreenToWorld(s gamemap.Point) gamemap.Point {
	return s.Add(c.Offset())
}

// Resize changes the window size and recenters it on focus.
func (c *Camera) Resize(viewW, viewH int, focus gamemap.Point) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.OnPlayerMove(focus)
}

// Rows returns how many map rows the window covers. Bottom is inclusive, so
// an even ViewHeight covers one row more than it names.
func (c *Camera) Rows() int {
	return c.Bottom - c.Top + 1
}
