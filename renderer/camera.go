package renderer

import "math"

// Camera maps world coordinates to screen coordinates with pan and zoom.
// The world is toroidal, so the mapping always takes the shortest wrap to
// the camera center and entities near the seam get ghost copies.
type Camera struct {
	// Center in world coordinates
	X, Y float32

	Zoom float32

	viewportW, viewportH float32
	worldW, worldH       float32

	minZoom, maxZoom float32
}

// NewCamera creates a camera centered on the world at 1:1 zoom. Minimum zoom
// keeps the visible area within the world so the view never tiles.
func NewCamera(viewportW, viewportH, worldW, worldH float32) *Camera {
	minZoom := viewportW / worldW
	if z := viewportH / worldH; z > minZoom {
		minZoom = z
	}

	return &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		Zoom:      1.0,
		viewportW: viewportW,
		viewportH: viewportH,
		worldW:    worldW,
		worldH:    worldH,
		minZoom:   minZoom,
		maxZoom:   4.0,
	}
}

// WorldToScreen converts world coordinates to screen coordinates via the
// shortest toroidal path to the camera center.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := wrapDelta(wx, c.X, c.worldW)
	dy := wrapDelta(wy, c.Y, c.worldH)

	sx = c.viewportW/2 + dx*c.Zoom
	sy = c.viewportH/2 + dy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - c.viewportW/2) / c.Zoom
	dy := (sy - c.viewportH/2) / c.Zoom

	wx = posMod(c.X+dx, c.worldW)
	wy = posMod(c.Y+dy, c.worldH)
	return wx, wy
}

// IsVisible reports whether a disc at (wx, wy) could appear on screen.
// Conservative, for culling.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	dx := wrapDelta(wx, c.X, c.worldW)
	dy := wrapDelta(wy, c.Y, c.worldH)

	halfW := c.viewportW/(2*c.Zoom) + radius
	halfH := c.viewportH/(2*c.Zoom) + radius

	return absf(dx) <= halfW && absf(dy) <= halfH
}

// Pan moves the camera by a screen-pixel delta, wrapping at world edges.
func (c *Camera) Pan(dx, dy float32) {
	c.X = posMod(c.X+dx/c.Zoom, c.worldW)
	c.Y = posMod(c.Y+dy/c.Zoom, c.worldH)
}

// ZoomBy multiplies the zoom by factor, clamped to the valid range.
func (c *Camera) ZoomBy(factor float32) {
	z := c.Zoom * factor
	if z < c.minZoom {
		z = c.minZoom
	}
	if z > c.maxZoom {
		z = c.maxZoom
	}
	c.Zoom = z
}

// Reset recenters the camera at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = c.worldW / 2
	c.Y = c.worldH / 2
	c.Zoom = 1.0
}

// wrapDelta computes the shortest signed distance from 'from' to 'to' in a
// toroidal dimension of the given size.
func wrapDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// posMod computes the positive modulo (Go's % can return negative).
func posMod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
