// Package camera fits the circular simulation field into a resizable window.
package camera

// Camera maps field coordinates (origin at the field center, y down like the
// screen) onto the window. The field is shown as a square of side
// min(viewportW, viewportH) - 2*margin, centered in the viewport.
type Camera struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// FieldRadius is the field radius in field units
	FieldRadius float32

	// Margin kept free around the displayed field, in pixels
	Margin float32

	// Zoom is screen pixels per field unit, recomputed on Resize
	Zoom float32
}

// minDisplay keeps the field visible in tiny windows.
const minDisplay = 16

// New creates a camera for a field of the given radius.
func New(viewportW, viewportH, fieldRadius, margin float32) *Camera {
	c := &Camera{
		FieldRadius: fieldRadius,
		Margin:      margin,
	}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and recomputes the zoom.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	display := min(viewportW, viewportH) - 2*c.Margin
	if display < minDisplay {
		display = minDisplay
	}
	c.Zoom = display / (2 * c.FieldRadius)
}

// FieldToScreen converts field coordinates to screen coordinates.
func (c *Camera) FieldToScreen(fx, fy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + fx*c.Zoom
	sy = c.ViewportH/2 + fy*c.Zoom
	return sx, sy
}

// ScreenToField converts screen coordinates to field coordinates.
func (c *Camera) ScreenToField(sx, sy float32) (fx, fy float32) {
	fx = (sx - c.ViewportW/2) / c.Zoom
	fy = (sy - c.ViewportH/2) / c.Zoom
	return fx, fy
}

// ScreenRadius converts a field length to pixels.
func (c *Camera) ScreenRadius(r float32) float32 {
	return r * c.Zoom
}

// ContainsScreen reports whether a screen point lies inside the displayed field circle.
func (c *Camera) ContainsScreen(sx, sy float32) bool {
	fx, fy := c.ScreenToField(sx, sy)
	return fx*fx+fy*fy <= c.FieldRadius*c.FieldRadius
}

// Center returns the screen position of the field center.
func (c *Camera) Center() (sx, sy float32) {
	return c.ViewportW / 2, c.ViewportH / 2
}
