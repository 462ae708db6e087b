package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Image renders frames into an in-memory square image, clipped to the field.
type Image struct {
	dc          *gg.Context
	size        int
	scale       float64 // Pixels per field unit
	fieldRadius float64
	style       Style
}

// NewImage creates an image renderer of size x size pixels showing a field of the given radius.
func NewImage(size int, fieldRadius float64, style Style) *Image {
	return &Image{
		dc:          gg.NewContext(size, size),
		size:        size,
		scale:       float64(size) / (2 * fieldRadius),
		fieldRadius: fieldRadius,
		style:       style,
	}
}

func (r *Image) toPixel(x, y float64) (float64, float64) {
	half := float64(r.size) / 2
	return half + x*r.scale, half + y*r.scale
}

// ClearFrame makes the image transparent and clips drawing to the field circle.
func (r *Image) ClearFrame() {
	r.dc.ResetClip()
	r.dc.SetColor(color.Transparent)
	r.dc.Clear()

	half := float64(r.size) / 2
	r.dc.DrawCircle(half, half, r.fieldRadius*r.scale)
	r.dc.Clip()
}

// FillBackground fills the clipped field.
func (r *Image) FillBackground() {
	r.dc.SetColor(r.style.Background)
	r.dc.DrawRectangle(0, 0, float64(r.size), float64(r.size))
	r.dc.Fill()
}

// DrawParticle strokes then fills the union of the particle's mirrored discs.
func (r *Image) DrawParticle(x, y, radius, hue float64) {
	for _, p := range Kaleidoscope(x, y) {
		px, py := r.toPixel(p.X, p.Y)
		r.dc.DrawCircle(px, py, radius*r.scale)
	}
	r.dc.SetLineWidth(r.style.OutlineWidth)
	r.dc.SetColor(r.style.Outline)
	r.dc.StrokePreserve()
	r.dc.SetColor(r.style.Fill(hue))
	r.dc.Fill()
}

// Image returns the rendered frame.
func (r *Image) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current frame to path.
func (r *Image) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving frame: %w", err)
	}
	return nil
}
