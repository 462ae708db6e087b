// Package renderer draws particle frames. The simulation only knows the
// Renderer contract; implementations target a raylib window, PNG images and
// terminals.
package renderer

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/hexbloom/config"
	"github.com/pthm-cable/hexbloom/systems"
)

// Renderer is the drawing contract the frame driver calls into.
// Coordinates are field coordinates centered on the origin.
type Renderer interface {
	ClearFrame()
	FillBackground()
	DrawParticle(x, y, radius, hue float64)
}

// DrawFrame draws a complete frame of particles.
func DrawFrame(r Renderer, particles []systems.RenderAttributes) {
	r.ClearFrame()
	r.FillBackground()
	for _, p := range particles {
		r.DrawParticle(p.X, p.Y, p.Radius, p.Hue)
	}
}

// Point is a position in field coordinates.
type Point struct {
	X, Y float64
}

// KaleidoscopeImages is the size of the D6 symmetry group.
const KaleidoscopeImages = 12

var (
	cos60 = math.Cos(math.Pi / 3)
	sin60 = math.Sin(math.Pi / 3)
)

// Kaleidoscope returns the 12 images of (x, y) under six-fold rotation and
// mirroring about the field center: rotations by 0, 60 and 120 degrees, those
// three mirrored across the vertical axis, then all six mirrored across the
// horizontal axis.
func Kaleidoscope(x, y float64) [KaleidoscopeImages]Point {
	var pts [KaleidoscopeImages]Point
	pts[0] = Point{x, y}
	pts[1] = Point{cos60*x - sin60*y, sin60*x + cos60*y}
	pts[2] = Point{-cos60*x - sin60*y, sin60*x - cos60*y}
	for i := 0; i < 3; i++ {
		pts[3+i] = Point{-pts[i].X, pts[i].Y}
	}
	for i := 0; i < 6; i++ {
		pts[6+i] = Point{pts[i].X, -pts[i].Y}
	}
	return pts
}

// Style holds the colors shared by every renderer.
type Style struct {
	Background   color.RGBA
	Outline      color.RGBA
	OutlineWidth float64
	Saturation   float64
	Lightness    float64
}

// DefaultStyle is black background, faint black outline, full saturation at 50% lightness.
func DefaultStyle() Style {
	return Style{
		Background:   color.RGBA{0, 0, 0, 255},
		Outline:      color.RGBA{0, 0, 0, 0x20},
		OutlineWidth: 1.5,
		Saturation:   1,
		Lightness:    0.5,
	}
}

// NewStyle builds a Style from render configuration.
func NewStyle(cfg config.RenderConfig) (Style, error) {
	bg, err := ParseHexColor(cfg.Background)
	if err != nil {
		return Style{}, fmt.Errorf("render.background: %w", err)
	}
	outline, err := ParseHexColor(cfg.OutlineColor)
	if err != nil {
		return Style{}, fmt.Errorf("render.outline_color: %w", err)
	}
	return Style{
		Background:   bg,
		Outline:      outline,
		OutlineWidth: cfg.OutlineWidth,
		Saturation:   cfg.Saturation,
		Lightness:    cfg.Lightness,
	}, nil
}

// Fill returns the fill color for a hue.
func (s Style) Fill(hue float64) color.RGBA {
	return HSLColor(hue, s.Saturation, s.Lightness)
}

// HueColor returns the fully saturated, 50% lightness color for a hue in degrees.
func HueColor(hue float64) color.RGBA {
	return HSLColor(hue, 1, 0.5)
}

// HSLColor converts HSL to an opaque RGBA color.
func HSLColor(hue, saturation, lightness float64) color.RGBA {
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
