package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hexbloom/camera"
)

// ringSegments is enough for smooth outlines at typical particle sizes.
const ringSegments = 48

// Raylib draws into the current raylib frame through a camera.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type Raylib struct {
	cam   *camera.Camera
	style Style
}

// NewRaylib creates a window renderer.
func NewRaylib(cam *camera.Camera, style Style) *Raylib {
	return &Raylib{cam: cam, style: style}
}

// ClearFrame clears the whole window.
func (r *Raylib) ClearFrame() {
	rl.ClearBackground(rlColor(r.style.Background))
}

// FillBackground fills the field disc.
func (r *Raylib) FillBackground() {
	cx, cy := r.cam.Center()
	rl.DrawCircleV(rl.NewVector2(cx, cy), r.cam.ScreenRadius(r.cam.FieldRadius), rlColor(r.style.Background))
}

// DrawParticle draws the particle's twelve mirrored discs: outlines first,
// then fills on top so only the outer half of each outline shows.
func (r *Raylib) DrawParticle(x, y, radius, hue float64) {
	pts := Kaleidoscope(x, y)
	rad := r.cam.ScreenRadius(float32(radius))
	halfWidth := float32(r.style.OutlineWidth) / 2
	outline := rlColor(r.style.Outline)
	fill := rlColor(r.style.Fill(hue))

	var centers [KaleidoscopeImages]rl.Vector2
	for i, p := range pts {
		sx, sy := r.cam.FieldToScreen(float32(p.X), float32(p.Y))
		centers[i] = rl.NewVector2(sx, sy)
	}

	inner := rad - halfWidth
	if inner < 0 {
		inner = 0
	}
	for _, c := range centers {
		rl.DrawRing(c, inner, rad+halfWidth, 0, 360, ringSegments, outline)
	}
	for _, c := range centers {
		rl.DrawCircleV(c, rad, fill)
	}
}

// MaskOutsideField paints over everything beyond the field circle.
// raylib has no circular clip, so this runs after the particles.
func (r *Raylib) MaskOutsideField() {
	cx, cy := r.cam.Center()
	inner := r.cam.ScreenRadius(r.cam.FieldRadius)
	outer := r.cam.ViewportW + r.cam.ViewportH
	rl.DrawRing(rl.NewVector2(cx, cy), inner, outer, 0, 360, 128, rlColor(r.style.Background))
}

func rlColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
