package renderer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImageRendersClippedField(t *testing.T) {
	r := NewImage(200, 400, DefaultStyle())
	r.ClearFrame()
	r.FillBackground()
	r.DrawParticle(0, 0, 50, 0)

	img := r.Image()

	// Particle at the center is red
	cr, cg, cb, ca := img.At(100, 100).RGBA()
	if cr>>8 != 255 || cg>>8 != 0 || cb>>8 != 0 || ca>>8 != 255 {
		t.Errorf("center pixel = %d,%d,%d,%d, want opaque red", cr>>8, cg>>8, cb>>8, ca>>8)
	}

	// Inside the field but away from the particle is background
	br, bg, bb, ba := img.At(100, 20).RGBA()
	if br != 0 || bg != 0 || bb != 0 || ba>>8 != 255 {
		t.Errorf("background pixel = %d,%d,%d,%d, want opaque black", br>>8, bg>>8, bb>>8, ba>>8)
	}

	// Corners lie outside the clip
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want transparent", a>>8)
	}
}

func TestImageDrawsMirroredImages(t *testing.T) {
	r := NewImage(400, 400, DefaultStyle())
	r.ClearFrame()
	r.FillBackground()
	// Field scale is 0.5 px/unit; (200, 0) lands 100px right of center
	r.DrawParticle(200, 0, 20, 120)

	img := r.Image()
	for _, p := range Kaleidoscope(200, 0) {
		px, py := int(200+p.X*0.5), int(200+p.Y*0.5)
		_, g, _, _ := img.At(px, py).RGBA()
		if g>>8 != 255 {
			t.Errorf("mirror image at (%d,%d) not green", px, py)
		}
	}
}

func TestImageSavePNG(t *testing.T) {
	r := NewImage(64, 400, DefaultStyle())
	r.ClearFrame()
	r.FillBackground()
	r.DrawParticle(10, 10, 30, 200)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("png size = %v, want 64x64", b)
	}
}
