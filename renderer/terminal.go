package renderer

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Terminal rasterizes frames onto a tcell screen, one colored cell per pixel.
// Outlines are too thin to show at cell resolution and are skipped.
type Terminal struct {
	screen      tcell.Screen
	fieldRadius float64
	aspect      float64 // Cell height / cell width
	style       Style
}

// NewTerminal creates a terminal renderer. aspect <= 0 defaults to 2.
func NewTerminal(screen tcell.Screen, fieldRadius, aspect float64, style Style) *Terminal {
	if aspect <= 0 {
		aspect = 2
	}
	return &Terminal{
		screen:      screen,
		fieldRadius: fieldRadius,
		aspect:      aspect,
		style:       style,
	}
}

// rowsPerUnit is the vertical scale; horizontal scale is rowsPerUnit * aspect.
func (r *Terminal) rowsPerUnit() float64 {
	w, h := r.screen.Size()
	rows := math.Min(float64(h), float64(w)/r.aspect)
	return rows / (2 * r.fieldRadius)
}

// CellToField returns the field position of a cell center.
func (r *Terminal) CellToField(cx, cy int) (float64, float64) {
	w, h := r.screen.Size()
	s := r.rowsPerUnit()
	fx := (float64(cx) + 0.5 - float64(w)/2) / (s * r.aspect)
	fy := (float64(cy) + 0.5 - float64(h)/2) / s
	return fx, fy
}

// FieldToCell returns the cell containing a field position.
func (r *Terminal) FieldToCell(fx, fy float64) (int, int) {
	w, h := r.screen.Size()
	s := r.rowsPerUnit()
	cx := int(math.Floor(fx*s*r.aspect + float64(w)/2))
	cy := int(math.Floor(fy*s + float64(h)/2))
	return cx, cy
}

// ClearFrame clears the screen.
func (r *Terminal) ClearFrame() {
	r.screen.Clear()
}

// FillBackground paints every cell inside the field circle.
func (r *Terminal) FillBackground() {
	w, h := r.screen.Size()
	st := cellStyle(r.style.Background)
	r2 := r.fieldRadius * r.fieldRadius
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := r.CellToField(x, y)
			if fx*fx+fy*fy <= r2 {
				r.screen.SetContent(x, y, ' ', nil, st)
			}
		}
	}
}

// DrawParticle fills the cells covered by the particle's mirrored discs.
// A disc smaller than a cell still marks the cell holding its center.
func (r *Terminal) DrawParticle(x, y, radius, hue float64) {
	st := cellStyle(r.style.Fill(hue))
	w, h := r.screen.Size()
	s := r.rowsPerUnit()
	if s <= 0 {
		return
	}
	fr2 := r.fieldRadius * r.fieldRadius
	rad2 := radius * radius

	for _, p := range Kaleidoscope(x, y) {
		x0, y0 := r.FieldToCell(p.X-radius, p.Y-radius)
		x1, y1 := r.FieldToCell(p.X+radius, p.Y+radius)
		for cy := max(y0, 0); cy <= min(y1, h-1); cy++ {
			for cx := max(x0, 0); cx <= min(x1, w-1); cx++ {
				fx, fy := r.CellToField(cx, cy)
				dx, dy := fx-p.X, fy-p.Y
				if dx*dx+dy*dy <= rad2 && fx*fx+fy*fy <= fr2 {
					r.screen.SetContent(cx, cy, ' ', nil, st)
				}
			}
		}
		cx, cy := r.FieldToCell(p.X, p.Y)
		if cx >= 0 && cx < w && cy >= 0 && cy < h && p.X*p.X+p.Y*p.Y <= fr2 {
			r.screen.SetContent(cx, cy, ' ', nil, st)
		}
	}
}

// Show flushes the frame to the terminal.
func (r *Terminal) Show() {
	r.screen.Show()
}

func cellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
