package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func cellBackground(screen tcell.Screen, x, y int) (int32, int32, int32) {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg.RGB()
}

func TestTerminalCellMappingRoundtrip(t *testing.T) {
	screen := newSimScreen(t, 80, 40)
	r := NewTerminal(screen, 400, 2, DefaultStyle())

	for _, c := range [][2]int{{40, 20}, {0, 0}, {79, 39}, {10, 33}} {
		fx, fy := r.CellToField(c[0], c[1])
		cx, cy := r.FieldToCell(fx, fy)
		if cx != c[0] || cy != c[1] {
			t.Errorf("cell %v -> field (%v, %v) -> cell (%d, %d)", c, fx, fy, cx, cy)
		}
	}
}

func TestTerminalDrawsParticleAtCenter(t *testing.T) {
	screen := newSimScreen(t, 80, 40)
	r := NewTerminal(screen, 400, 2, DefaultStyle())

	r.ClearFrame()
	r.FillBackground()
	r.DrawParticle(0, 0, 40, 120)
	r.Show()

	red, green, blue := cellBackground(screen, 40, 20)
	if red != 0 || green != 255 || blue != 0 {
		t.Errorf("center cell background = %d,%d,%d, want green", red, green, blue)
	}

	// Field background inside the circle, away from the particle
	red, green, blue = cellBackground(screen, 40, 2)
	if red != 0 || green != 0 || blue != 0 {
		t.Errorf("field cell background = %d,%d,%d, want black", red, green, blue)
	}
}

func TestTerminalTinyParticleStillVisible(t *testing.T) {
	screen := newSimScreen(t, 80, 40)
	r := NewTerminal(screen, 400, 2, DefaultStyle())

	r.ClearFrame()
	r.FillBackground()
	r.DrawParticle(100, 0, 0.1, 0)

	cx, cy := r.FieldToCell(100, 0)
	red, _, _ := cellBackground(screen, cx, cy)
	if red != 255 {
		t.Errorf("cell (%d,%d) red = %d, want 255", cx, cy, red)
	}
}
