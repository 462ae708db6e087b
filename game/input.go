package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.TogglePause()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.RequestReset()
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyS) {
		g.snapshot()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// A click inside the field starts over
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if !g.hud.ContainsPoint(m.X, m.Y, hudLines) && g.camera.ContainsScreen(m.X, m.Y) {
			g.RequestReset()
		}
	}
}

// handleResize checks for window resize and refits the field.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.camera.ViewportW && h == g.camera.ViewportH {
		return
	}
	g.camera.Resize(w, h)
	slog.Debug("window resized", "width", w, "height", h, "zoom", g.camera.Zoom)
}

func (g *Game) snapshot() {
	if _, err := g.Snapshot(); err != nil {
		slog.Error("snapshot failed", "error", err)
	}
}
