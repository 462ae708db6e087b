// Package ui draws the on-screen HUD.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title         string
	Tick          int64
	Population    int
	Cap           int
	FPS           int32
	Speed         int
	Paused        bool
	Seed          int64
	GlobalHeading float64
	GlobalHue     float64
}

// HUDActions reports which HUD buttons were pressed this frame.
type HUDActions struct {
	Reset       bool
	TogglePause bool
	Snapshot    bool
}

// HUD renders the heads-up display.
type HUD struct {
	Theme   Theme
	visible bool
}

// NewHUD creates a new HUD.
func NewHUD() *HUD {
	return &HUD{Theme: DefaultTheme(), visible: true}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// StatusLines formats the HUD text.
func StatusLines(data HUDData) []string {
	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	return []string{
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		fmt.Sprintf("Particles: %d/%d | Seed: %d", data.Population, data.Cap, data.Seed),
		fmt.Sprintf("Drift: heading %.2f rad, hue %.0f", data.GlobalHeading, data.GlobalHue),
		status,
	}
}

// Draw renders the HUD and its buttons. Must be called inside a raylib frame.
func (h *HUD) Draw(data HUDData) HUDActions {
	var actions HUDActions
	if !h.visible {
		return actions
	}

	t := h.Theme
	lines := StatusLines(data)
	x, y := t.Padding, t.Padding
	width := int32(300)
	height := t.HeaderFontSize + int32(len(lines))*t.LineHeight + int32(t.ButtonHeight) + t.Padding*3

	t.drawPanel(x-4, y-4, width, height)

	rl.DrawText(data.Title, x, y, t.HeaderFontSize, t.TitleColor)
	y += t.HeaderFontSize + 4

	for i, line := range lines {
		color := t.LabelColor
		if i == len(lines)-1 {
			color = t.StatusColor
		}
		rl.DrawText(line, x, y, t.FontSize, color)
		y += t.LineHeight
	}
	y += 4

	bx, by := float32(x), float32(y)
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Reset") {
		actions.Reset = true
	}
	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: bx + t.ButtonWidth + 8, Y: by, Width: t.ButtonWidth, Height: t.ButtonHeight}, pauseLabel) {
		actions.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: bx + 2*(t.ButtonWidth+8), Y: by, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Snapshot") {
		actions.Snapshot = true
	}
	return actions
}

// ContainsPoint reports whether a screen point falls on the HUD panel,
// so clicks there are not treated as field clicks.
func (h *HUD) ContainsPoint(x, y float32, lineCount int) bool {
	if !h.visible {
		return false
	}
	t := h.Theme
	height := t.HeaderFontSize + int32(lineCount)*t.LineHeight + int32(t.ButtonHeight) + t.Padding*3
	return x >= float32(t.Padding-4) && x <= float32(t.Padding-4+300) &&
		y >= float32(t.Padding-4) && y <= float32(t.Padding-4+height)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	if !h.visible {
		return
	}
	rl.DrawText(controls, h.Theme.Padding, screenHeight-25, h.Theme.FontSize, rl.Gray)
}
