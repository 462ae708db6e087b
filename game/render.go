package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hexbloom/renderer"
	"github.com/pthm-cable/hexbloom/ui"
)

// hudLines is the number of status lines the HUD draws.
const hudLines = 4

const controlsText = "Click/R: restart | Space: pause | S: snapshot | </>: speed | H: HUD | F11: fullscreen"

// Update handles input then runs StepsPerUpdate simulation ticks.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// Draw renders the field and HUD into the window.
func (g *Game) Draw() {
	rl.BeginDrawing()

	renderer.DrawFrame(g.screen, g.attributes())
	g.screen.MaskOutsideField()

	actions := g.hud.Draw(ui.HUDData{
		Title:         "Hexbloom",
		Tick:          g.sim.TickCount(),
		Population:    g.sim.Len(),
		Cap:           g.sim.Cap(),
		FPS:           rl.GetFPS(),
		Speed:         g.stepsPerUpdate,
		Paused:        g.paused,
		Seed:          g.opts.Seed,
		GlobalHeading: g.sim.GlobalHeading(),
		GlobalHue:     g.sim.GlobalHue(),
	})
	g.hud.DrawControls(int32(rl.GetScreenHeight()), controlsText)

	if g.err != nil {
		rl.DrawText(g.err.Error(), 10, int32(rl.GetScreenHeight())-50, 14, rl.Red)
	}

	rl.EndDrawing()

	// Button presses apply after the frame so the HUD stays consistent
	if actions.Reset {
		g.RequestReset()
	}
	if actions.TogglePause {
		g.TogglePause()
	}
	if actions.Snapshot {
		g.snapshot()
	}
}
