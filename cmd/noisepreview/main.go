// Noise preview tool - plots a harmonic noise series with adjustable parameters.
//
// Usage: go run ./cmd/noisepreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hexbloom/noise"
)

const (
	windowWidth  = 1000
	windowHeight = 560
	plotWidth    = 600
	plotHeight   = 400
	panelWidth   = windowWidth - plotWidth - 40
	sampleCount  = plotWidth
)

// previewParams holds the slider state.
type previewParams struct {
	noise.Params
	Seed int64
}

// sampleSeries draws n consecutive values from a fresh generator.
func sampleSeries(p previewParams, n int) ([]float64, error) {
	rnd := rand.New(rand.NewSource(p.Seed))
	gen, err := noise.New(rnd.Float64, p.Params)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = gen.Next()
	}
	return out, nil
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Noise Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := previewParams{Params: noise.DefaultParams(), Seed: 1}

	var samples []float64
	var genErr error
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			samples, genErr = sampleSeries(params, sampleCount)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPlot(samples, params.Params, genErr)

		panelX := float32(plotWidth + 30)
		panelY := float32(10)
		rl.DrawText("Noise Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		var changed bool
		params.Period, changed = slider(panelX, &panelY, "Period (ticks per control point)", "%.0f", params.Period, 1, 1000)
		needsRegen = needsRegen || changed

		harmonics, changed := slider(panelX, &panelY, "Harmonics", "%.0f", float64(params.Harmonics), 1, 8)
		params.Harmonics = int(harmonics)
		needsRegen = needsRegen || changed

		params.Attenuation, changed = slider(panelX, &panelY, "Attenuation", "%.2f", params.Attenuation, 0, 1)
		needsRegen = needsRegen || changed

		params.Low, changed = slider(panelX, &panelY, "Low", "%.2f", params.Low, -10, 10)
		needsRegen = needsRegen || changed

		params.High, changed = slider(panelX, &panelY, "High", "%.2f", params.High, -10, 10)
		needsRegen = needsRegen || changed

		seed, changed := slider(panelX, &panelY, "Seed", "%.0f", float64(params.Seed), 0, 99999)
		params.Seed = int64(seed)
		needsRegen = needsRegen || changed

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset") {
			params = previewParams{Params: noise.DefaultParams(), Seed: 1}
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Next seed") {
			params.Seed++
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider bar and advances y. Returns the new value and whether it changed.
func slider(x float32, y *float32, label, format string, value, minV, maxV float64) (float64, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	newValue := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%g", minV), fmt.Sprintf("%g", maxV),
		float32(value), float32(minV), float32(maxV),
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	if float64(newValue) == float64(float32(value)) {
		return value, false
	}
	return float64(newValue), true
}

// drawPlot draws the series scaled to [Low, High].
func drawPlot(samples []float64, p noise.Params, genErr error) {
	const ox, oy = 10, 10
	rl.DrawRectangle(ox, oy, plotWidth, plotHeight, rl.Black)
	rl.DrawRectangleLines(ox, oy, plotWidth, plotHeight, rl.DarkGray)

	if genErr != nil {
		rl.DrawText(genErr.Error(), ox+10, oy+10, 16, rl.Red)
		return
	}

	low, high := p.Bounds()
	span := high - low
	if span == 0 {
		span = 1
	}
	toY := func(v float64) float32 {
		return float32(oy+plotHeight) - float32((v-low)/span)*plotHeight
	}

	for i := 1; i < len(samples); i++ {
		rl.DrawLineV(
			rl.Vector2{X: float32(ox + i - 1), Y: toY(samples[i-1])},
			rl.Vector2{X: float32(ox + i), Y: toY(samples[i])},
			rl.SkyBlue,
		)
	}

	minV, maxV := samples[0], samples[0]
	for _, v := range samples {
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	statsY := int32(oy + plotHeight + 15)
	rl.DrawText(fmt.Sprintf("Range: [%.2f, %.2f]  Observed: [%.3f, %.3f]", low, high, minV, maxV), ox+5, statsY, 16, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("%d samples", len(samples)), ox+5, statsY+20, 16, rl.DarkGray)
}
