// Package game drives the simulation: ticks, input, rendering and telemetry.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/hexbloom/camera"
	"github.com/pthm-cable/hexbloom/config"
	"github.com/pthm-cable/hexbloom/renderer"
	"github.com/pthm-cable/hexbloom/systems"
	"github.com/pthm-cable/hexbloom/telemetry"
	"github.com/pthm-cable/hexbloom/ui"
)

// Options configures game behavior.
type Options struct {
	Seed           int64
	LogStats       bool   // Output stats via slog
	StatsWindow    int    // Ticks per stats window (0 = use config)
	OutputDir      string // Directory for CSV output and frames (empty = disabled)
	SnapshotDir    string // Directory for PNG snapshots (empty = OutputDir or working dir)
	FrameEvery     int    // Write a PNG frame every N ticks in headless mode (0 = never)
	Headless       bool   // Run without graphics
	StepsPerUpdate int    // Simulation ticks per Update call
}

// Game holds the complete runtime state.
type Game struct {
	cfg  *config.Config
	opts Options
	sim  *systems.Simulation

	// Rendering (nil when headless)
	camera *camera.Camera
	screen *renderer.Raylib
	hud    *ui.HUD
	style  renderer.Style

	// Offscreen renderer for snapshots and frames, created lazily
	frames *renderer.Image

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	paused         bool
	stepsPerUpdate int
	err            error
}

// NewGameWithOptions creates a game for the given configuration.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	sim, err := systems.NewSimulation(cfg, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	style, err := renderer.NewStyle(cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("creating render style: %w", err)
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		opts:           opts,
		sim:            sim,
		style:          style,
		collector:      telemetry.NewCollector(statsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		stepsPerUpdate: steps,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if !opts.Headless {
		g.camera = camera.New(
			float32(cfg.Screen.Width), float32(cfg.Screen.Height),
			float32(cfg.Field.Radius), float32(cfg.Screen.Margin),
		)
		g.screen = renderer.NewRaylib(g.camera, style)
		g.hud = ui.NewHUD()
	}

	slog.Info("game created",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"stats_window", statsWindow,
		"output_dir", opts.OutputDir,
	)

	return g, nil
}

// step runs a single simulation tick with telemetry.
func (g *Game) step() {
	if g.err != nil {
		return
	}

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseSimulation)
	if _, err := g.sim.Tick(); err != nil {
		g.err = fmt.Errorf("tick %d: %w", g.sim.TickCount(), err)
		slog.Error("simulation halted", "error", g.err)
		g.perfCollector.EndTick()
		return
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.Record(g.sim.LastTick())
	g.flushTelemetry()

	g.perfCollector.StartPhase(telemetry.PhaseFrames)
	g.writeFrameIfDue()

	g.perfCollector.EndTick()
}

// UpdateHeadless runs simulation steps without any raylib calls.
func (g *Game) UpdateHeadless() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// RequestReset schedules a reset for the start of the next tick.
func (g *Game) RequestReset() {
	g.sim.RequestReset()
}

// TogglePause pauses or resumes ticking.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// Paused reports whether ticking is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Simulation returns the underlying simulation.
func (g *Game) Simulation() *systems.Simulation {
	return g.sim
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.sim.TickCount()
}

// Err returns the error that halted the simulation, if any.
func (g *Game) Err() error {
	return g.err
}

// Unload closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
