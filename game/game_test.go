package game

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/hexbloom/config"
)

func newHeadless(t *testing.T, opts Options) *Game {
	t.Helper()
	opts.Headless = true
	g, err := NewGameWithOptions(config.Default(), opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestUpdateHeadlessStepsPerUpdate(t *testing.T) {
	g := newHeadless(t, Options{Seed: 1, StepsPerUpdate: 3})

	g.UpdateHeadless()
	g.UpdateHeadless()

	if g.Tick() != 6 {
		t.Errorf("tick = %d, want 6", g.Tick())
	}
	if g.Simulation().Len() != 6 {
		t.Errorf("population = %d, want 6", g.Simulation().Len())
	}
	if g.Err() != nil {
		t.Errorf("unexpected error: %v", g.Err())
	}
}

func TestPauseStopsTicking(t *testing.T) {
	g := newHeadless(t, Options{Seed: 1})

	g.UpdateHeadless()
	if !g.TogglePause() {
		t.Fatal("expected paused after toggle")
	}
	g.UpdateHeadless()
	if g.Tick() != 1 {
		t.Errorf("tick = %d while paused, want 1", g.Tick())
	}
	g.TogglePause()
	g.UpdateHeadless()
	if g.Tick() != 2 {
		t.Errorf("tick = %d after resume, want 2", g.Tick())
	}
}

func TestRequestResetAppliesNextTick(t *testing.T) {
	g := newHeadless(t, Options{Seed: 5})
	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}

	g.RequestReset()
	if g.Simulation().Len() == 0 {
		t.Fatal("reset must not apply before the next tick")
	}
	g.UpdateHeadless()

	if !g.Simulation().LastTick().Reset {
		t.Error("expected reset recorded on the tick after the request")
	}
	if g.Simulation().Len() != 1 {
		t.Errorf("population after reset = %d, want 1", g.Simulation().Len())
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Population.Cap = 0
	if _, err := NewGameWithOptions(cfg, Options{Headless: true}); err == nil {
		t.Fatal("expected error for invalid config")
	}

	cfg = config.Default()
	cfg.Render.Background = "not-a-color"
	if _, err := NewGameWithOptions(cfg, Options{Headless: true}); err == nil {
		t.Fatal("expected error for invalid background color")
	}
}

func TestOutputDirWritesCSVAndFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g := newHeadless(t, Options{
		Seed:        2,
		OutputDir:   dir,
		StatsWindow: 10,
		FrameEvery:  10,
	})

	for i := 0; i < 20; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "frame_000010.png", "frame_000020.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("telemetry.csv has %d lines, want header + 2 windows", len(lines))
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	dir := t.TempDir()
	g := newHeadless(t, Options{Seed: 3, SnapshotDir: dir})
	for i := 0; i < 30; i++ {
		g.UpdateHeadless()
	}

	path, err := g.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if filepath.Base(path) != "frame_000030.png" {
		t.Errorf("path = %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cfg := config.Default()
	want := min(cfg.Screen.Width, cfg.Screen.Height)
	if img.Bounds().Dx() != want || img.Bounds().Dy() != want {
		t.Errorf("image size = %v, want %dx%d", img.Bounds(), want, want)
	}
}
