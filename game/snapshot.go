package game

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pthm-cable/hexbloom/renderer"
	"github.com/pthm-cable/hexbloom/systems"
)

// attributes returns the render attributes of the live particles.
func (g *Game) attributes() []systems.RenderAttributes {
	particles := g.sim.Particles()
	attrs := make([]systems.RenderAttributes, len(particles))
	for i, p := range particles {
		attrs[i] = p.RenderAttributes()
	}
	return attrs
}

// frameRenderer returns the offscreen renderer, creating it on first use.
func (g *Game) frameRenderer() *renderer.Image {
	if g.frames == nil {
		size := min(g.cfg.Screen.Width, g.cfg.Screen.Height)
		g.frames = renderer.NewImage(size, g.cfg.Field.Radius, g.style)
	}
	return g.frames
}

// snapshotDir resolves where snapshots are written.
func (g *Game) snapshotDir() string {
	switch {
	case g.opts.SnapshotDir != "":
		return g.opts.SnapshotDir
	case g.outputManager != nil:
		return g.outputManager.Dir()
	default:
		return "."
	}
}

// Snapshot renders the current frame to a PNG and returns its path.
func (g *Game) Snapshot() (string, error) {
	dir := g.snapshotDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", g.sim.TickCount()))
	if err := g.renderFrame(path); err != nil {
		return "", err
	}
	slog.Info("snapshot saved", "tick", g.sim.TickCount(), "path", path)
	return path, nil
}

// writeFrameIfDue writes a PNG frame every FrameEvery ticks when output is enabled.
func (g *Game) writeFrameIfDue() {
	if g.opts.FrameEvery <= 0 || g.outputManager == nil {
		return
	}
	tick := g.sim.TickCount()
	if tick%int64(g.opts.FrameEvery) != 0 {
		return
	}
	if err := g.renderFrame(g.outputManager.FramePath(tick)); err != nil {
		slog.Error("failed to write frame", "tick", tick, "error", err)
	}
}

func (g *Game) renderFrame(path string) error {
	img := g.frameRenderer()
	renderer.DrawFrame(img, g.attributes())
	return img.SavePNG(path)
}
