package telemetry

import "github.com/pthm-cable/hexbloom/systems"

// Collector accumulates tick events within windows and produces WindowStats.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	// Event counters for current window
	spawns   int
	expiries int
	resets   int
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// Record adds one tick's events to the current window.
func (c *Collector) Record(report systems.TickReport) {
	c.spawns += report.Spawned
	c.expiries += report.Expired
	if report.Reset {
		c.resets++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the live simulation and resets counters.
func (c *Collector) Flush(currentTick int64, sim *systems.Simulation) WindowStats {
	particles := sim.Particles()
	radii := make([]float64, 0, len(particles))
	speeds := make([]float64, 0, len(particles))
	hues := make([]float64, 0, len(particles))
	wandering := 0
	for _, p := range particles {
		radii = append(radii, p.R)
		speeds = append(speeds, p.Speed)
		hues = append(hues, p.Hue)
		if p.State() == systems.StateWandering {
			wandering++
		}
	}

	radiusMean, radiusStd, radiusP50, radiusP90 := ComputeDistribution(radii)
	speedMean, _, _, _ := ComputeDistribution(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Population:      len(particles),
		Wandering:       wandering,
		Spawns:          c.spawns,
		Expiries:        c.expiries,
		Resets:          c.resets,
		RadiusMean:      radiusMean,
		RadiusStd:       radiusStd,
		RadiusP50:       radiusP50,
		RadiusP90:       radiusP90,
		SpeedMean:       speedMean,
		HueMean:         CircularMeanDegrees(hues),
		GlobalHeading:   sim.GlobalHeading(),
		GlobalHue:       sim.GlobalHue(),
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawns = 0
	c.expiries = 0
	c.resets = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}
