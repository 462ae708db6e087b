// Package telemetry provides swarm statistics, performance tracking and CSV output.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Population at window end
	Population int `csv:"population"`
	Wandering  int `csv:"wandering"`

	// Events during window
	Spawns   int `csv:"spawns"`
	Expiries int `csv:"expiries"`
	Resets   int `csv:"resets"`

	// Radius distribution (sampled at window end)
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`

	SpeedMean float64 `csv:"speed_mean"`
	HueMean   float64 `csv:"hue_mean"` // Circular mean in degrees

	// Global drift values
	GlobalHeading float64 `csv:"global_heading"`
	GlobalHue     float64 `csv:"global_hue"`
}

// ComputeDistribution returns mean, sample standard deviation and the 50th/90th
// empirical quantiles. Empty input returns zeros.
func ComputeDistribution(values []float64) (mean, std, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

// CircularMeanDegrees averages angles in degrees, returning a value in [0, 360).
// Empty input returns 0.
func CircularMeanDegrees(degrees []float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	rad := make([]float64, len(degrees))
	for i, d := range degrees {
		rad[i] = d * math.Pi / 180
	}
	mean := stat.CircularMean(rad, nil) * 180 / math.Pi
	if mean < 0 {
		mean += 360
	}
	if mean >= 360 {
		mean -= 360
	}
	return mean
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("population", s.Population),
		slog.Int("wandering", s.Wandering),
		slog.Int("spawns", s.Spawns),
		slog.Int("expiries", s.Expiries),
		slog.Int("resets", s.Resets),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_p90", s.RadiusP90),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("hue_mean", s.HueMean),
		slog.Float64("global_heading", s.GlobalHeading),
		slog.Float64("global_hue", s.GlobalHue),
	)
}

// LogStats logs the window at info level.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
