package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/hexbloom/config"
	"github.com/pthm-cable/hexbloom/systems"
)

func TestComputeDistribution(t *testing.T) {
	values := []float64{10, 2, 9, 4, 5, 6, 7, 8, 3, 1}
	mean, std, p50, p90 := ComputeDistribution(values)

	if math.Abs(mean-5.5) > 1e-9 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// Sample std of 1..10
	if math.Abs(std-3.0276503540974917) > 1e-9 {
		t.Errorf("std = %v, want ~3.0277", std)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
	// Input left untouched
	if values[0] != 10 {
		t.Error("input slice was reordered")
	}
}

func TestComputeDistributionEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   [4]float64
	}{
		{"empty", nil, [4]float64{}},
		{"single", []float64{4}, [4]float64{4, 0, 4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p50, p90 := ComputeDistribution(tt.values)
			if got := [4]float64{mean, std, p50, p90}; got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircularMeanDegrees(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{123}, 123},
		{"across zero", []float64{350, 10}, 0},
		{"quarter", []float64{80, 100}, 90},
		{"negative side", []float64{260, 280}, 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircularMeanDegrees(tt.values)
			// 0 and 360 are the same angle
			diff := math.Mod(math.Abs(got-tt.want), 360)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1e-6 {
				t.Errorf("CircularMeanDegrees(%v) = %v, want %v", tt.values, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("result %v outside [0,360)", got)
			}
		})
	}
}

func TestCollectorFlush(t *testing.T) {
	sim, err := systems.NewSimulation(config.Default(), 5)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCollector(10)

	for i := 0; i < 10; i++ {
		if _, err := sim.Tick(); err != nil {
			t.Fatal(err)
		}
		c.Record(sim.LastTick())
	}
	if !c.ShouldFlush(sim.TickCount()) {
		t.Fatal("expected flush after a full window")
	}

	stats := c.Flush(sim.TickCount(), sim)
	if stats.Population != 6 || stats.Spawns != 6 || stats.Resets != 1 {
		t.Errorf("population/spawns/resets = %d/%d/%d, want 6/6/1", stats.Population, stats.Spawns, stats.Resets)
	}
	if stats.RadiusMean <= 0 {
		t.Errorf("radius mean = %v, want positive", stats.RadiusMean)
	}
	if stats.WindowEndTick != 10 || stats.WindowStartTick != 0 {
		t.Errorf("window = [%d, %d], want [0, 10]", stats.WindowStartTick, stats.WindowEndTick)
	}

	if c.ShouldFlush(sim.TickCount()) {
		t.Error("window did not restart after flush")
	}
	next := c.Flush(sim.TickCount(), sim)
	if next.Spawns != 0 || next.Resets != 0 {
		t.Error("counters not reset after flush")
	}
}
