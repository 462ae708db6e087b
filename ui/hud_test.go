package ui

import (
	"strings"
	"testing"
)

func TestStatusLines(t *testing.T) {
	lines := StatusLines(HUDData{Tick: 42, Population: 5, Cap: 6, Seed: 7, Speed: 1, Paused: true})

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "Tick: 42") {
		t.Errorf("tick line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Particles: 5/6") {
		t.Errorf("population line = %q", lines[1])
	}
	if lines[3] != "PAUSED" {
		t.Errorf("status = %q, want PAUSED", lines[3])
	}
}

func TestContainsPoint(t *testing.T) {
	h := NewHUD()
	if !h.ContainsPoint(20, 20, 4) {
		t.Error("point inside panel not detected")
	}
	if h.ContainsPoint(600, 600, 4) {
		t.Error("point far from panel detected")
	}
	h.Toggle()
	if h.ContainsPoint(20, 20, 4) {
		t.Error("hidden HUD should not capture clicks")
	}
}
