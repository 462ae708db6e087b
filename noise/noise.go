// Package noise provides a smooth, band-limited pseudo-random signal generator.
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidConfiguration is returned when generator parameters cannot produce a signal.
var ErrInvalidConfiguration = errors.New("noise: invalid configuration")

// Source yields uniform values in [0, 1).
type Source func() float64

// Params configures a Generator.
// Low and High bound the output range; High may be lower than Low.
type Params struct {
	Period      float64 // Ticks per fundamental control-point interval (> 0)
	Harmonics   int     // Number of summed harmonics (< 1 is treated as 1)
	Attenuation float64 // Amplitude ratio between consecutive harmonics, usually in [0, 1]
	Low         float64
	High        float64
}

// DefaultParams returns a single slow harmonic over [0, 1].
func DefaultParams() Params {
	return Params{
		Period:    100,
		Harmonics: 1,
		Low:       0,
		High:      1,
	}
}

type harmonic struct {
	prev, next float64 // Control values the harmonic interpolates between
	phase      float64 // Position between prev and next, always in [0, 1)
	increment  float64
	amplitude  float64
}

// Generator produces consecutive samples of a multi-harmonic noise signal.
// Each call to Next advances the signal by one step. A Generator is not safe
// for concurrent use.
type Generator struct {
	rnd       Source
	params    Params
	harmonics []harmonic
}

// New creates a generator drawing its control values from src.
// A nil src falls back to the math/rand package source.
func New(src Source, p Params) (*Generator, error) {
	if !(p.Period > 0) {
		return nil, fmt.Errorf("%w: period must be positive, got %v", ErrInvalidConfiguration, p.Period)
	}
	if src == nil {
		src = rand.Float64
	}
	if p.Harmonics < 1 {
		p.Harmonics = 1
	}

	g := &Generator{
		rnd:       src,
		params:    p,
		harmonics: make([]harmonic, p.Harmonics),
	}

	var total float64
	for i := range g.harmonics {
		h := &g.harmonics[i]
		h.prev = src()
		h.next = src()
		if i == 0 {
			h.amplitude = 1
		} else {
			h.amplitude = g.harmonics[i-1].amplitude * p.Attenuation
		}
		total += h.amplitude
		h.increment = float64(i+1) / p.Period
		h.phase = src()
	}

	if total == 0 || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: attenuation %v gives zero total amplitude", ErrInvalidConfiguration, p.Attenuation)
	}

	// Normalize so the amplitudes sum to the output span
	span := p.High - p.Low
	for i := range g.harmonics {
		g.harmonics[i].amplitude = g.harmonics[i].amplitude / total * span
	}

	return g, nil
}

// MustNew is like New but panics on error.
func MustNew(src Source, p Params) *Generator {
	g, err := New(src, p)
	if err != nil {
		panic(err)
	}
	return g
}

// Params returns the generator configuration after normalization.
func (g *Generator) Params() Params {
	return g.params
}

// Next advances the signal one step and returns the new value.
func (g *Generator) Next() float64 {
	var signal float64
	// Highest harmonic first: fixes the order fresh control values are drawn
	for i := len(g.harmonics) - 1; i >= 0; i-- {
		h := &g.harmonics[i]
		h.phase += h.increment
		for h.phase >= 1 {
			h.phase -= 1
			h.prev = h.next
			h.next = g.rnd()
		}
		s := smoothstep(h.phase)
		signal += (h.prev*(1-s) + h.next*s) * h.amplitude
	}
	return signal + g.params.Low
}

// smoothstep maps [0, 1] onto itself with zero slope at both ends.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Bounds returns the output range as (min, max) regardless of the sign of High-Low.
func (p Params) Bounds() (lo, hi float64) {
	return math.Min(p.Low, p.High), math.Max(p.Low, p.High)
}
