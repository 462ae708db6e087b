package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed)).Float64
}

func TestNewRejectsNonPositivePeriod(t *testing.T) {
	for _, period := range []float64{0, -1, math.NaN()} {
		_, err := New(seeded(1), Params{Period: period, Harmonics: 1, High: 1})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("period %v: expected ErrInvalidConfiguration, got %v", period, err)
		}
	}
}

func TestNewClampsHarmonics(t *testing.T) {
	g, err := New(seeded(1), Params{Period: 200, Harmonics: 0, Low: -0.03, High: 0.03})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := g.Params().Harmonics; got != 1 {
		t.Errorf("harmonics = %d, want 1", got)
	}
}

func TestAmplitudesSumToSpan(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"single", Params{Period: 200, Harmonics: 1, Low: 10, High: 25}},
		{"two attenuated", Params{Period: 300, Harmonics: 2, Attenuation: 0.8, Low: -2 * math.Pi / 3, High: 2 * math.Pi / 3}},
		{"inverted range", Params{Period: 50, Harmonics: 4, Attenuation: 0.5, Low: 1, High: -1}},
		{"zero attenuation", Params{Period: 80, Harmonics: 3, Attenuation: 0, Low: 0, High: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustNew(seeded(7), tt.p)
			var sum float64
			for _, h := range g.harmonics {
				sum += h.amplitude
			}
			if math.Abs(sum-(tt.p.High-tt.p.Low)) > 1e-9 {
				t.Errorf("amplitude sum = %v, want %v", sum, tt.p.High-tt.p.Low)
			}
		})
	}
}

func TestNextStaysInBounds(t *testing.T) {
	tests := []Params{
		{Period: 300, Harmonics: 2, Attenuation: 0.8, Low: -2 * math.Pi / 3, High: 2 * math.Pi / 3},
		{Period: 200, Harmonics: 1, Low: 10, High: 25},
		{Period: 800, Harmonics: 1, Low: -0.5, High: 0.5},
		{Period: 500, Harmonics: 1, Attenuation: 0.8, Low: -2, High: 2},
		{Period: 10, Harmonics: 6, Attenuation: 0.9, Low: 3, High: -3},
		{Period: 3, Harmonics: 8, Attenuation: 1, Low: 0, High: 1},
	}

	const eps = 1e-9
	for i, p := range tests {
		g := MustNew(seeded(int64(i+1)), p)
		lo, hi := p.Bounds()
		for n := 0; n < 10000; n++ {
			v := g.Next()
			if v < lo-eps || v > hi+eps {
				t.Fatalf("params %d sample %d: %v outside [%v, %v]", i, n, v, lo, hi)
			}
		}
	}
}

func TestPhaseStaysInUnitInterval(t *testing.T) {
	g := MustNew(seeded(3), Params{Period: 1.5, Harmonics: 4, Attenuation: 0.7, High: 1})
	for n := 0; n < 1000; n++ {
		g.Next()
		for k, h := range g.harmonics {
			if h.phase < 0 || h.phase >= 1 {
				t.Fatalf("step %d harmonic %d: phase %v outside [0,1)", n, k+1, h.phase)
			}
		}
	}
}

func TestNextIsContinuous(t *testing.T) {
	// Max slope of smoothstep is 1.5, so one step moves at most
	// 1.5 * increment * amplitude per harmonic.
	p := Params{Period: 400, Harmonics: 2, Attenuation: 0.8, Low: 0, High: 1}
	g := MustNew(seeded(11), p)

	limit := 1.5 * (1.0/p.Period + 2.0/p.Period) * (p.High - p.Low)
	prev := g.Next()
	for n := 0; n < 5000; n++ {
		v := g.Next()
		if d := math.Abs(v - prev); d > limit+1e-12 {
			t.Fatalf("step %d: jump %v exceeds %v", n, d, limit)
		}
		prev = v
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	p := Params{Period: 300, Harmonics: 2, Attenuation: 0.8, Low: -1, High: 1}
	a := MustNew(seeded(42), p)
	b := MustNew(seeded(42), p)
	for n := 0; n < 2000; n++ {
		if va, vb := a.Next(), b.Next(); va != vb {
			t.Fatalf("step %d: %v != %v", n, va, vb)
		}
	}
}

func TestNilSourceUsesDefault(t *testing.T) {
	g, err := New(nil, DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for n := 0; n < 100; n++ {
		if v := g.Next(); v < 0 || v > 1 {
			t.Fatalf("sample %v outside [0,1]", v)
		}
	}
}

func TestConstructionDrawOrder(t *testing.T) {
	// prev, next, phase per harmonic, ascending
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	i := 0
	src := func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
	g := MustNew(src, Params{Period: 100, Harmonics: 2, Attenuation: 0.5, High: 1})

	want := []harmonic{
		{prev: 0.1, next: 0.2, phase: 0.3},
		{prev: 0.4, next: 0.5, phase: 0.6},
	}
	for k, w := range want {
		h := g.harmonics[k]
		if h.prev != w.prev || h.next != w.next || h.phase != w.phase {
			t.Errorf("harmonic %d = %+v, want prev/next/phase %v/%v/%v", k+1, h, w.prev, w.next, w.phase)
		}
	}
	if i != 6 {
		t.Errorf("construction drew %d values, want 6", i)
	}
}

func TestControlValueShiftsOnWrap(t *testing.T) {
	values := []float64{0.25, 0.75, 0.995, 0.5}
	i := 0
	src := func() float64 {
		v := values[i]
		i++
		return v
	}
	g := MustNew(src, Params{Period: 100, Harmonics: 1, High: 1})

	// phase 0.995 + 0.01 wraps to ~0.005
	v := g.Next()
	h := g.harmonics[0]
	if h.prev != 0.75 || h.next != 0.5 {
		t.Errorf("after wrap prev/next = %v/%v, want 0.75/0.5", h.prev, h.next)
	}
	if math.Abs(v-0.75) > 1e-3 {
		t.Errorf("value just after wrap = %v, want ~0.75", v)
	}
}
