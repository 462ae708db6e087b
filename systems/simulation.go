package systems

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"sync/atomic"

	"github.com/pthm-cable/hexbloom/config"
	"github.com/pthm-cable/hexbloom/noise"
)

// ErrInvariantViolation reports internal state the simulation should never reach.
var ErrInvariantViolation = errors.New("systems: invariant violation")

// TickReport summarizes what happened during the last tick.
type TickReport struct {
	Tick       int64
	Reset      bool
	Spawned    int
	Expired    int
	Population int
}

// Simulation owns the particle population and the global drift signals.
// Tick and Reset must be called from one goroutine; RequestReset may be
// called from any goroutine.
type Simulation struct {
	cfg *config.Config
	rng *rand.Rand

	particles []*Particle

	globalHeading float64
	globalHue     float64
	headingDrift  *noise.Generator
	hueDrift      *noise.Generator

	resetPending atomic.Bool
	initialized  bool
	tick         int64
	last         TickReport
}

// NewSimulation creates a simulation whose every random draw comes from seed.
// The population starts empty; the first Tick performs the initial reset.
func NewSimulation(cfg *config.Config, seed int64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		particles: make([]*Particle, 0, cfg.Population.Cap),
	}, nil
}

func (s *Simulation) source() noise.Source {
	return s.rng.Float64
}

// Reset clears the population and restarts the global drift.
func (s *Simulation) Reset() error {
	s.particles = s.particles[:0]

	var err error
	if s.headingDrift, err = noise.New(s.source(), noiseParams(s.cfg.Drift.HeadingNoise)); err != nil {
		return fmt.Errorf("heading drift: %w", err)
	}
	if s.hueDrift, err = noise.New(s.source(), noiseParams(s.cfg.Drift.HueNoise)); err != nil {
		return fmt.Errorf("hue drift: %w", err)
	}

	s.globalHeading = 2 * math.Pi * s.rng.Float64()
	s.globalHue = 360 * s.rng.Float64()
	s.initialized = true

	slog.Debug("simulation reset",
		"tick", s.tick,
		"global_heading", s.globalHeading,
		"global_hue", s.globalHue,
	)
	return nil
}

// RequestReset schedules a reset for the start of the next tick.
func (s *Simulation) RequestReset() {
	s.resetPending.Store(true)
}

// Tick advances the simulation one frame and returns the surviving particles'
// render attributes, oldest first.
func (s *Simulation) Tick() ([]RenderAttributes, error) {
	report := TickReport{}

	if s.resetPending.Swap(false) || !s.initialized {
		if err := s.Reset(); err != nil {
			return nil, err
		}
		report.Reset = true
	}
	s.tick++
	report.Tick = s.tick

	// Computed every tick but not consumed by particles
	s.globalHeading = wrap(s.globalHeading+s.headingDrift.Next(), 2*math.Pi)
	s.globalHue = wrap(s.globalHue+s.hueDrift.Next(), 360)

	if len(s.particles) < s.cfg.Population.Cap {
		p, err := NewParticle(s.source(), s.cfg)
		if err != nil {
			return nil, fmt.Errorf("spawning particle: %w", err)
		}
		s.particles = append(s.particles, p)
		report.Spawned++
	}

	attrs := make([]RenderAttributes, 0, len(s.particles))
	var expired []*Particle
	for _, p := range s.particles {
		if !p.Advance() {
			expired = append(expired, p)
			continue
		}
		attrs = append(attrs, p.RenderAttributes())
	}

	for _, p := range expired {
		if err := s.Remove(p); err != nil {
			return nil, err
		}
	}
	report.Expired = len(expired)
	report.Population = len(s.particles)
	s.last = report

	return attrs, nil
}

// Remove deletes p from the population, keeping the order of the others.
func (s *Simulation) Remove(p *Particle) error {
	idx := slices.Index(s.particles, p)
	if idx < 0 {
		return fmt.Errorf("%w: removing particle not in population", ErrInvariantViolation)
	}
	s.particles = slices.Delete(s.particles, idx, idx+1)
	return nil
}

// Particles returns the live population, oldest first. The slice must not be modified.
func (s *Simulation) Particles() []*Particle {
	return s.particles
}

// Len returns the live population size.
func (s *Simulation) Len() int {
	return len(s.particles)
}

// GlobalHeading returns the drifting global heading in [0, 2π).
func (s *Simulation) GlobalHeading() float64 {
	return s.globalHeading
}

// GlobalHue returns the drifting global hue in [0, 360).
func (s *Simulation) GlobalHue() float64 {
	return s.globalHue
}

// TickCount returns the number of ticks run since creation.
func (s *Simulation) TickCount() int64 {
	return s.tick
}

// LastTick returns the report for the most recent tick.
func (s *Simulation) LastTick() TickReport {
	return s.last
}

// FieldRadius returns the configured field radius.
func (s *Simulation) FieldRadius() float64 {
	return s.cfg.Field.Radius
}

// Cap returns the population cap.
func (s *Simulation) Cap() int {
	return s.cfg.Population.Cap
}
