package systems

import (
	"fmt"
	"math"

	"github.com/pthm-cable/hexbloom/config"
	"github.com/pthm-cable/hexbloom/noise"
)

// ParticleState is the particle lifecycle stage.
type ParticleState uint8

const (
	StateGrowing   ParticleState = iota // Radius ramps toward the target radius
	StateWandering                      // Radius follows the radius noise
)

func (s ParticleState) String() string {
	switch s {
	case StateGrowing:
		return "growing"
	case StateWandering:
		return "wandering"
	}
	return fmt.Sprintf("ParticleState(%d)", uint8(s))
}

// RenderAttributes is what a renderer needs to draw one particle.
type RenderAttributes struct {
	X, Y   float64
	Radius float64
	Hue    float64 // Degrees in [0, 360)
}

// Particle is a noise-driven blob wandering out from the field center.
type Particle struct {
	X, Y    float64
	Heading float64
	Hue     float64
	Speed   float64
	R0      float64 // Target radius for the growing stage
	R       float64

	dir0  float64 // Base heading the heading noise is added to
	state ParticleState

	headingNoise *noise.Generator
	radiusNoise  *noise.Generator
	hueNoise     *noise.Generator

	fieldRadius float64
	maxSpeed    float64
	speedStep   float64
	growthRate  float64
}

// NewParticle spawns a particle at the origin with randomized heading, hue and noise.
// Every random draw comes from src so a seeded source reproduces the particle.
func NewParticle(src noise.Source, cfg *config.Config) (*Particle, error) {
	pc := &cfg.Particle

	p := &Particle{
		fieldRadius: cfg.Field.Radius,
		maxSpeed:    pc.MaxSpeed,
		speedStep:   pc.SpeedStep,
		growthRate:  pc.GrowthRate,
	}
	p.Heading = 2 * math.Pi * src()
	p.Hue = math.Floor(360 * src())
	// A zero-width scale range still consumes its draw
	p.Speed = pc.InitSpeed * (pc.SpeedScaleMin + (pc.SpeedScaleMax-pc.SpeedScaleMin)*src())
	p.dir0 = 2 * math.Pi * src()

	var err error
	if p.headingNoise, err = noise.New(src, noiseParams(pc.HeadingNoise)); err != nil {
		return nil, fmt.Errorf("heading noise: %w", err)
	}
	if p.radiusNoise, err = noise.New(src, noiseParams(pc.RadiusNoise)); err != nil {
		return nil, fmt.Errorf("radius noise: %w", err)
	}
	if p.hueNoise, err = noise.New(src, noiseParams(pc.HueNoise)); err != nil {
		return nil, fmt.Errorf("hue noise: %w", err)
	}

	p.R0 = p.radiusNoise.Next()
	p.R = pc.InitialRadius
	p.state = StateGrowing
	return p, nil
}

// Advance moves the particle one tick.
// Returns false once the particle has left the field; the caller must remove it.
func (p *Particle) Advance() bool {
	p.Hue = wrap(p.Hue+p.hueNoise.Next(), 360)

	p.Heading = p.dir0 + p.headingNoise.Next()
	p.Speed = math.Min(p.Speed+p.speedStep, p.maxSpeed)

	p.X += p.Speed * math.Cos(p.Heading)
	p.Y += p.Speed * math.Sin(p.Heading)

	if math.Max(math.Abs(p.X), math.Abs(p.Y)) > p.fieldRadius+p.R {
		return false
	}

	switch p.state {
	case StateGrowing:
		p.R += p.growthRate
		if p.R > p.R0 {
			p.state = StateWandering
		}
	case StateWandering:
		p.R = math.Max(p.radiusNoise.Next(), 0)
	}
	return true
}

// State returns the lifecycle stage.
func (p *Particle) State() ParticleState {
	return p.state
}

// RenderAttributes returns the current drawable state.
func (p *Particle) RenderAttributes() RenderAttributes {
	return RenderAttributes{X: p.X, Y: p.Y, Radius: p.R, Hue: p.Hue}
}

func noiseParams(n config.NoiseConfig) noise.Params {
	return noise.Params{
		Period:      n.Period,
		Harmonics:   n.Harmonics,
		Attenuation: n.Attenuation,
		Low:         n.Low,
		High:        n.High,
	}
}

// wrap folds v into [0, m).
func wrap(v, m float64) float64 {
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	// -tiny + m rounds to m
	if v >= m {
		v = 0
	}
	return v
}
