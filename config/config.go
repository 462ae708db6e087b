// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned by Validate for values the simulation cannot run with.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Field      FieldConfig      `yaml:"field"`
	Particle   ParticleConfig   `yaml:"particle"`
	Population PopulationConfig `yaml:"population"`
	Drift      DriftConfig      `yaml:"drift"`
	Render     RenderConfig     `yaml:"render"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	Margin    int `yaml:"margin"` // Pixels kept free around the field
}

// FieldConfig describes the circular field particles live in.
type FieldConfig struct {
	Radius float64 `yaml:"radius"` // Particles beyond radius + their own radius expire
}

// NoiseConfig mirrors noise.Params.
type NoiseConfig struct {
	Period      float64 `yaml:"period"`
	Harmonics   int     `yaml:"harmonics"`
	Attenuation float64 `yaml:"attenuation"`
	Low         float64 `yaml:"low"`
	High        float64 `yaml:"high"`
}

// ParticleConfig holds particle motion and growth parameters.
type ParticleConfig struct {
	InitSpeed     float64 `yaml:"init_speed"`
	SpeedScaleMin float64 `yaml:"speed_scale_min"` // Spawn speed = init_speed * uniform(min, max)
	SpeedScaleMax float64 `yaml:"speed_scale_max"`
	SpeedStep     float64 `yaml:"speed_step"` // Speed gained per tick
	MaxSpeed      float64 `yaml:"max_speed"`
	InitialRadius float64 `yaml:"initial_radius"`
	GrowthRate    float64 `yaml:"growth_rate"` // Radius gained per tick while growing

	HeadingNoise NoiseConfig `yaml:"heading_noise"` // Offset added to the base heading
	RadiusNoise  NoiseConfig `yaml:"radius_noise"`  // Target radius, then radius while wandering
	HueNoise     NoiseConfig `yaml:"hue_noise"`     // Hue change per tick
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Cap int `yaml:"cap"`
}

// DriftConfig holds the global heading/hue drift generators.
type DriftConfig struct {
	HeadingNoise NoiseConfig `yaml:"heading_noise"`
	HueNoise     NoiseConfig `yaml:"hue_noise"`
}

// RenderConfig holds presentation parameters shared by all renderers.
type RenderConfig struct {
	Background     string  `yaml:"background"`    // #rrggbb
	OutlineColor   string  `yaml:"outline_color"` // #rrggbbaa
	OutlineWidth   float64 `yaml:"outline_width"`
	Saturation     float64 `yaml:"saturation"`
	Lightness      float64 `yaml:"lightness"`
	TerminalAspect float64 `yaml:"terminal_aspect"` // Cell height / width
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the simulation depends on.
func (c *Config) Validate() error {
	if c.Field.Radius <= 0 {
		return fmt.Errorf("%w: field.radius must be positive, got %v", ErrInvalidConfig, c.Field.Radius)
	}
	if c.Population.Cap < 1 {
		return fmt.Errorf("%w: population.cap must be at least 1, got %d", ErrInvalidConfig, c.Population.Cap)
	}
	if c.Particle.RadiusNoise.Low > c.Particle.RadiusNoise.High {
		return fmt.Errorf("%w: particle.radius_noise low %v exceeds high %v",
			ErrInvalidConfig, c.Particle.RadiusNoise.Low, c.Particle.RadiusNoise.High)
	}
	if c.Particle.RadiusNoise.Low < 0 {
		return fmt.Errorf("%w: particle.radius_noise low must not be negative", ErrInvalidConfig)
	}

	noises := []struct {
		name string
		n    NoiseConfig
	}{
		{"particle.heading_noise", c.Particle.HeadingNoise},
		{"particle.radius_noise", c.Particle.RadiusNoise},
		{"particle.hue_noise", c.Particle.HueNoise},
		{"drift.heading_noise", c.Drift.HeadingNoise},
		{"drift.hue_noise", c.Drift.HueNoise},
	}
	for _, n := range noises {
		if n.n.Period <= 0 {
			return fmt.Errorf("%w: %s.period must be positive, got %v", ErrInvalidConfig, n.name, n.n.Period)
		}
	}

	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 1
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
