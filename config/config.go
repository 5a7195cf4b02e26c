// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sandbox configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen" validate:"required"`
	World     WorldConfig     `yaml:"world"`
	Agents    AgentsConfig    `yaml:"agents" validate:"required"`
	Sampler   SamplerConfig   `yaml:"sampler" validate:"required"`
	Cost      CostConfig      `yaml:"cost" validate:"required"`
	Steering  SteeringConfig  `yaml:"steering" validate:"required"`
	Spatial   SpatialConfig   `yaml:"spatial" validate:"required"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width" validate:"gte=320"`
	Height    int `yaml:"height" validate:"gte=240"`
	TargetFPS int `yaml:"target_fps" validate:"gte=1"`
}

// WorldConfig holds simulation world dimensions.
// World can be larger than the screen; zero means use the screen size.
type WorldConfig struct {
	Width  int `yaml:"width" validate:"gte=0"`
	Height int `yaml:"height" validate:"gte=0"`
}

// AgentsConfig holds agent creation parameters.
type AgentsConfig struct {
	Count    int     `yaml:"count" validate:"gte=1"`
	Radius   float64 `yaml:"radius" validate:"gt=0"`
	MaxSpeed float64 `yaml:"max_speed" validate:"gt=0"`

	// Fraction of the smaller world dimension used as the spawn-ring
	// radius for the antipodal-goal scenario.
	RingFraction float64 `yaml:"ring_fraction" validate:"gt=0,lte=0.5"`
}

// SamplerConfig selects and sizes the velocity sampling strategy.
//
// The samplers themselves do not validate their grid; degenerate counts
// divide by zero inside the sampling formulas, so they are rejected here at
// load time instead.
type SamplerConfig struct {
	// Preset selects a ready-made tradeoff point ("quality" or
	// "performance"). Empty means use the explicit settings below.
	Preset string `yaml:"preset" validate:"omitempty,oneof=quality performance"`

	Strategy              string `yaml:"strategy" validate:"oneof=brute_force adaptive"`
	LayerCount            int    `yaml:"layer_count" validate:"gte=1"`
	OuterLayerSampleCount int    `yaml:"outer_layer_sample_count" validate:"gte=1"`
}

// CostConfig holds velocity cost weights and the look-ahead horizon.
type CostConfig struct {
	Horizon         float64 `yaml:"horizon" validate:"gt=0"`
	CollisionWeight float64 `yaml:"collision_weight" validate:"gte=0"`
	GoalWeight      float64 `yaml:"goal_weight" validate:"gte=0"`
	CurrentWeight   float64 `yaml:"current_weight" validate:"gte=0"`
}

// SteeringConfig holds control-loop parameters.
type SteeringConfig struct {
	NeighborRadius float64 `yaml:"neighbor_radius" validate:"gt=0"`
	ArriveRadius   float64 `yaml:"arrive_radius" validate:"gt=0"`
	SlowRadius     float64 `yaml:"slow_radius" validate:"gt=0"`
}

// SpatialConfig holds spatial index parameters.
type SpatialConfig struct {
	CellSize float64 `yaml:"cell_size" validate:"gt=0"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window" validate:"gte=1"`          // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window" validate:"gte=1"` // ticks averaged for perf
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW32 float32 // Effective world width as float32
	WorldH32 float32 // Effective world height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded defaults
// and validating the result. If path is empty, only embedded defaults are
// used.
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects degenerate configurations before they reach the sampling
// formulas or the cost evaluator.
func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
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
