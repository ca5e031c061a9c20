// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	World        WorldConfig        `yaml:"world"`
	Population   PopulationConfig   `yaml:"population"`
	Food         FoodConfig         `yaml:"food"`
	Entity       EntityConfig       `yaml:"entity"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
// Dimensions default to the screen size when left at zero; the renderer
// assumes one simulation unit equals one screen unit.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PopulationConfig holds life form population limits.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// FoodConfig holds food source parameters.
type FoodConfig struct {
	Initial       int     `yaml:"initial"`
	Max           int     `yaml:"max"`
	Radius        float64 `yaml:"radius"`
	RespawnChance float64 `yaml:"respawn_chance"` // Probability of a replacement spawning on consumption
}

// EntityConfig holds per-life-form parameters.
type EntityConfig struct {
	Radius             float64 `yaml:"radius"`
	MaxEnergy          float64 `yaml:"max_energy"`
	InitialEnergy      float64 `yaml:"initial_energy"`
	EnergyLossPerStep  float64 `yaml:"energy_loss_per_step"`
	EnergyGainFromFood float64 `yaml:"energy_gain_from_food"`
	MaxSpeed           float64 `yaml:"max_speed"`
	WanderChance       float64 `yaml:"wander_chance"` // Per-tick chance to pick a new heading when no food exists
}

// ReproductionConfig holds reproduction and mutation parameters.
type ReproductionConfig struct {
	Threshold      float64 `yaml:"threshold"`
	MutationRange  float64 `yaml:"mutation_range"` // Speed factor perturbation is uniform in ±this
	MinSpeedFactor float64 `yaml:"min_speed_factor"`
	MaxSpeedFactor float64 `yaml:"max_speed_factor"`
	SpawnOffset    float64 `yaml:"spawn_offset"` // Offspring position offset is uniform in ±this per axis
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW float64 // Effective world width
	WorldH float64 // Effective world height
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

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

// validate rejects configurations the simulation cannot start with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Population.Max <= 0 {
		return fmt.Errorf("population.max must be positive, got %d", c.Population.Max)
	}
	if c.Population.Initial < 0 || c.Population.Initial > c.Population.Max {
		return fmt.Errorf("population.initial %d outside [0, %d]", c.Population.Initial, c.Population.Max)
	}
	if c.Food.Max <= 0 {
		return fmt.Errorf("food.max must be positive, got %d", c.Food.Max)
	}
	if c.Food.Initial < 0 || c.Food.Initial > c.Food.Max {
		return fmt.Errorf("food.initial %d outside [0, %d]", c.Food.Initial, c.Food.Max)
	}
	if c.Entity.Radius <= 0 || c.Food.Radius <= 0 {
		return fmt.Errorf("collision radii must be positive, got %g and %g", c.Entity.Radius, c.Food.Radius)
	}
	if c.Entity.MaxEnergy <= 0 {
		return fmt.Errorf("entity.max_energy must be positive, got %g", c.Entity.MaxEnergy)
	}
	if c.Entity.MaxSpeed <= 0 {
		return fmt.Errorf("entity.max_speed must be positive, got %g", c.Entity.MaxSpeed)
	}
	if c.Reproduction.MinSpeedFactor > c.Reproduction.MaxSpeedFactor {
		return fmt.Errorf("reproduction speed factor range inverted: [%g, %g]",
			c.Reproduction.MinSpeedFactor, c.Reproduction.MaxSpeedFactor)
	}
	if c.Telemetry.WindowTicks <= 0 {
		return fmt.Errorf("telemetry.window_ticks must be positive, got %d", c.Telemetry.WindowTicks)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)
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
