// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/vec2/vector"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sandbox configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Attractor AttractorConfig `yaml:"attractor"`
	Bodies    BodiesConfig    `yaml:"bodies"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world dimensions.
// The world wraps toroidally; the camera handles the viewport.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT       float64        `yaml:"dt"`
	Drag     float64        `yaml:"drag"`      // Fraction of velocity lost per second
	MaxSpeed float64        `yaml:"max_speed"` // 0 = unlimited
	Gravity  vector.Vector2 `yaml:"gravity"`   // Constant acceleration applied to every body
}

// AttractorConfig holds the point attractor parameters.
type AttractorConfig struct {
	Enabled     bool           `yaml:"enabled"`
	Position    vector.Vector2 `yaml:"position"`
	Strength    float64        `yaml:"strength"`     // Acceleration = strength / distance^2
	MinDistance float64        `yaml:"min_distance"` // No pull inside this radius
}

// BodiesConfig holds body spawning parameters.
type BodiesConfig struct {
	Count        int          `yaml:"count"` // Randomly placed bodies, in addition to Seeds
	Radius       float64      `yaml:"radius"`
	Mass         float64      `yaml:"mass"`
	InitialSpeed float64      `yaml:"initial_speed"`
	Seeds        []SeedConfig `yaml:"seeds"`
}

// SeedConfig places a single body explicitly.
// Vectors accept {x, y}, [x, y] or "[x; y]".
type SeedConfig struct {
	Position vector.Vector2 `yaml:"position"`
	Velocity vector.Vector2 `yaml:"velocity"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
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

// Default returns the embedded defaults.
func Default() (*Config, error) {
	return Load("")
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT)
	}
	if c.Physics.Drag < 0 {
		return fmt.Errorf("physics.drag must not be negative, got %v", c.Physics.Drag)
	}
	if c.Bodies.Count < 0 {
		return fmt.Errorf("bodies.count must not be negative, got %d", c.Bodies.Count)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("telemetry.stats_window must be positive, got %v", c.Telemetry.StatsWindow)
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

	if c.Bodies.Mass == 0 {
		c.Bodies.Mass = 1
	}
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
