// Package config loads the game and simulator settings: embedded defaults
// overlaid by an optional user YAML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/milk9111/dashcore/physics"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds every tunable setting.
type Config struct {
	Physics   PhysicsConfig       `yaml:"physics"`
	Dash      DashConfig          `yaml:"dash"`
	Level     LevelConfig         `yaml:"level"`
	Window    WindowConfig        `yaml:"window"`
	Camera    CameraConfig        `yaml:"camera"`
	Input     map[string][]string `yaml:"input"` // action name -> ebiten key names
	Telemetry TelemetryConfig     `yaml:"telemetry"`
	Records   RecordsConfig       `yaml:"records"`
	Log       LogConfig           `yaml:"log"`

	Derived DerivedConfig `yaml:"-"`
}

type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Accel     float64 `yaml:"accel"`
	Friction  float64 `yaml:"friction"`
	MaxVel    float64 `yaml:"max_vel"`
	MinVel    float64 `yaml:"min_vel"` // horizontal dead-zone
}

type DashConfig struct {
	Speed      float64       `yaml:"speed"`
	Accel      float64       `yaml:"accel"`
	Duration   time.Duration `yaml:"duration"`
	MaxCharges int           `yaml:"max_charges"`
}

type LevelConfig struct {
	Name      string  `yaml:"name"`
	Dir       string  `yaml:"dir"` // checked before the embedded levels
	BlockSize float64 `yaml:"block_size"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // lerp factor per tick, 1 snaps
	Zoom      float64 `yaml:"zoom"`
}

type TelemetryConfig struct {
	Dir string `yaml:"dir"` // empty disables the trace
}

type RecordsConfig struct {
	AppName string `yaml:"app_name"` // empty keeps records in memory
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	Tick time.Duration
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parse embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Overlay(cfg, data); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Overlay decodes data on top of cfg.
func Overlay(cfg *Config, data []byte) error {
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) computeDerived() {
	c.Derived.Tick = time.Second / time.Duration(c.Window.TPS)
}

// Validate reports every out-of-range field at once.
func (c *Config) Validate() error {
	var errs []error
	positive := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, field, v))
		}
	}
	nonNegative := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, field, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_speed", c.Physics.JumpSpeed)
	positive("physics.accel", c.Physics.Accel)
	nonNegative("physics.friction", c.Physics.Friction)
	positive("physics.max_vel", c.Physics.MaxVel)
	nonNegative("physics.min_vel", c.Physics.MinVel)
	if c.Physics.MinVel >= c.Physics.MaxVel && c.Physics.MaxVel > 0 {
		errs = append(errs, fmt.Errorf("%w: physics.min_vel %v must be below max_vel %v", ErrInvalidConfig, c.Physics.MinVel, c.Physics.MaxVel))
	}
	positive("dash.speed", c.Dash.Speed)
	nonNegative("dash.accel", c.Dash.Accel)
	positive("dash.duration", c.Dash.Duration.Seconds())
	nonNegative("dash.max_charges", float64(c.Dash.MaxCharges))
	positive("level.block_size", c.Level.BlockSize)
	positive("window.tps", float64(c.Window.TPS))
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("%w: camera.smoothing must be in (0, 1], got %v", ErrInvalidConfig, c.Camera.Smoothing))
	}
	positive("camera.zoom", c.Camera.Zoom)

	return errors.Join(errs...)
}

// Tuning returns the movement constants for the integrator.
func (c *Config) Tuning() physics.Tuning {
	return physics.Tuning{
		Gravity:        c.Physics.Gravity,
		JumpSpeed:      c.Physics.JumpSpeed,
		Accel:          c.Physics.Accel,
		Friction:       c.Physics.Friction,
		MaxVel:         c.Physics.MaxVel,
		MinVel:         c.Physics.MinVel,
		DashSpeed:      c.Dash.Speed,
		DashAccel:      c.Dash.Accel,
		DashDuration:   c.Dash.Duration,
		MaxDashCharges: c.Dash.MaxCharges,
	}
}

// WriteYAML writes the effective configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
