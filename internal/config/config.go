package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"crisis/internal/sim"
)

const envPrefix = "CRISIS"

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	Dev    bool   `mapstructure:"dev"`
}

// VehicleConfig holds the player vehicle parameters.
type VehicleConfig struct {
	WheelBase    float64 `mapstructure:"wheelBase"`
	SpeedStep    float64 `mapstructure:"speedStep"`
	SteerStepDeg float64 `mapstructure:"steerStepDeg"`
	MaxSpeed     float64 `mapstructure:"maxSpeed"`
}

type ControlConfig struct {
	SteerMode string `mapstructure:"steerMode"`
}

type GridConfig struct {
	Spacing float64 `mapstructure:"spacing"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the full application configuration.
type Config struct {
	Window    WindowConfig    `mapstructure:"window"`
	Vehicle   VehicleConfig   `mapstructure:"vehicle"`
	Control   ControlConfig   `mapstructure:"control"`
	Grid      GridConfig      `mapstructure:"grid"`
	Log       LogConfig       `mapstructure:"log"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

var ErrInvalid = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Crisis in Motion")
	v.SetDefault("window.dev", false)

	v.SetDefault("vehicle.wheelBase", sim.DefaultWheelBase)
	v.SetDefault("vehicle.speedStep", sim.DefaultSpeedStep)
	v.SetDefault("vehicle.steerStepDeg", 1.0)
	v.SetDefault("vehicle.maxSpeed", 0.0)

	v.SetDefault("control.steerMode", "held")
	v.SetDefault("grid.spacing", sim.DefaultGridSpacing)
	v.SetDefault("log.level", "info")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.15)

	v.SetDefault("telemetry.enabled", false)
}

// Load builds the configuration from defaults, the optional file at path and
// CRISIS_* environment variables (e.g. CRISIS_GRID_SPACING), in that order
// of increasing precedence.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a working world.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case !positive(c.Vehicle.WheelBase):
		return fmt.Errorf("%w: vehicle.wheelBase must be > 0, got %v", ErrInvalid, c.Vehicle.WheelBase)
	case !positive(c.Grid.Spacing):
		return fmt.Errorf("%w: grid.spacing must be > 0, got %v", ErrInvalid, c.Grid.Spacing)
	case c.Vehicle.SpeedStep < 0 || c.Vehicle.SteerStepDeg < 0 || c.Vehicle.MaxSpeed < 0:
		return fmt.Errorf("%w: vehicle steps and maxSpeed must not be negative", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	if _, err := sim.ParseSteerMode(c.Control.SteerMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// WindowTitle returns the title with a dev marker when running a dev build.
func (c Config) WindowTitle() string {
	if c.Window.Dev {
		return c.Window.Title + " (dev)"
	}
	return c.Window.Title
}

// Controller converts the vehicle and control sections into a sim.Controller.
func (c Config) Controller() sim.Controller {
	mode, _ := sim.ParseSteerMode(c.Control.SteerMode)
	return sim.Controller{
		SpeedStep: c.Vehicle.SpeedStep,
		SteerStep: c.Vehicle.SteerStepDeg * math.Pi / 180,
		MaxSpeed:  c.Vehicle.MaxSpeed,
		Mode:      mode,
	}
}

// VehicleParams returns spawn parameters for the player vehicle.
func (c Config) VehicleParams() sim.VehicleParams {
	p := sim.DefaultVehicleParams()
	p.WheelBase = c.Vehicle.WheelBase
	return p
}
