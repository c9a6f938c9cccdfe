package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisis/internal/sim"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "Crisis in Motion", cfg.Window.Title)
	assert.False(t, cfg.Window.Dev)
	assert.Equal(t, 60.0, cfg.Vehicle.WheelBase)
	assert.Equal(t, 2.0, cfg.Vehicle.SpeedStep)
	assert.Equal(t, 1.0, cfg.Vehicle.SteerStepDeg)
	assert.Equal(t, 0.0, cfg.Vehicle.MaxSpeed)
	assert.Equal(t, "held", cfg.Control.SteerMode)
	assert.Equal(t, 100.0, cfg.Grid.Spacing)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.15, cfg.Audio.Volume)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_WithYAMLFile(t *testing.T) {
	path := writeConfig(t, "crisis.yaml", `
window:
  width: 800
  height: 600
  dev: true
vehicle:
  wheelBase: 40
  maxSpeed: 300
control:
  steerMode: pressed
grid:
  spacing: 50
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Crisis in Motion (dev)", cfg.WindowTitle())
	assert.Equal(t, 40.0, cfg.Vehicle.WheelBase)
	assert.Equal(t, 50.0, cfg.Grid.Spacing)
	assert.Equal(t, "debug", cfg.Log.Level)

	c := cfg.Controller()
	assert.Equal(t, sim.SteerModePressed, c.Mode)
	assert.Equal(t, 300.0, c.MaxSpeed)
	assert.InDelta(t, math.Pi/180, c.SteerStep, 1e-15)
	assert.Equal(t, 40.0, cfg.VehicleParams().WheelBase)
}

func TestLoad_WithJSONFile(t *testing.T) {
	path := writeConfig(t, "crisis.json", `{"grid": {"spacing": 25}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.Grid.Spacing)
	assert.Equal(t, 60.0, cfg.Vehicle.WheelBase)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "crisis.yaml", "grid:\n  spacing: 50\n")
	t.Setenv("CRISIS_GRID_SPACING", "75")
	t.Setenv("CRISIS_VEHICLE_WHEELBASE", "90")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 75.0, cfg.Grid.Spacing)
	assert.Equal(t, 90.0, cfg.Vehicle.WheelBase)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero wheel base", "vehicle:\n  wheelBase: 0\n"},
		{"negative wheel base", "vehicle:\n  wheelBase: -5\n"},
		{"zero spacing", "grid:\n  spacing: 0\n"},
		{"bad steer mode", "control:\n  steerMode: toggle\n"},
		{"negative speed step", "vehicle:\n  speedStep: -1\n"},
		{"loud audio", "audio:\n  volume: 2\n"},
		{"no window", "window:\n  width: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "crisis.yaml", tt.body))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}
