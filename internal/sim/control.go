package sim

import (
	"fmt"
	"math"
	"strings"
)

// SteerMode selects which key state drives steering.
type SteerMode int

const (
	SteerModeHeld    SteerMode = iota // steer continuously while the key is down
	SteerModePressed                  // one increment per key press
)

func (m SteerMode) String() string {
	switch m {
	case SteerModeHeld:
		return "held"
	case SteerModePressed:
		return "pressed"
	}
	return fmt.Sprintf("SteerMode(%d)", int(m))
}

// ParseSteerMode accepts "held" or "pressed" (case-insensitive).
func ParseSteerMode(s string) (SteerMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "held":
		return SteerModeHeld, nil
	case "pressed":
		return SteerModePressed, nil
	}
	return SteerModeHeld, fmt.Errorf("unknown steer mode %q", s)
}

// Control defaults.
const (
	DefaultSpeedStep = 2.0
	DefaultSteerStep = math.Pi / 180
)

// Controller turns player input into speed and steering changes.
type Controller struct {
	SpeedStep float64 // speed change per tick while accelerate/brake is held
	SteerStep float64 // steering change per increment, radians
	MaxSpeed  float64 // |speed| limit; 0 leaves speed unbounded
	Mode      SteerMode
}

func NewController() Controller {
	return Controller{
		SpeedStep: DefaultSpeedStep,
		SteerStep: DefaultSteerStep,
		Mode:      SteerModeHeld,
	}
}

// ControlResult carries requests the controller cannot apply itself.
type ControlResult struct {
	SnapCamera bool // move the camera onto the vehicle this frame
}

// Update applies one tick of input to v.
func (c Controller) Update(v *Vehicle, in InputState) ControlResult {
	if in.Accelerate.Held {
		v.Speed += c.SpeedStep
	}
	if in.Brake.Held {
		v.Speed -= c.SpeedStep
	}
	if c.MaxSpeed > 0 {
		v.Speed = clampF(v.Speed, -c.MaxSpeed, c.MaxSpeed)
	}

	if c.steering(in.SteerLeft) {
		v.SetSteerAngle(v.SteerAngle + c.SteerStep)
	}
	if c.steering(in.SteerRight) {
		v.SetSteerAngle(v.SteerAngle - c.SteerStep)
	}

	return ControlResult{SnapCamera: in.Center.Held}
}

func (c Controller) steering(k KeyState) bool {
	if c.Mode == SteerModePressed {
		return k.JustPressed
	}
	return k.Held
}
