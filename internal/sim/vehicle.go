package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Vehicle defaults.
const (
	MaxSteerAngle    = math.Pi / 3
	DefaultWheelBase = 60.0
	VehicleLength    = 75.0
	VehicleWidth     = 50.0
)

var ErrInvalidWheelBase = errors.New("wheel base must be a positive finite number")

// Vehicle is a two-contact-point (bicycle) body. The rear contact point moves
// along Heading, the front one along Heading+SteerAngle.
type Vehicle struct {
	ID         uuid.UUID
	Position   Vec2
	Heading    float64 // radians, not wrapped
	Speed      float64 // world units/s, negative = reverse
	SteerAngle float64 // radians, within ±MaxSteerAngle

	wheelBase float64
}

// VehicleParams describes a vehicle at spawn time.
type VehicleParams struct {
	Position  Vec2
	Heading   float64
	WheelBase float64
}

// DefaultVehicleParams places a stationary vehicle at the origin facing +X.
func DefaultVehicleParams() VehicleParams {
	return VehicleParams{WheelBase: DefaultWheelBase}
}

// NewVehicle builds a stationary vehicle with centred steering.
func NewVehicle(p VehicleParams) (*Vehicle, error) {
	if !(p.WheelBase > 0) || math.IsInf(p.WheelBase, 0) {
		return nil, fmt.Errorf("new vehicle: %w (got %v)", ErrInvalidWheelBase, p.WheelBase)
	}
	return &Vehicle{
		ID:        uuid.New(),
		Position:  p.Position,
		Heading:   p.Heading,
		wheelBase: p.WheelBase,
	}, nil
}

func (v *Vehicle) WheelBase() float64 { return v.wheelBase }

// Axles returns the front and rear contact points for the current pose.
func (v *Vehicle) Axles() (front, rear Vec2) {
	half := Dir(v.Heading).Scale(v.wheelBase / 2)
	return v.Position.Add(half), v.Position.Sub(half)
}

// SetSteerAngle assigns the steering angle and clamps it to ±MaxSteerAngle.
func (v *Vehicle) SetSteerAngle(a float64) {
	v.SteerAngle = clampSteer(a)
}

// steerSnap absorbs the rounding left over from summing fixed increments, so
// that N exact steps of limit/N land on the limit itself.
const steerSnap = 1e-9

// degenerateAxis is the fraction of the wheel base below which the displaced
// contact points are treated as coincident and carry no heading.
const degenerateAxis = 1e-9

func clampSteer(a float64) float64 {
	if math.IsNaN(a) {
		return 0
	}
	if a >= MaxSteerAngle-steerSnap {
		return MaxSteerAngle
	}
	if a <= -MaxSteerAngle+steerSnap {
		return -MaxSteerAngle
	}
	return a
}

// Step advances the pose by dt seconds. Both contact points are displaced
// along their own direction of travel and the body is re-fitted through them;
// the distance between them is not re-normalised.
func (v *Vehicle) Step(dt float64) {
	v.Position, v.Heading = Advance(v.Position, v.Heading, v.Speed, v.SteerAngle, v.wheelBase, dt)
}

// Advance is the pure form of Vehicle.Step.
func Advance(pos Vec2, heading, speed, steer, wheelBase, dt float64) (Vec2, float64) {
	if speed == 0 || !(dt > 0) {
		return pos, heading
	}
	dist := speed * dt
	body := Dir(heading)
	if steer == 0 {
		return pos.Add(body.Scale(dist)), heading
	}

	rearDelta := body.Scale(dist)
	frontDelta := Dir(heading + steer).Scale(dist)

	// Work relative to pos to keep precision far from the origin.
	half := body.Scale(wheelBase / 2)
	front := half.Add(frontDelta)
	rear := rearDelta.Sub(half)

	newPos := pos.Add(front.Add(rear).Scale(0.5))
	axis := front.Sub(rear)
	if axis.Len() <= wheelBase*degenerateAxis {
		return newPos, heading
	}
	newHeading := heading + angDiff(heading, math.Atan2(axis.Y, axis.X))
	if !finite(newPos.X) || !finite(newPos.Y) || !finite(newHeading) {
		return pos, heading
	}
	return newPos, newHeading
}
