package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	held    = KeyState{Held: true}
	pressed = KeyState{Held: true, JustPressed: true}
)

func TestController_SpeedIsUnboundedByDefault(t *testing.T) {
	v := newTestVehicle(t)
	c := NewController()
	for i := 0; i < 10000; i++ {
		c.Update(v, InputState{Accelerate: held})
	}
	assert.Equal(t, 20000.0, v.Speed)

	for i := 0; i < 15000; i++ {
		c.Update(v, InputState{Brake: held})
	}
	assert.Equal(t, -10000.0, v.Speed)
}

func TestController_AccelerateAndBrakeCancel(t *testing.T) {
	v := newTestVehicle(t)
	v.Speed = 7
	NewController().Update(v, InputState{Accelerate: held, Brake: held})
	assert.Equal(t, 7.0, v.Speed)
}

func TestController_MaxSpeedClamp(t *testing.T) {
	v := newTestVehicle(t)
	c := NewController()
	c.MaxSpeed = 5
	for i := 0; i < 10; i++ {
		c.Update(v, InputState{Accelerate: held})
	}
	assert.Equal(t, 5.0, v.Speed)
	for i := 0; i < 10; i++ {
		c.Update(v, InputState{Brake: held})
	}
	assert.Equal(t, -5.0, v.Speed)
}

func TestController_SixtyDegreeStepsReachLimit(t *testing.T) {
	v := newTestVehicle(t)
	c := NewController()

	steps := 0
	for v.SteerAngle != MaxSteerAngle {
		require.Less(t, steps, 1000, "steering never reached the limit")
		c.Update(v, InputState{SteerLeft: held})
		steps++
	}
	assert.Equal(t, 60, steps)

	c.Update(v, InputState{SteerLeft: held})
	assert.Equal(t, MaxSteerAngle, v.SteerAngle)
}

func TestController_SteerClampConverges(t *testing.T) {
	for _, start := range []float64{-MaxSteerAngle, -0.5, 0, 0.123, MaxSteerAngle} {
		v := newTestVehicle(t)
		v.SetSteerAngle(start)
		c := NewController()
		for i := 0; i < 200; i++ {
			c.Update(v, InputState{SteerLeft: held})
			require.LessOrEqual(t, v.SteerAngle, MaxSteerAngle)
		}
		assert.Equal(t, MaxSteerAngle, v.SteerAngle)

		for i := 0; i < 200; i++ {
			c.Update(v, InputState{SteerRight: held})
			require.GreaterOrEqual(t, v.SteerAngle, -MaxSteerAngle)
		}
		assert.Equal(t, -MaxSteerAngle, v.SteerAngle)
	}
}

func TestController_SteerClampWithCoarseStep(t *testing.T) {
	v := newTestVehicle(t)
	c := NewController()
	c.SteerStep = 0.4
	for i := 0; i < 5; i++ {
		c.Update(v, InputState{SteerRight: held})
	}
	assert.Equal(t, -MaxSteerAngle, v.SteerAngle)
}

func TestController_PressedModeIgnoresHeld(t *testing.T) {
	v := newTestVehicle(t)
	c := NewController()
	c.Mode = SteerModePressed

	c.Update(v, InputState{SteerLeft: held})
	assert.Zero(t, v.SteerAngle)

	c.Update(v, InputState{SteerLeft: pressed})
	assert.InDelta(t, math.Pi/180, v.SteerAngle, eps)

	c.SteerStep = 10
	c.Update(v, InputState{SteerLeft: pressed})
	assert.Equal(t, MaxSteerAngle, v.SteerAngle)
}

func TestController_CenterRequestsSnap(t *testing.T) {
	v := newTestVehicle(t)
	c := NewController()
	assert.False(t, c.Update(v, InputState{}).SnapCamera)
	assert.True(t, c.Update(v, InputState{Center: held}).SnapCamera)
}

func TestParseSteerMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SteerMode
		wantErr bool
	}{
		{"held", SteerModeHeld, false},
		{"", SteerModeHeld, false},
		{" Pressed ", SteerModePressed, false},
		{"toggle", SteerModeHeld, true},
	}
	assert.Equal(t, "held", SteerModeHeld.String())
	assert.Equal(t, "pressed", SteerModePressed.String())
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSteerMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
