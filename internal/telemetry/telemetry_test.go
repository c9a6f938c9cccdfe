package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisis/internal/sim"
)

func TestRecorder_Record(t *testing.T) {
	r, err := New(Meter(false))
	require.NoError(t, err)

	ctx := context.Background()
	r.Record(ctx, 1.0/60, sim.Snapshot{VehicleSpeed: 4})
	r.Record(ctx, 1.0/60, sim.Snapshot{VehicleSpeed: -2})

	assert.Equal(t, int64(2), r.Frames())
	assert.Equal(t, -2.0, r.Speed())
}

func TestMeter_EnabledUsesGlobalProvider(t *testing.T) {
	r, err := New(Meter(true))
	require.NoError(t, err)
	r.Record(context.Background(), 0.5, sim.Snapshot{})
	assert.Equal(t, int64(1), r.Frames())
}
