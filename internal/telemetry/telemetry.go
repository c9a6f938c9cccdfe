// Package telemetry publishes per-frame simulation metrics through the
// OpenTelemetry metric API. Without an installed SDK every instrument is a
// no-op.
package telemetry

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"crisis/internal/sim"
)

const instrumentationName = "crisis/internal/telemetry"

// Meter returns the global meter when enabled, otherwise a no-op meter.
func Meter(enabled bool) metric.Meter {
	if !enabled {
		return noop.NewMeterProvider().Meter(instrumentationName)
	}
	return otel.Meter(instrumentationName)
}

// Recorder tracks frame count, frame time and vehicle speed.
type Recorder struct {
	frames    metric.Int64Counter
	frameTime metric.Float64Histogram
	speed     metric.Float64ObservableGauge

	frameCount atomic.Int64
	lastSpeed  atomic.Uint64 // float64 bits
}

func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}

	var err error
	r.frames, err = m.Int64Counter(
		"sim.frames",
		metric.WithDescription("Simulation frames run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame counter: %w", err)
	}

	r.frameTime, err = m.Float64Histogram(
		"sim.frame.dt",
		metric.WithDescription("Frame time step"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame time histogram: %w", err)
	}

	r.speed, err = m.Float64ObservableGauge(
		"sim.vehicle.speed",
		metric.WithDescription("Signed vehicle speed in world units per second"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating speed gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveFloat64(r.speed, r.Speed())
			return nil
		},
		r.speed,
	)
	if err != nil {
		return nil, fmt.Errorf("registering speed callback: %w", err)
	}

	return r, nil
}

// Record publishes one frame.
func (r *Recorder) Record(ctx context.Context, dt float64, s sim.Snapshot) {
	r.frameCount.Add(1)
	r.lastSpeed.Store(math.Float64bits(s.VehicleSpeed))
	r.frames.Add(ctx, 1)
	r.frameTime.Record(ctx, dt)
}

func (r *Recorder) Frames() int64 { return r.frameCount.Load() }

func (r *Recorder) Speed() float64 { return math.Float64frombits(r.lastSpeed.Load()) }
