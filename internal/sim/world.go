package sim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Viewport is the drawable area in pixels; a zero size means no window yet.
type Viewport struct {
	W, H float64
}

// Options configures a World.
type Options struct {
	Vehicle    VehicleParams
	Controller Controller
	Logger     zerolog.Logger
}

// World owns every entity and runs the per-frame systems in order.
type World struct {
	Vehicle *Vehicle
	Camera  *Camera
	Grids   []*Grid

	control     Controller
	pendingGrid []*Grid
	log         zerolog.Logger
}

func NewWorld(opts Options) (*World, error) {
	v, err := NewVehicle(opts.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	return &World{
		Vehicle: v,
		Camera:  NewCamera(Vec2{}),
		control: opts.Controller,
		log:     opts.Logger,
	}, nil
}

// SpawnGrid queues a grid. Its mesh is built by the first Frame that has a
// viewport; the grid joins Grids at that point and is never built again.
func (w *World) SpawnGrid(spacing float64) (*Grid, error) {
	g, err := NewGrid(spacing)
	if err != nil {
		return nil, err
	}
	w.pendingGrid = append(w.pendingGrid, g)
	return g, nil
}

// Pending reports how many grids are still waiting for a viewport.
func (w *World) Pending() int { return len(w.pendingGrid) }

// Frame runs one frame: control, kinematics, camera, grid init, grid align.
func (w *World) Frame(dt float64, in InputState, vp Viewport) {
	res := w.control.Update(w.Vehicle, in)
	w.Vehicle.Step(dt)

	if in.Pan {
		w.Camera.Pan(in.PointerDelta)
	}
	if res.SnapCamera {
		w.Camera.SnapTo(w.Vehicle.Position)
	}

	w.initGrids(vp)

	cam := w.Camera.Position()
	for _, g := range w.Grids {
		g.Update(cam)
	}
}

func (w *World) initGrids(vp Viewport) {
	if len(w.pendingGrid) == 0 {
		return
	}
	rest := w.pendingGrid[:0]
	for _, g := range w.pendingGrid {
		mesh, err := BuildMesh(vp.W, vp.H, g.Spacing)
		if errors.Is(err, ErrViewportNotReady) {
			rest = append(rest, g)
			continue
		}
		if err != nil {
			// NewGrid already validated the spacing.
			w.log.Error().Err(err).Str("grid", g.ID.String()).Msg("dropping grid")
			continue
		}
		g.Mesh = mesh
		w.Grids = append(w.Grids, g)
		w.log.Info().
			Str("grid", g.ID.String()).
			Float64("width", vp.W).
			Float64("height", vp.H).
			Msg("spawned grid")
		w.log.Info().
			Int("vertices", len(mesh.Positions)).
			Int("lines", mesh.LineCount()).
			Msg("grid mesh built")
	}
	clear(w.pendingGrid[len(rest):])
	w.pendingGrid = rest
}

// Snapshot is the frame output handed to the renderer.
type Snapshot struct {
	VehiclePosition Vec2
	VehicleHeading  float64
	VehicleSpeed    float64
	SteerAngle      float64
	Camera          Vec2
	GridOffsets     []Vec2
}

func (w *World) Snapshot() Snapshot {
	offs := make([]Vec2, len(w.Grids))
	for i, g := range w.Grids {
		offs[i] = g.Offset
	}
	return Snapshot{
		VehiclePosition: w.Vehicle.Position,
		VehicleHeading:  w.Vehicle.Heading,
		VehicleSpeed:    w.Vehicle.Speed,
		SteerAngle:      w.Vehicle.SteerAngle,
		Camera:          w.Camera.Position(),
		GridOffsets:     offs,
	}
}
