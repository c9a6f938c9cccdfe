package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

const DefaultGridSpacing = 100.0

var ErrInvalidSpacing = errors.New("grid spacing must be a positive finite number")

// Align snaps camera to the nearest grid intersection, rounding half away
// from zero on each axis. An invalid spacing yields the zero offset.
func Align(camera Vec2, spacing float64) Vec2 {
	if !validSpacing(spacing) {
		return Vec2{}
	}
	return Vec2{
		X: math.Round(camera.X/spacing) * spacing,
		Y: math.Round(camera.Y/spacing) * spacing,
	}
}

func validSpacing(s float64) bool {
	return s > 0 && !math.IsInf(s, 0)
}

// Grid is a fixed line mesh translated in whole cells so that it always
// covers the view.
type Grid struct {
	ID      uuid.UUID
	Spacing float64
	Mesh    *Mesh // nil until the first viewport is known
	Offset  Vec2

	lastCamera Vec2
	aligned    bool
}

func NewGrid(spacing float64) (*Grid, error) {
	if !validSpacing(spacing) {
		return nil, fmt.Errorf("new grid: %w (got %v)", ErrInvalidSpacing, spacing)
	}
	return &Grid{ID: uuid.New(), Spacing: spacing}, nil
}

// Update re-aligns the grid to camera and reports whether the offset was
// recomputed. A camera that has not moved since the last call is a no-op.
func (g *Grid) Update(camera Vec2) bool {
	if g.aligned && camera == g.lastCamera {
		return false
	}
	g.Offset = Align(camera, g.Spacing)
	g.lastCamera = camera
	g.aligned = true
	return true
}
