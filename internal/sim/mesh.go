package sim

import (
	"errors"
	"fmt"
	"math"
)

var ErrViewportNotReady = errors.New("viewport not ready")

// Mesh is a line list in local grid space: Indices holds vertex pairs.
type Mesh struct {
	Positions []Vec2
	Indices   []uint32
	Cells     int // lines per axis minus one
}

func (m *Mesh) LineCount() int { return len(m.Indices) / 2 }

// BuildMesh lays out Cells+1 lines along each axis, centred on the origin,
// where Cells = ceil(max(w, h)/spacing) + 1. Each line spans ±Cells*spacing/2.
func BuildMesh(viewportW, viewportH, spacing float64) (*Mesh, error) {
	if !validSpacing(spacing) {
		return nil, fmt.Errorf("build mesh: %w (got %v)", ErrInvalidSpacing, spacing)
	}
	if !(viewportW > 0) || !(viewportH > 0) {
		return nil, fmt.Errorf("build mesh: %w (%vx%v)", ErrViewportNotReady, viewportW, viewportH)
	}

	n := int(math.Ceil(math.Max(viewportW, viewportH)/spacing)) + 1
	half := float64(n) * spacing / 2

	positions := make([]Vec2, 0, 4*(n+1))
	// Lines parallel to Y.
	for i := 0; i <= n; i++ {
		off := float64(i)*spacing - half
		positions = append(positions, Vec2{X: off, Y: -half}, Vec2{X: off, Y: half})
	}
	// Lines parallel to X.
	for i := 0; i <= n; i++ {
		off := float64(i)*spacing - half
		positions = append(positions, Vec2{X: -half, Y: off}, Vec2{X: half, Y: off})
	}

	indices := make([]uint32, 0, len(positions))
	for i := uint32(0); i < uint32(len(positions))/2; i++ {
		indices = append(indices, i*2, i*2+1)
	}
	return &Mesh{Positions: positions, Indices: indices, Cells: n}, nil
}

// Vertices flattens Positions into x,y float32 pairs for upload.
func (m *Mesh) Vertices() []float32 {
	out := make([]float32, 0, 2*len(m.Positions))
	for _, p := range m.Positions {
		out = append(out, float32(p.X), float32(p.Y))
	}
	return out
}
