package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMesh_Layout(t *testing.T) {
	m, err := BuildMesh(1280, 720, 100)
	require.NoError(t, err)

	// ceil(1280/100) + 1
	assert.Equal(t, 14, m.Cells)
	assert.Len(t, m.Positions, 4*(14+1))
	assert.Equal(t, 2*(14+1), m.LineCount())
	assert.Len(t, m.Vertices(), 2*len(m.Positions))

	half := 14 * 100 / 2.0
	for i := 0; i < len(m.Indices); i += 2 {
		a, b := m.Positions[m.Indices[i]], m.Positions[m.Indices[i+1]]
		assert.Equal(t, 2*half, a.Sub(b).Len(), "line %d", i/2)
		for _, p := range []Vec2{a, b} {
			assert.LessOrEqual(t, p.X, half)
			assert.GreaterOrEqual(t, p.X, -half)
			assert.LessOrEqual(t, p.Y, half)
			assert.GreaterOrEqual(t, p.Y, -half)
		}
	}

	assert.Equal(t, Vec2{X: -half, Y: -half}, m.Positions[0])
	assert.Equal(t, Vec2{X: -half, Y: half}, m.Positions[1])
	assert.Equal(t, Vec2{X: -half, Y: -half}, m.Positions[2*(14+1)])
	assert.Equal(t, Vec2{X: half, Y: -half}, m.Positions[2*(14+1)+1])
}

func TestBuildMesh_CoversViewportAfterAlignment(t *testing.T) {
	w, h, s := 800.0, 600.0, 100.0
	m, err := BuildMesh(w, h, s)
	require.NoError(t, err)

	half := float64(m.Cells) * s / 2
	// Alignment leaves at most s/2 between camera and mesh centre.
	assert.GreaterOrEqual(t, half-s/2, w/2)
	assert.GreaterOrEqual(t, half-s/2, h/2)
}

func TestBuildMesh_ViewportNotReady(t *testing.T) {
	for _, vp := range [][2]float64{{0, 0}, {800, 0}, {0, 600}, {-1, 600}} {
		_, err := BuildMesh(vp[0], vp[1], 100)
		require.ErrorIs(t, err, ErrViewportNotReady)
	}
}

func TestBuildMesh_InvalidSpacing(t *testing.T) {
	_, err := BuildMesh(800, 600, 0)
	require.ErrorIs(t, err, ErrInvalidSpacing)
}
