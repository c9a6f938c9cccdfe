package game

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"crisis/internal/palette"
	"crisis/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// gridBuffers is the GPU copy of one grid mesh. It is uploaded once.
type gridBuffers struct {
	vao, vbo, ebo uint32
	count         int32
}

type Renderer struct {
	flat *flatProgram

	// Unit quad centred on the origin, drawn as two triangles.
	quadVAO uint32
	quadVBO uint32

	grids map[uuid.UUID]*gridBuffers

	scheme palette.Scheme
}

func NewRenderer(scheme palette.Scheme) (*Renderer, error) {
	flat, err := newFlatProgram()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	r := &Renderer{
		flat:   flat,
		grids:  make(map[uuid.UUID]*gridBuffers),
		scheme: scheme,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	quadVerts := [12]float32{
		-0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	r.setClearColor()
	return r, nil
}

func (r *Renderer) setClearColor() {
	cr, cg, cb := r.scheme.BG.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
}

func (r *Renderer) Destroy() {
	for id, g := range r.grids {
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		gl.DeleteVertexArrays(1, &g.vao)
		delete(r.grids, id)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	r.flat.delete()
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// uploadGrid copies a grid mesh to the GPU the first time the grid is seen.
func (r *Renderer) uploadGrid(g *sim.Grid) *gridBuffers {
	if b, ok := r.grids[g.ID]; ok {
		return b
	}
	if g.Mesh == nil {
		return nil
	}
	verts := g.Mesh.Vertices()
	idx := g.Mesh.Indices

	b := &gridBuffers{count: int32(len(idx))}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, gl.Ptr(idx), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	r.grids[g.ID] = b
	return b
}

// DrawGrids draws every built grid translated by its aligned offset.
func (r *Renderer) DrawGrids(grids []*sim.Grid, v View) {
	r.flat.use(v)
	cr, cg, cb := r.scheme.GridLine().Floats()
	gl.Uniform4f(r.flat.uColor, cr, cg, cb, 1)
	gl.Uniform2f(r.flat.uScale, 1, 1)
	gl.Uniform1f(r.flat.uRotation, 0)

	for _, g := range grids {
		b := r.uploadGrid(g)
		if b == nil {
			continue
		}
		gl.Uniform2f(r.flat.uOffset, float32(g.Offset.X), float32(g.Offset.Y))
		gl.BindVertexArray(b.vao)
		gl.DrawElements(gl.LINES, b.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// DrawVehicle draws the body as a rectangle rotated by its heading.
func (r *Renderer) DrawVehicle(veh *sim.Vehicle, v View) {
	r.flat.use(v)
	cr, cg, cb := r.scheme.Green.Floats()
	gl.Uniform4f(r.flat.uColor, cr, cg, cb, 1)
	gl.Uniform2f(r.flat.uScale, sim.VehicleLength, sim.VehicleWidth)
	gl.Uniform1f(r.flat.uRotation, float32(math.Remainder(veh.Heading, 2*math.Pi)))
	gl.Uniform2f(r.flat.uOffset, float32(veh.Position.X), float32(veh.Position.Y))

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}
