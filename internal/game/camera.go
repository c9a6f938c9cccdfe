package game

import "crisis/internal/sim"

// View maps world coordinates onto the framebuffer. The simulation owns the
// camera position; View only adds what the renderer needs on top.
type View struct {
	Center sim.Vec2
	Zoom   float64 // screen pixels per world unit

	// Window size in screen pixels (not framebuffer pixels on HiDPI).
	W, H int
}

func NewView(cam sim.Vec2, w, h int) View {
	return View{Center: cam, Zoom: DefaultZoom, W: w, H: h}
}

// Ready reports whether the window has a drawable area.
func (v View) Ready() bool { return v.W > 0 && v.H > 0 }

// Viewport is the view size the grid mesh is built for.
func (v View) Viewport() sim.Viewport {
	if !v.Ready() {
		return sim.Viewport{}
	}
	return sim.Viewport{W: float64(v.W) / v.Zoom, H: float64(v.H) / v.Zoom}
}
