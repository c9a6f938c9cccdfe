package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"crisis/internal/sim"
)

// Key bindings.
var (
	KeyAccelerate = glfw.KeyW
	KeyBrake      = glfw.KeyS
	KeySteerLeft  = glfw.KeyA
	KeySteerRight = glfw.KeyD
	KeyCenter     = glfw.KeySpace
	ButtonPan     = glfw.MouseButtonMiddle
)

// Input turns raw glfw state into one sim.InputState per frame, remembering
// the previous frame for edge detection and pointer deltas.
type Input struct {
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	prevCursorY float64
	haveCursor  bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) key(window *glfw.Window, key glfw.Key) sim.KeyState {
	down := window.GetKey(key) == glfw.Press
	ks := sim.KeyState{Held: down, JustPressed: down && !in.prevKeys[key]}
	in.prevKeys[key] = down
	return ks
}

// Poll samples the window. Call once per frame after glfw.PollEvents.
func (in *Input) Poll(window *glfw.Window) sim.InputState {
	s := sim.InputState{
		Accelerate: in.key(window, KeyAccelerate),
		Brake:      in.key(window, KeyBrake),
		SteerLeft:  in.key(window, KeySteerLeft),
		SteerRight: in.key(window, KeySteerRight),
		Center:     in.key(window, KeyCenter),
		Pan:        window.GetMouseButton(ButtonPan) == glfw.Press,
	}

	cx, cy := window.GetCursorPos()
	if in.haveCursor {
		s.PointerDelta = sim.Vec2{X: cx - in.prevCursorX, Y: cy - in.prevCursorY}
	}
	in.prevCursorX, in.prevCursorY = cx, cy
	in.haveCursor = true
	return s
}
