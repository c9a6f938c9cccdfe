package sim

import "github.com/google/uuid"

// Camera is the 2D view centre. It only moves through Pan and SnapTo.
type Camera struct {
	ID       uuid.UUID
	position Vec2
}

func NewCamera(at Vec2) *Camera {
	return &Camera{ID: uuid.New(), position: at}
}

func (c *Camera) Position() Vec2 { return c.position }

// Pan drags the view by a pointer delta given in screen space (y down):
// the world moves with the pointer, so the camera moves against it.
func (c *Camera) Pan(delta Vec2) {
	c.position.X -= delta.X
	c.position.Y += delta.Y
}

// SnapTo moves the camera onto p in one step.
func (c *Camera) SnapTo(p Vec2) {
	c.position = p
}
