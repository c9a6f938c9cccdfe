package sim

// KeyState is the per-frame state of one logical key.
type KeyState struct {
	Held        bool // down this frame
	JustPressed bool // down this frame, up the previous one
}

// InputState is everything the simulation reads from the player in one frame.
type InputState struct {
	Accelerate KeyState
	Brake      KeyState
	SteerLeft  KeyState
	SteerRight KeyState
	Center     KeyState

	Pan          bool // pan button held
	PointerDelta Vec2 // pointer motion since last frame, screen pixels (y down)
}
