package game

// Frame timing.
const (
	MaxFrameDt = 0.1 // seconds; longer stalls are clipped
)

// View defaults.
const (
	DefaultZoom = 1.0 // screen pixels per world unit
)
