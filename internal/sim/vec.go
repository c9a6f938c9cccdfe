package sim

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{X: a.X + b.X, Y: a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{X: a.X - b.X, Y: a.Y - b.Y} }

func (a Vec2) Scale(k float64) Vec2 { return Vec2{X: a.X * k, Y: a.Y * k} }

func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// Dir returns the unit vector pointing along angle a (radians).
func Dir(a float64) Vec2 {
	s, c := math.Sincos(a)
	return Vec2{X: c, Y: s}
}
