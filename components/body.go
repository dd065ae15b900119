// Package components defines the plain data types shared by the match core.
package components

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Body holds the kinematic state shared by blobs, the ball and particles.
// It is mutated once per tick by integration and by collision responses.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Radius float32
}

// Speed returns the velocity magnitude.
func (b *Body) Speed() float32 {
	return b.Vel.Length()
}

// Rect is an axis-aligned rectangle (top-left anchored).
type Rect struct {
	X, Y, W, H float32
}
