package systems

import "github.com/pthm-cable/blobvolley/components"

// CirclesIntersect reports whether two circles touch or overlap.
func CirclesIntersect(c1 components.Vec2, r1 float32, c2 components.Vec2, r2 float32) bool {
	d := c1.Sub(c2)
	rr := r1 + r2
	return d.Dot(d) <= rr*rr
}

// CircleIntersectsRect reports whether a circle touches or overlaps an
// axis-aligned rectangle.
func CircleIntersectsRect(c components.Vec2, r float32, rect components.Rect) bool {
	closest := components.Vec2{
		X: clamp(c.X, rect.X, rect.X+rect.W),
		Y: clamp(c.Y, rect.Y, rect.Y+rect.H),
	}
	d := c.Sub(closest)
	return d.Dot(d) <= r*r
}

// Reflect mirrors v about the collision normal n: v' = v - 2(v·n)n.
// n is expected to be unit length; a zero-length normal (concentric
// centers) leaves v unchanged rather than dividing by zero.
func Reflect(v, n components.Vec2) components.Vec2 {
	if n.X == 0 && n.Y == 0 {
		return v
	}
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// ClampSpeed rescales v uniformly so its magnitude does not exceed max.
func ClampSpeed(v components.Vec2, max float32) components.Vec2 {
	speed := v.Length()
	if speed > max {
		return v.Scale(max / speed)
	}
	return v
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
