package internal

import "math"

// Relative epsilon for deciding whether a vertex sits on a cut line. It is
// always multiplied by the sweep span of the polygon, so it behaves the same
// regardless of the polygon's scale.
const Epsilon = 1e-12

// Default area tolerance, as a fraction of the polygon's total area.
const DefaultTolerance = 1e-12

// Equality within an absolute tolerance. Callers pick the tolerance from the
// scale of whatever they are comparing.
func Equal(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Sub computes p−o.
func (p Point) Sub(o Point) Vec2 {
	return Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Translate(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Lerp linearly interpolates between two points.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to NaNs, so callers must check the length first.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1 / v.Hypot())
}

// Left normal, i.e. v rotated a quarter turn counterclockwise.
func (v Vec2) TurnLeft() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

func (v Vec2) TurnRight() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}
