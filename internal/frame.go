package internal

import (
	"math"

	"github.com/pkg/errors"
)

// A Frame is the sweep coordinate system for one reference edge. Rather than
// rotating the polygon so that the edge becomes an axis, every coordinate is
// measured with dot products against the frame's unit vectors. Points are never
// transformed, so crossing points come out in the caller's coordinates with no
// round trip error.
//
// The offset of a point is its signed distance from the reference edge's line,
// positive toward the inside of the polygon. Cut lines are lines of constant
// offset.
type Frame struct {
	// Start of the reference edge
	Origin Point
	// Unit direction of the reference edge
	U Vec2
	// Unit normal pointing into the polygon
	V Vec2

	// Offset range spanned by the polygon's vertices. The search never leaves it.
	MinOffset, MaxOffset float64
	// Range spanned along U, used to scale comparisons between crossings
	MinAlong, MaxAlong float64

	// Absolute distances below which two offsets (or along values) are treated
	// as equal. Both are Epsilon scaled by the corresponding span.
	LineEpsilon, AlongEpsilon float64
}

// Build the frame for the edge (points[idx-1], points[idx]). The winding sign
// picks the inward normal: left of the edge for counterclockwise polygons,
// right for clockwise ones.
func NewFrame(polygon *Polygon, idx int, winding float64) (Frame, error) {
	n := len(polygon.Points)
	if idx < 0 || idx >= n {
		return Frame{}, errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0, %d)", idx, n)
	}
	a := polygon.Points[CircularIndex(idx-1, n)]
	b := polygon.Points[idx]
	edge := b.Sub(a)
	if edge.Hypot() == 0 {
		return Frame{}, errors.Wrapf(ErrInvalidPolygon, "edge %d has zero length", idx)
	}

	f := Frame{Origin: a, U: edge.Normalize()}
	if winding < 0 {
		f.V = f.U.TurnRight()
	} else {
		f.V = f.U.TurnLeft()
	}

	f.MinOffset, f.MaxOffset = math.Inf(1), math.Inf(-1)
	f.MinAlong, f.MaxAlong = math.Inf(1), math.Inf(-1)
	for _, p := range polygon.Points {
		s := f.Offset(p)
		f.MinOffset = math.Min(f.MinOffset, s)
		f.MaxOffset = math.Max(f.MaxOffset, s)
		u := f.Along(p)
		f.MinAlong = math.Min(f.MinAlong, u)
		f.MaxAlong = math.Max(f.MaxAlong, u)
	}
	f.LineEpsilon = Epsilon * (f.MaxOffset - f.MinOffset)
	f.AlongEpsilon = Epsilon * (f.MaxAlong - f.MinAlong)
	return f, nil
}

// Signed distance from the reference edge's line, positive inward.
func (f Frame) Offset(p Point) float64 {
	return p.Sub(f.Origin).Dot(f.V)
}

// Position along the reference edge's direction.
func (f Frame) Along(p Point) float64 {
	return p.Sub(f.Origin).Dot(f.U)
}

func (f Frame) SweepRange() (min, max float64) {
	return f.MinOffset, f.MaxOffset
}

func (f Frame) Span() float64 {
	return f.MaxOffset - f.MinOffset
}
