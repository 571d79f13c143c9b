package internal

import (
	"math"
	"sort"
)

// Half-plane clipping against cut lines. This is Sutherland–Hodgman with a
// single clip edge: walk the boundary in order, keep the endpoints on the
// inside, and insert a crossing point wherever an edge passes through the line.
//
// A vertex within LineEpsilon of the line counts as inside. When the inside
// end of a crossing edge is on the line, it already is the crossing, so no
// extra point is inserted. This keeps the output free of zero length edges.

// Which side of a cut line to keep.
type side int

const (
	below side = iota // Offsets up to the line, i.e. the side with the reference edge
	above             // Offsets from the line on
)

// Part of the polygon between the reference edge and the line at offset t.
func (f Frame) ClipBelow(polygon *Polygon, t float64) Polygon {
	return f.clip(polygon.Points, t, below)
}

// Part of the polygon at or past the line at offset t.
func (f Frame) ClipAbove(polygon *Polygon, t float64) Polygon {
	return f.clip(polygon.Points, t, above)
}

// Part of the polygon between the lines at offsets lo and hi.
func (f Frame) ClipBetween(polygon *Polygon, lo, hi float64) Polygon {
	clipped := f.ClipBelow(polygon, hi)
	return f.ClipAbove(&clipped, lo)
}

// Area of the part of the polygon below the line. This is monotonically
// non-decreasing in t for any simple polygon, since the half-planes are nested.
func (f Frame) AreaBelow(polygon *Polygon, t float64) float64 {
	clipped := f.ClipBelow(polygon, t)
	return Area(&clipped)
}

func (f Frame) clip(points []Point, t float64, keep side) Polygon {
	n := len(points)
	result := make([]Point, 0, n+2)
	if n == 0 {
		return Polygon{Points: result}
	}

	offsets := make([]float64, n)
	for i, p := range points {
		offsets[i] = f.Offset(p)
	}

	for i, p := range points {
		j := CircularIndex(i+1, n)
		q := points[j]
		sp, sq := offsets[i], offsets[j]
		pIn, qIn := f.inside(sp, t, keep), f.inside(sq, t, keep)

		if pIn {
			result = append(result, p)
		}
		if pIn == qIn {
			continue
		}
		inOffset := sp
		if qIn {
			inOffset = sq
		}
		if !f.onLine(inOffset, t) {
			result = append(result, crossing(p, q, sp, sq, t))
		}
	}
	return Polygon{Points: result}
}

func (f Frame) inside(s, t float64, keep side) bool {
	if keep == below {
		return s <= t+f.LineEpsilon
	}
	return s >= t-f.LineEpsilon
}

func (f Frame) onLine(s, t float64) bool {
	return Equal(s, t, f.LineEpsilon)
}

// Point on pq at offset t, given the offsets of p and q.
func crossing(p, q Point, sp, sq, t float64) Point {
	frac := (t - sp) / (sq - sp)
	frac = math.Max(0, math.Min(1, frac))
	return p.Lerp(q, frac)
}

// Every point where the line at offset t crosses the boundary, sorted along
// the reference edge's direction.
//
// Crossings are found with the same inside rule as the clip, so they pair up
// exactly with the clip's transitions. A line that only touches the polygon at
// a vertex produces two coincident crossings there, which are dropped.
func (f Frame) Crossings(polygon *Polygon, t float64) []Point {
	points := polygon.Points
	n := len(points)
	type alongPoint struct {
		p     Point
		along float64
	}
	var found []alongPoint
	for i, p := range points {
		q := points[CircularIndex(i+1, n)]
		sp, sq := f.Offset(p), f.Offset(q)
		pIn, qIn := f.inside(sp, t, below), f.inside(sq, t, below)
		if pIn == qIn {
			continue
		}
		// A vertex within LineEpsilon of the line stands in for the crossing,
		// moved along V onto the line so that both ends share offset t
		var c Point
		switch {
		case pIn && f.onLine(sp, t):
			c = p.Translate(f.V.Mul(t - sp))
		case qIn && f.onLine(sq, t):
			c = q.Translate(f.V.Mul(t - sq))
		default:
			c = crossing(p, q, sp, sq, t)
		}
		found = append(found, alongPoint{c, f.Along(c)})
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].along < found[j].along
	})

	result := make([]Point, 0, len(found))
	for i := 0; i < len(found); i++ {
		if i+1 < len(found) && Equal(found[i].along, found[i+1].along, f.AlongEpsilon) {
			i++ // Touching pair
			continue
		}
		result = append(result, found[i].p)
	}
	return result
}

// The cut segment at offset t. A line outside the polygon's span is an
// ErrOutOfRange failure, and a line that crosses the boundary more than twice
// is ErrNotStarShaped. Both panic with a DivideError.
func (f Frame) BoundaryIntersections(polygon *Polygon, t float64) Segment {
	crossings := f.Crossings(polygon, t)
	switch {
	case len(crossings) < 2:
		fatalf(ErrOutOfRange, "offset %g not in [%g, %g]", t, f.MinOffset, f.MaxOffset)
	case len(crossings) > 2:
		fatalf(ErrNotStarShaped, "%d crossings at offset %g", len(crossings), t)
	}
	return Segment{Start: crossings[0], End: crossings[1]}
}
