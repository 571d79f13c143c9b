package internal

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Shoelace formula. Counterclockwise polygons have positive area, clockwise
// polygons negative.
func SignedArea(polygon *Polygon) float64 {
	points := polygon.Points
	var area float64
	j := len(points) - 1
	for i, p := range points {
		q := points[j]
		area += (q.X + p.X) * (p.Y - q.Y)
		j = i
	}
	return area / 2
}

func Area(polygon *Polygon) float64 {
	return math.Abs(SignedArea(polygon))
}

func IsCCW(polygon *Polygon) bool {
	return SignedArea(polygon) > 0
}

func IsCW(polygon *Polygon) bool {
	return SignedArea(polygon) < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Edge i runs from point i to point i+1, wrapping at the end.
func (poly Polygon) Edge(i int) (Point, Point) {
	n := len(poly.Points)
	return poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]
}

// Axis aligned bounding box.
func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Even-odd point-in-polygon. Only used for verification, so it makes no
// attempt to be fast.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray running from p in the +X direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Whether p lies on any edge of the polygon, within the given distance.
func (poly Polygon) OnBoundary(p Point, tolerance float64) bool {
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if distanceToSegment(p, a, b) <= tolerance {
			return true
		}
	}
	return false
}

// A polygon is simple if no two non-adjacent edges touch, and no two adjacent
// edges fold back over each other.
func (poly Polygon) IsSimple() bool {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		a, b := poly.Edge(i)
		_, c := poly.Edge(i + 1)
		// Adjacent edges may only share their common vertex
		if orientation(a, b, c) == 0 && a.Sub(b).Dot(c.Sub(b)) > 0 {
			return false
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // Adjacent through the wraparound
			}
			p, q := poly.Edge(j)
			if SegmentsIntersect(a, b, p, q) {
				return false
			}
		}
	}
	return true
}

// Check that the polygon is usable for division. Clockwise polygons are
// rejected unless allowClockwise is set.
func (poly Polygon) Validate(allowClockwise bool) error {
	n := len(poly.Points)
	if n < 3 {
		return errors.Wrapf(ErrInvalidPolygon, "need at least 3 points, got %d", n)
	}
	for i, p := range poly.Points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrInvalidPolygon, "point %d is not finite: %v", i, p)
		}
		if p == poly.Points[CircularIndex(i+1, n)] {
			return errors.Wrapf(ErrInvalidPolygon, "point %d is repeated: %v", i, p)
		}
	}
	if !poly.IsSimple() {
		return errors.Wrap(ErrInvalidPolygon, "polygon is self-intersecting")
	}

	area := SignedArea(&poly)
	min, max := poly.Bounds()
	diagonal := min.Distance(max)
	if math.Abs(area) <= Epsilon*diagonal*diagonal {
		return errors.Wrapf(ErrDegenerateInput, "area %g", area)
	}
	if !allowClockwise && !IsCCW(&poly) {
		return errors.Wrap(ErrInvalidPolygon, "polygon is clockwise")
	}
	return nil
}

// Rotate the slice in place so that points[idx] becomes points[0]. With the
// (points[idx-1], points[idx]) edge convention, the edge that was idx is edge 0
// afterward. Winding order is unchanged.
func RotateToEdge(points []Point, idx int) {
	idx = CircularIndex(idx, len(points))
	slices.Reverse(points[:idx])
	slices.Reverse(points[idx:])
	slices.Reverse(points)
}

// Twice the signed area of triangle abc. Positive when c is left of ab.
func orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Do the closed segments ab and cd share any point?
func SegmentsIntersect(a, b, c, d Point) bool {
	d1 := orientation(c, d, a)
	d2 := orientation(c, d, b)
	d3 := orientation(a, b, c)
	d4 := orientation(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && inBox(c, d, a)) ||
		(d2 == 0 && inBox(c, d, b)) ||
		(d3 == 0 && inBox(a, b, c)) ||
		(d4 == 0 && inBox(a, b, d))
}

// For a point known to be collinear with ab, whether it lies between them.
func inBox(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / length2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Lerp(b, t))
}
