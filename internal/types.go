package internal

import "fmt"

type Point struct {
	X float64
	Y float64
}

// Vectors are kept distinct from points so that directions and positions are
// never mixed up in the frame arithmetic.
type Vec2 struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []Point
}

// A cut through the polygon. Both ends lie on the boundary, and Start always
// comes before End when measured along the direction of the reference edge.
type Segment struct {
	Start Point
	End   Point
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (s Segment) String() string {
	return fmt.Sprintf("%s → %s", s.Start, s.End)
}
