package internal

import "github.com/pkg/errors"

var (
	ErrInvalidDivisor   = errors.New("polydivide: divisor must be at least 1")
	ErrInvalidPolygon   = errors.New("polydivide: invalid polygon")
	ErrIndexOutOfRange  = errors.New("polydivide: edge index out of range")
	ErrInvalidTolerance = errors.New("polydivide: tolerance must be positive")
	ErrInvalidStrategy  = errors.New("polydivide: unknown strategy")

	// Zero area polygons are a special case of invalid polygons, so this matches
	// ErrInvalidPolygon under errors.Is.
	ErrDegenerateInput = errors.WithMessage(ErrInvalidPolygon, "zero area")

	// A cut line fell outside the polygon's sweep span. This should never happen
	// for valid input, and indicates a bug in the frame or search.
	ErrOutOfRange = errors.New("polydivide: cut line outside polygon")

	// A cut line crossed the boundary more than twice, so the cut cannot be
	// expressed as a single segment.
	ErrNotStarShaped = errors.New("polydivide: cut line crosses boundary more than twice")
)
