// Package polydivide splits a simple polygon into regions of equal area using
// straight cuts that are all parallel to one of the polygon's edges.
//
// Given a polygon, a divisor n and the index of a reference edge, Divide
// returns the n-1 cut segments. Each segment's endpoints lie on the polygon's
// boundary, and the regions between consecutive cuts all have area total/n,
// within a tolerance that is expressed as a fraction of the total area.
package polydivide

import (
	"log/slog"

	"github.com/osuushi/polydivide/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Segment = internal.Segment
type Option = internal.Option
type Strategy = internal.Strategy

const (
	StrategyBisection = internal.StrategyBisection
	StrategyTrapezoid = internal.StrategyTrapezoid
)

// Errors returned by Divide. Match them with errors.Is; the returned errors
// carry extra context.
var (
	ErrInvalidDivisor   = internal.ErrInvalidDivisor
	ErrInvalidPolygon   = internal.ErrInvalidPolygon
	ErrDegenerateInput  = internal.ErrDegenerateInput
	ErrIndexOutOfRange  = internal.ErrIndexOutOfRange
	ErrInvalidTolerance = internal.ErrInvalidTolerance
	ErrInvalidStrategy  = internal.ErrInvalidStrategy
	ErrOutOfRange       = internal.ErrOutOfRange
	ErrNotStarShaped    = internal.ErrNotStarShaped
)

// Divide the polygon into n regions of equal area, with cuts parallel to the
// reference edge (points[idx-1], points[idx]). Edge 0 is the closing edge
// from the last point back to the first.
//
// The polygon must be simple and counterclockwise, with at least 3 points.
// The cuts are returned in order, moving away from the reference edge. Each
// segment runs in the same direction as the reference edge. For n == 1 the
// result is empty.
//
// Unless InPlace is given, points is never modified.
//
// Cuts that cross the boundary more than twice cannot be expressed as a
// single segment, so polygons that fold back along the sweep direction fail
// with ErrNotStarShaped.
func Divide(points []Point, n, idx int, opts ...Option) (result []Segment, err error) {
	defer func() {
		recoveredErr := internal.HandleDividePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	division, err := internal.Divide(points, n, idx, opts...)
	if err != nil {
		return nil, err
	}
	return division.Segments(), nil
}

// Regions performs the same division as Divide, but returns the n region
// polygons instead of the cuts, starting with the region containing the
// reference edge.
func Regions(points []Point, n, idx int, opts ...Option) (result []Polygon, err error) {
	defer func() {
		recoveredErr := internal.HandleDividePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	division, err := internal.Divide(points, n, idx, opts...)
	if err != nil {
		return nil, err
	}
	return division.Regions(), nil
}

// Acceptable area error per region, as a fraction of the polygon's total area.
// Defaults to 1e-12. It is a convergence target, not a guarantee: when float
// precision runs out first, the best cut found is returned.
func WithTolerance(tolerance float64) Option {
	return internal.WithTolerance(tolerance)
}

// Rotate the caller's slice in place so that the reference edge becomes edge
// 0. Calling Divide again on the rotated slice with idx 0 gives the same cuts.
func InPlace() Option {
	return internal.InPlace()
}

// Accept clockwise polygons. The inside of the polygon is then to the right of
// each edge.
func AllowClockwise() Option {
	return internal.AllowClockwise()
}

func WithStrategy(s Strategy) Option {
	return internal.WithStrategy(s)
}

// Search up to w cuts concurrently.
func WithWorkers(w int) Option {
	return internal.WithWorkers(w)
}

// SetLogger enables debug logging of the search. Pass nil to disable it again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
