package internal

import (
	"context"
	"log/slog"
	"math"
	"sort"
)

// How the offset of each cut is located.
type Strategy int

const (
	// Bisect over the sweep range until the area below the line is within
	// tolerance of the target.
	StrategyBisection Strategy = iota
	// Split the sweep range into slabs at the vertex offsets. Within a slab the
	// area below the line is exactly quadratic in the offset, so the cut can be
	// solved for directly.
	StrategyTrapezoid
)

func (s Strategy) String() string {
	switch s {
	case StrategyBisection:
		return "bisection"
	case StrategyTrapezoid:
		return "trapezoid"
	}
	return "unknown"
}

// Largest number of halvings needed to shrink the sweep span down to the
// resolution of a float64 offset. This is what guarantees that the search
// terminates even when the tolerance cannot be reached.
func maxIterations(span float64) int {
	if !(span > 0) {
		return 0
	}
	positionEpsilon := span * 0x1p-52
	return int(math.Ceil(math.Log2(span / positionEpsilon)))
}

// The outcome of the search for the k-th cut.
type Cut struct {
	K          int
	Target     float64 // k * total / n
	Offset     float64
	Area       float64 // Actual area below the line at Offset
	Iterations int
	Converged  bool
	Segment    Segment
}

type searcher struct {
	frame     Frame
	polygon   *Polygon
	total     float64
	n         int
	tolerance float64 // Absolute, i.e. already scaled by total
	strategy  Strategy

	// Vertex offsets and the areas below them, for the trapezoid strategy
	slabOffsets []float64
	slabAreas   []float64

	logger *slog.Logger
	name   string
}

func (s *searcher) areaBelow(t float64) float64 {
	return s.frame.AreaBelow(s.polygon, t)
}

// Find the k-th cut and its segment. Searches for different k share no state
// beyond the read-only slab table, so they may run concurrently.
func (s *searcher) search(k int) Cut {
	target := float64(k) * s.total / float64(s.n)
	var cut Cut
	switch s.strategy {
	case StrategyTrapezoid:
		cut = s.solveTrapezoid(target)
	default:
		lo, hi := s.frame.SweepRange()
		cut = s.bisect(target, lo, hi)
	}
	cut.K = k
	cut.Segment = s.frame.BoundaryIntersections(s.polygon, cut.Offset)

	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("cut located",
			"search", s.name,
			"k", k,
			"strategy", s.strategy.String(),
			"target", target,
			"offset", cut.Offset,
			"error", cut.Area-target,
			"iterations", cut.Iterations,
			"converged", cut.Converged,
		)
	}
	return cut
}

// Bisect for target within [lo, hi]. If the tolerance is never reached, the
// best offset seen is returned with Converged unset.
func (s *searcher) bisect(target, lo, hi float64) Cut {
	best := Cut{Target: target, Offset: lo + (hi-lo)/2, Area: math.NaN()}
	bestError := math.Inf(1)

	limit := maxIterations(hi - lo)
	for i := 0; i < limit; i++ {
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			break // Out of float resolution
		}
		area := s.areaBelow(mid)
		best.Iterations = i + 1

		areaError := math.Abs(area - target)
		if areaError < bestError {
			bestError = areaError
			best.Offset = mid
			best.Area = area
		}
		if areaError <= s.tolerance {
			best.Converged = true
			break
		}

		if area < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	if math.IsNaN(best.Area) {
		best.Area = s.areaBelow(best.Offset)
	}
	return best
}

// Build the slab table: distinct vertex offsets in increasing order, and the
// area below each of them.
func (s *searcher) prepareSlabs() {
	offsets := make([]float64, 0, len(s.polygon.Points))
	for _, p := range s.polygon.Points {
		offsets = append(offsets, s.frame.Offset(p))
	}
	sort.Float64s(offsets)

	s.slabOffsets = s.slabOffsets[:0]
	for _, o := range offsets {
		if len(s.slabOffsets) > 0 && Equal(o, s.slabOffsets[len(s.slabOffsets)-1], s.frame.LineEpsilon) {
			continue
		}
		s.slabOffsets = append(s.slabOffsets, o)
	}

	s.slabAreas = make([]float64, len(s.slabOffsets))
	for i, o := range s.slabOffsets {
		s.slabAreas[i] = s.areaBelow(o)
	}
	// The ends are known exactly
	s.slabAreas[0] = 0
	s.slabAreas[len(s.slabAreas)-1] = s.total
}

// Solve for target inside the slab that brackets it. The quadratic is fitted
// through the slab's ends and midpoint, which determines it exactly. If
// rounding leaves the answer outside tolerance, bisection finishes the job
// within the slab.
func (s *searcher) solveTrapezoid(target float64) Cut {
	j := sort.Search(len(s.slabAreas), func(i int) bool {
		return s.slabAreas[i] >= target
	})
	if j == 0 {
		j = 1
	}
	if j >= len(s.slabAreas) {
		j = len(s.slabAreas) - 1
	}
	lo, hi := s.slabOffsets[j-1], s.slabOffsets[j]
	a0, a1 := s.slabAreas[j-1], s.slabAreas[j]
	am := s.areaBelow(lo + (hi-lo)/2)

	// area(x) = a0 + b*x + c*x² for x in [0, 1] across the slab
	c := 2 * (a1 - 2*am + a0)
	b := a1 - a0 - c
	x := solveUnitQuadratic(c, b, a0-target)
	offset := lo + x*(hi-lo)

	area := s.areaBelow(offset)
	if math.Abs(area-target) <= s.tolerance {
		return Cut{Target: target, Offset: offset, Area: area, Iterations: 1, Converged: true}
	}
	cut := s.bisect(target, lo, hi)
	cut.Iterations++
	return cut
}

// Root of a*x² + b*x + c in [0, 1], clamped into the interval. The root is
// computed with the cancellation-free form of the quadratic formula.
func solveUnitQuadratic(a, b, c float64) float64 {
	var x float64
	if math.Abs(a) <= 1e-12*(math.Abs(b)+math.Abs(c)) {
		if b == 0 {
			return 0.5
		}
		x = -c / b
	} else {
		disc := math.Max(0, b*b-4*a*c)
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		x = pickUnitRoot(q/a, c/q)
	}
	return math.Max(0, math.Min(1, x))
}

// Pick whichever of two roots lies in (or closest to) [0, 1].
func pickUnitRoot(r1, r2 float64) float64 {
	distance := func(r float64) float64 {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return math.Inf(1)
		}
		if r < 0 {
			return -r
		}
		if r > 1 {
			return r - 1
		}
		return 0
	}
	if distance(r2) < distance(r1) {
		return r2
	}
	return r1
}
