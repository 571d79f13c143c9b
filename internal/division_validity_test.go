package internal

// This contains no actual tests. It is just a helper for checking that a
// division is valid.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a division is valid. The rules are:
// 1. There are exactly n-1 cuts, with strictly increasing offsets.
// 2. The area below every cut is within tolerance of k*total/n, unless the
//    search hit its iteration cap.
// 3. Every region has area total/n, and together they add up to the total.
// 4. Every segment's endpoints lie on the polygon's boundary, on the cut line,
//    and run in the direction of the reference edge.
// 5. Every segment runs through the inside of the polygon.
func AssertValidDivision(t *testing.T, d *Division, n int, tolerance float64) {
	t.Helper()
	require.Len(t, d.Cuts, n-1)

	min, max := d.Polygon.Bounds()
	scale := min.Distance(max)
	absTolerance := tolerance * d.Total
	// Rounding in the clip adds a little on top of the search tolerance
	slack := absTolerance + 1e-12*d.Total

	for i, cut := range d.Cuts {
		k := i + 1
		assert.Equal(t, k, cut.K)
		if i > 0 {
			assert.Greater(t, cut.Offset, d.Cuts[i-1].Offset, "offsets must increase")
		}

		target := float64(k) * d.Total / float64(n)
		areaBelow := d.Frame.AreaBelow(&d.Polygon, cut.Offset)
		if cut.Converged {
			assert.InDelta(t, target, areaBelow, slack, "area below cut %d", k)
		}

		for _, p := range []Point{cut.Segment.Start, cut.Segment.End} {
			assert.True(t, d.Polygon.OnBoundary(p, 1e-9*scale), "%v is not on the boundary", p)
			assert.InDelta(t, cut.Offset, d.Frame.Offset(p), 1e-9*scale, "%v is not on the cut line", p)
		}
		assert.Less(t, d.Frame.Along(cut.Segment.Start), d.Frame.Along(cut.Segment.End))
		mid := cut.Segment.Start.Lerp(cut.Segment.End, 0.5)
		assert.True(t, d.Polygon.ContainsPointByEvenOdd(mid), "cut %d runs outside at %v", k, mid)
	}

	regions := d.Regions()
	require.Len(t, regions, n)
	var sum float64
	for i, region := range regions {
		area := Area(&region)
		sum += area
		assert.InDelta(t, d.Total/float64(n), area, 2*slack, "region %d", i)
	}
	assert.InDelta(t, d.Total, sum, math.Max(float64(n)*slack, 1e-12*d.Total))
}
