package internal

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/osuushi/polydivide/internal/dbg"
	"github.com/pkg/errors"
)

// Everything computed while dividing a polygon. The public API only hands out
// Segments, but the rest is useful for verification and drawing.
type Division struct {
	// The polygon that was divided. With InPlace this shares storage with the
	// caller's slice, otherwise it is a copy.
	Polygon Polygon
	// Index of the reference edge within Polygon. Zero after an in place rotation.
	Edge  int
	Frame Frame
	// Absolute area of the polygon
	Total float64
	Cuts  []Cut
}

// Segments in increasing offset order, i.e. moving away from the reference edge.
func (d *Division) Segments() []Segment {
	segments := make([]Segment, len(d.Cuts))
	for i, cut := range d.Cuts {
		segments[i] = cut.Segment
	}
	return segments
}

// Offsets bounding each region: the sweep minimum, every cut, then the sweep
// maximum.
func (d *Division) Boundaries() []float64 {
	boundaries := make([]float64, 0, len(d.Cuts)+2)
	boundaries = append(boundaries, d.Frame.MinOffset)
	for _, cut := range d.Cuts {
		boundaries = append(boundaries, cut.Offset)
	}
	return append(boundaries, d.Frame.MaxOffset)
}

// The n regions, starting with the one that contains the reference edge.
func (d *Division) Regions() []Polygon {
	boundaries := d.Boundaries()
	regions := make([]Polygon, 0, len(boundaries)-1)
	for i := 1; i < len(boundaries); i++ {
		regions = append(regions, d.Frame.ClipBetween(&d.Polygon, boundaries[i-1], boundaries[i]))
	}
	return regions
}

// Divide the polygon into n equal area regions with cuts parallel to the edge
// (points[idx-1], points[idx]).
//
// Invalid input is reported as an error. Failures found during the search
// itself panic with a DivideError, which callers are expected to recover with
// HandleDividePanicRecover.
func Divide(points []Point, n, idx int, opts ...Option) (*Division, error) {
	config := NewConfig(opts...)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := config.ValidateDivisor(n); err != nil {
		return nil, err
	}
	if err := (Polygon{Points: points}).Validate(config.AllowClockwise); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(points) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0, %d)", idx, len(points))
	}

	var polygon Polygon
	if config.InPlace {
		RotateToEdge(points, idx)
		idx = 0
		polygon = Polygon{Points: points}
	} else {
		polygon = Polygon{Points: slices.Clone(points)}
	}

	winding := 1.0
	if IsCW(&polygon) {
		winding = -1
	}
	frame, err := NewFrame(&polygon, idx, winding)
	if err != nil {
		return nil, err
	}

	division := &Division{
		Polygon: polygon,
		Edge:    idx,
		Frame:   frame,
		Total:   Area(&polygon),
	}
	if n == 1 {
		division.Cuts = []Cut{}
		return division, nil
	}

	s := &searcher{
		frame:     frame,
		polygon:   &division.Polygon,
		total:     division.Total,
		n:         n,
		tolerance: config.Tolerance * division.Total,
		strategy:  config.Strategy,
		logger:    Logger(),
	}
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.name = dbg.Name(s)
		s.logger.Debug("dividing polygon",
			"search", s.name,
			"points", len(points),
			"n", n,
			"edge", idx,
			"area", division.Total,
			"sweep", []float64{frame.MinOffset, frame.MaxOffset},
		)
	}
	if s.strategy == StrategyTrapezoid {
		s.prepareSlabs()
	}

	division.Cuts = s.searchAll(config.Workers)
	return division, nil
}

// Search every cut, either in order or spread over a bounded set of
// goroutines. Either way cuts[k-1] holds the k-th cut.
func (s *searcher) searchAll(workers int) []Cut {
	count := s.n - 1
	cuts := make([]Cut, count)
	if workers <= 1 || count == 1 {
		for k := 1; k <= count; k++ {
			cuts[k-1] = s.search(k)
		}
		return cuts
	}

	jobs := make(chan int, count)
	for k := 1; k <= count; k++ {
		jobs <- k
	}
	close(jobs)

	// A panic in a worker would kill the process, so hand it back to the
	// calling goroutine where the public API can recover it.
	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		panicked  interface{}
	)
	for range min(workers, count) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { panicked = r })
				}
			}()
			for k := range jobs {
				cuts[k-1] = s.search(k)
			}
		}()
	}
	wg.Wait()

	if panicked != nil {
		panic(panicked)
	}
	return cuts
}
