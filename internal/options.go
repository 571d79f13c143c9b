package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Option configures a single Divide call.
//
// Example:
//
//	segments, err := Divide(points, 4, 1, WithTolerance(1e-9), InPlace())
type Option func(*Config)

// Config holds everything a Divide call can be configured with.
type Config struct {
	// Acceptable area error per cut, as a fraction of the total area.
	Tolerance float64
	// Rotate the caller's slice instead of working on a copy.
	InPlace bool
	// Accept clockwise polygons instead of rejecting them.
	AllowClockwise bool
	Strategy       Strategy
	// Maximum number of cuts searched concurrently. 1 or less is sequential.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Tolerance: DefaultTolerance,
		Strategy:  StrategyBisection,
		Workers:   1,
	}
}

func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) Validate() error {
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return errors.Wrapf(ErrInvalidTolerance, "got %g", c.Tolerance)
	}
	switch c.Strategy {
	case StrategyBisection, StrategyTrapezoid:
	default:
		return errors.Wrapf(ErrInvalidStrategy, "got %d", int(c.Strategy))
	}
	return nil
}

// Check n against the config. Targets are total/n apart and each cut may land
// anywhere within Tolerance*total of its own, so from half the spacing on,
// neighbouring cuts can settle on the same offset.
func (c Config) ValidateDivisor(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidDivisor, "got %d", n)
	}
	if limit := 1 / (2 * float64(n)); n > 1 && c.Tolerance >= limit {
		return errors.Wrapf(ErrInvalidTolerance, "%g cannot keep %d regions apart, must be below %g", c.Tolerance, n, limit)
	}
	return nil
}

func WithTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.Tolerance = tolerance
	}
}

// InPlace lets Divide rotate the caller's slice so that the reference edge
// becomes edge 0. The rotation happens once, at the start of the call.
func InPlace() Option {
	return func(c *Config) {
		c.InPlace = true
	}
}

func AllowClockwise() Option {
	return func(c *Config) {
		c.AllowClockwise = true
	}
}

func WithStrategy(s Strategy) Option {
	return func(c *Config) {
		c.Strategy = s
	}
}

// WithWorkers searches up to w cuts concurrently. Results are identical to a
// sequential run.
func WithWorkers(w int) Option {
	return func(c *Config) {
		c.Workers = w
	}
}
