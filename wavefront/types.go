// Package wavefront provides tunable options, result types and error
// definitions for Lee wavefront search.
package wavefront

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for wavefront execution.
var (
	// ErrGridNil is returned if a nil grid view is passed.
	ErrGridNil = errors.New("wavefront: grid is nil")

	// ErrOutOfRange is returned when the origin or destination lies outside
	// the grid. It is a caller error, never a "no path" answer.
	ErrOutOfRange = errors.New("wavefront: coordinate out of range")

	// ErrInconsistentRecord is returned when the backtrace cannot find the
	// expected adjacent cell one hop closer to the origin. A record built
	// by Expand never triggers it.
	ErrInconsistentRecord = errors.New("wavefront: visit record is inconsistent")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wavefront: invalid option supplied")
)

// Coord is a 0-based (row, column) cell coordinate.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step is one visit-record entry: a cell and the round it was first reached in.
type Step struct {
	Coord
	Dist int
}

// Option configures a search via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per round.
	Ctx context.Context

	// MaxDistance, if > 0, stops labelling beyond this many hops.
	// A value of 0 disables the limit.
	MaxDistance int

	// OnDiscover is called for every cell appended to the visit record,
	// the origin included (dist 0).
	OnDiscover func(c Coord, dist int)

	// OnRound is called before round `round` expands `frontier` cells.
	// A non-nil error aborts the search and is returned wrapped.
	OnRound func(round, frontier int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no distance
// limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: 0,
		OnDiscover:  func(Coord, int) {},
		OnRound:     func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance limits the search to cells at most d hops from the origin.
//
//	d > 0: limit to d hops
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithOnDiscover registers a callback run for every labelled cell.
func WithOnDiscover(fn func(c Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnRound registers a callback run before each round; returning an
// error from it stops the search.
func WithOnRound(fn func(round, frontier int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and reports the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result holds the outcome of FindPath.
//   - Found: whether a path exists.
//   - Path: cells from destination to origin (reverse travel order).
//   - Distance: hop count, len(Path)-1; -1 when not found.
//   - Visited: number of labelled cells.
//   - Rounds: number of expansion rounds run.
type Result struct {
	Found    bool
	Path     []Coord
	Distance int
	Visited  int
	Rounds   int
}

// Forward returns the path in travel order (origin first) as a new slice.
// Returns nil when no path was found.
func (r *Result) Forward() []Coord {
	if !r.Found {
		return nil
	}

	return Reverse(r.Path)
}

// Reverse returns a reversed copy of path.
func Reverse(path []Coord) []Coord {
	out := make([]Coord, len(path))
	for i, c := range path {
		out[len(path)-1-i] = c
	}

	return out
}
