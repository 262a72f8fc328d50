package wavefront

import (
	"context"
	"fmt"

	"github.com/katalvlaran/leewave/grid"
)

// neighborOffsets lists (dRow, dCol) in probe order: east, south, west, north.
// The order breaks ties among equal-length paths; it never affects reachability.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Expansion is the outcome of the wavefront stage.
//   - Record: every labelled cell in discovery order.
//   - Hit: index of the destination entry in Record, -1 if not reached.
//   - Rounds: number of rounds run.
type Expansion struct {
	Record *Record
	Hit    int
	Rounds int
}

// Found reports whether the destination was labelled.
func (e *Expansion) Found() bool { return e.Hit >= 0 }

// expander encapsulates the mutable state of one expansion.
// Entries of the current round occupy Record positions [lo, hi).
type expander[T comparable] struct {
	g      grid.View[T]
	h, w   int
	blank  T
	to     Coord
	opts   Options
	ctx    context.Context
	rec    *Record
	lo, hi int
	round  int
}

// Expand runs the wavefront stage on g from `from` towards `to`.
//
// Behavior:
//  1. Either endpoint not equal to blank → not found, nothing expanded.
//  2. Seed the record with (from, 0). from == to is found at index 0.
//  3. Round d probes every entry labelled d (in record order) east,
//     south, west, north; a blank in-bounds neighbour not yet recorded is
//     appended with label d+1.
//  4. Appending the destination ends the search immediately.
//  5. A round that appends nothing means the frontier stalled: not found.
//
// Returns ErrGridNil, ErrOutOfRange, ErrOptionViolation, a wrapped OnRound
// error, or ctx.Err() on cancellation. "Not found" is not an error.
func Expand[T comparable](g grid.View[T], from, to Coord, blank T, opts ...Option) (*Expansion, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkEndpoints(g, from, to); err != nil {
		return nil, err
	}

	return expand(g, from, to, blank, o)
}

// expand assumes validated inputs.
func expand[T comparable](g grid.View[T], from, to Coord, blank T, o Options) (*Expansion, error) {
	if g.ValueAt(from.Row, from.Col) != blank || g.ValueAt(to.Row, to.Col) != blank {
		return &Expansion{Record: NewRecord(0, 0), Hit: -1}, nil
	}

	x := &expander[T]{
		g:     g,
		h:     g.Height(),
		w:     g.Width(),
		blank: blank,
		to:    to,
		opts:  o,
		ctx:   o.Ctx,
		rec:   NewRecord(g.Height(), g.Width()),
	}
	x.rec.Append(from, 0)
	x.opts.OnDiscover(from, 0)
	if from == to {
		return &Expansion{Record: x.rec, Hit: 0}, nil
	}
	x.lo, x.hi = 0, 1

	hit, err := x.loop()
	if err != nil {
		return nil, err
	}

	return &Expansion{Record: x.rec, Hit: hit, Rounds: x.round}, nil
}

// loop runs rounds until a hit, a stall, the distance limit, or an error.
// On return x.round holds the number of rounds run.
func (x *expander[T]) loop() (int, error) {
	for {
		// cancellation check (once per round)
		select {
		case <-x.ctx.Done():
			return -1, x.ctx.Err()
		default:
		}
		if x.opts.MaxDistance > 0 && x.round >= x.opts.MaxDistance {
			return -1, nil
		}
		if err := x.opts.OnRound(x.round, x.hi-x.lo); err != nil {
			return -1, fmt.Errorf("wavefront: OnRound error at round %d: %w", x.round, err)
		}

		hit, appended := x.step()
		x.round++
		if hit >= 0 {
			return hit, nil
		}
		if appended == 0 {
			return -1, nil
		}
		x.lo, x.hi = x.hi, x.rec.Len()
	}
}

// step expands the current frontier by one hop. It returns the record
// index of the destination if it was appended (else -1) and the number of
// cells appended in this round.
func (x *expander[T]) step() (hit, appended int) {
	next := x.round + 1
	for i := x.lo; i < x.hi; i++ {
		cur := x.rec.steps[i].Coord
		for _, d := range neighborOffsets {
			nb := Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if nb.Row < 0 || nb.Row >= x.h || nb.Col < 0 || nb.Col >= x.w {
				continue
			}
			if x.g.ValueAt(nb.Row, nb.Col) != x.blank {
				continue
			}
			if !x.rec.Append(nb, next) {
				continue // already labelled
			}
			appended++
			x.opts.OnDiscover(nb, next)
			if nb == x.to {
				return x.rec.Len() - 1, appended
			}
		}
	}

	return -1, appended
}

// shapeValidator is implemented by views that may not be rectangular,
// such as grid.Rows.
type shapeValidator interface {
	Validate() error
}

// checkEndpoints rejects a view that fails its own shape check, then
// coordinates outside [0,Height)×[0,Width).
func checkEndpoints[T comparable](g grid.View[T], from, to Coord) error {
	if v, ok := g.(shapeValidator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("wavefront: %w", err)
		}
	}
	if !grid.InBounds(g, from.Row, from.Col) {
		return fmt.Errorf("%w: origin %v outside %dx%d grid", ErrOutOfRange, from, g.Height(), g.Width())
	}
	if !grid.InBounds(g, to.Row, to.Col) {
		return fmt.Errorf("%w: destination %v outside %dx%d grid", ErrOutOfRange, to, g.Height(), g.Width())
	}

	return nil
}
