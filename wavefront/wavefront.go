package wavefront

import "github.com/katalvlaran/leewave/grid"

// FindPath finds a minimum-hop 4-connected path through cells equal to
// blank, from `from` to `to`, on g.
//
// Steps:
//  1. Reject a nil grid (ErrGridNil) and invalid options (ErrOptionViolation).
//  2. Reject a ragged or empty grid.Rows (grid.ErrNonRectangular,
//     grid.ErrEmptyGrid) and endpoints outside the grid (ErrOutOfRange)
//     before any search work.
//  3. Expand; if the destination is not reached, return Found == false.
//  4. Reconstruct the path, destination first.
//
// A non-blank endpoint or an unreachable destination yields a Result with
// Found == false and a nil error. from == to on a blank cell yields a
// one-cell path with Distance 0.
func FindPath[T comparable](g grid.View[T], from, to Coord, blank T, opts ...Option) (*Result, error) {
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

	exp, err := expand(g, from, to, blank, o)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Distance: -1,
		Visited:  exp.Record.Len(),
		Rounds:   exp.Rounds,
	}
	if !exp.Found() {
		return res, nil
	}

	path, err := Reconstruct(exp.Record, exp.Hit, from, to)
	if err != nil {
		return nil, err
	}
	res.Found = true
	res.Path = path
	res.Distance = len(path) - 1

	return res, nil
}
