// Package wavefront finds minimum-hop 4-connected paths on a 2D grid with
// the Lee wavefront algorithm: breadth-first distance labelling from the
// origin, followed by a backtrace along decreasing labels from the
// destination.
//
// What
//
//   - Expand labels blank cells with the round in which they were first
//     reached, recording them in an append-only visit Record, and stops as
//     soon as the destination is labelled or the frontier stalls.
//   - Reconstruct walks the Record backward from the destination entry to
//     the origin.
//   - FindPath validates the endpoints and drives both stages.
//
// Outcomes
//
//	FindPath distinguishes three outcome classes that must not be conflated:
//	  - Result.Found == true: a path, destination first.
//	  - Result.Found == false, nil error: no path. Either endpoint is not
//	    blank or the destination is unreachable.
//	  - non-nil error: a fault. ErrOutOfRange for endpoints outside the grid,
//	    ErrInconsistentRecord if the backtrace cannot be completed.
//
// Determinism
//
//	Neighbours are probed east, south, west, north. Among equal-length
//	paths this order alone decides which one is returned; the visit Record
//	keeps insertion order and its dedup table never reorders entries.
//
// Complexity (V = reachable cells, H×W = grid size)
//
//   - Time:   O(V) probes, each O(1) thanks to a per-cell index table.
//   - Memory: O(H×W) for the index table, O(V) for the Record.
//
// Usage
//
//	g := grid.Rows[int]{
//	    {0, 0, 1},
//	    {1, 0, 1},
//	    {1, 0, 0},
//	}
//	res, err := wavefront.FindPath[int](g, wavefront.Coord{}, wavefront.Coord{Row: 2, Col: 2}, 0)
//	if err != nil {
//	    // ErrGridNil, ErrOutOfRange, ErrOptionViolation, ErrInconsistentRecord,
//	    // a wrapped OnRound error, or ctx.Err()
//	}
//	if !res.Found {
//	    // no path
//	}
//	travel := res.Forward() // origin first
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per round.
//   - WithMaxDistance(d):      do not label cells farther than d hops (d>0).
//   - WithOnDiscover(fn):      called for every labelled cell.
//   - WithOnRound(fn):         called before every round; an error aborts.
package wavefront
