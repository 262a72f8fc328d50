package wavefront

import "fmt"

// Reconstruct walks rec backward from the destination entry at index hit
// and returns the path destination → origin.
//
// Behavior:
//  1. current = to, expected = label(to) - 1.
//  2. Scan rec downward from hit-1 to 0 inclusive for the first entry
//     labelled `expected` and 4-adjacent to current; append it, make it
//     current, decrement expected and resume scanning below the match.
//  3. When expected reaches 0, append from.
//
// A scan that runs past index 0 without a match, a hit index outside the
// record, or a hit entry that is not `to`, returns ErrInconsistentRecord.
// The output is destination first; use Reverse for travel order.
//
// Complexity: O(len(rec)) since the scan position only moves downward.
func Reconstruct(rec *Record, hit int, from, to Coord) ([]Coord, error) {
	if hit < 0 || hit >= rec.Len() {
		return nil, fmt.Errorf("%w: hit index %d outside record of %d", ErrInconsistentRecord, hit, rec.Len())
	}
	dest := rec.At(hit)
	if dest.Coord != to {
		return nil, fmt.Errorf("%w: entry %d is %v, want destination %v", ErrInconsistentRecord, hit, dest.Coord, to)
	}
	if dest.Dist == 0 {
		if to != from {
			return nil, fmt.Errorf("%w: destination %v labelled 0 but origin is %v", ErrInconsistentRecord, to, from)
		}
		return []Coord{to}, nil
	}

	path := make([]Coord, 0, dest.Dist+1)
	path = append(path, to)
	cur := to
	i := hit - 1 // signed: index 0 is a legitimate target
	for expected := dest.Dist - 1; expected > 0; expected-- {
		found := false
		for ; i >= 0; i-- {
			s := rec.steps[i]
			if s.Dist == expected && adjacent(s.Coord, cur) {
				path = append(path, s.Coord)
				cur = s.Coord
				found = true
				i--
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no cell labelled %d adjacent to %v", ErrInconsistentRecord, expected, cur)
		}
	}
	if !adjacent(cur, from) {
		return nil, fmt.Errorf("%w: %v is not adjacent to origin %v", ErrInconsistentRecord, cur, from)
	}

	return append(path, from), nil
}

// adjacent reports whether a and b are 4-neighbours:
// (|dRow| == 1 and same column) or (|dCol| == 1 and same row).
func adjacent(a, b Coord) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)

	return (dr == 1 && dc == 0) || (dc == 1 && dr == 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
