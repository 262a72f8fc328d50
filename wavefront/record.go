package wavefront

// Record is the ordered, append-only visit record of one expansion.
//
// Invariants:
//   - no two entries share a coordinate;
//   - Dist is non-decreasing along the sequence, and entries of the same
//     round keep their insertion order.
//
// Membership is answered by a row-major per-cell index table, so Append is
// O(1) instead of a scan over every earlier entry. The table only changes
// how duplicates are detected; the sequence is the same one a linear scan
// would produce.
type Record struct {
	steps  []Step
	index  []int // cell → position in steps, -1 when unseen
	height int
	width  int
}

// NewRecord returns an empty Record for a height×width grid.
// Complexity: O(height×width) for the index table.
func NewRecord(height, width int) *Record {
	if height < 0 || width < 0 {
		height, width = 0, 0
	}
	idx := make([]int, height*width)
	for i := range idx {
		idx[i] = -1
	}

	return &Record{index: idx, height: height, width: width}
}

// Append adds (c, dist) unless c is already recorded or lies outside the
// record's shape. Reports whether the entry was added.
func (r *Record) Append(c Coord, dist int) bool {
	k, ok := r.key(c)
	if !ok || r.index[k] >= 0 {
		return false
	}
	r.index[k] = len(r.steps)
	r.steps = append(r.steps, Step{Coord: c, Dist: dist})

	return true
}

// Len returns the number of entries.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.steps)
}

// At returns entry i. Panics if i is out of range, like a slice index.
func (r *Record) At(i int) Step { return r.steps[i] }

// Index returns the position of c in the record, or -1.
func (r *Record) Index(c Coord) int {
	k, ok := r.key(c)
	if !ok {
		return -1
	}

	return r.index[k]
}

// Steps returns a copy of the entries in insertion order.
func (r *Record) Steps() []Step {
	if r == nil {
		return nil
	}
	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return out
}

// key maps c to its row-major slot in the index table.
func (r *Record) key(c Coord) (int, bool) {
	if r == nil || c.Row < 0 || c.Row >= r.height || c.Col < 0 || c.Col >= r.width {
		return 0, false
	}

	return c.Row*r.width + c.Col, true
}
