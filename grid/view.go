// SPDX-License-Identifier: MIT

package grid

// View is read-only indexed access to a rectangular grid of cells.
//
// ValueAt does not check bounds: callers validate coordinates once (see
// InBounds) and then read freely. Implementations must not mutate the
// underlying cells.
type View[T comparable] interface {
	// Height returns the number of rows.
	Height() int
	// Width returns the number of columns.
	Width() int
	// ValueAt returns the cell at (row, col). Behaviour for out-of-range
	// coordinates is implementation defined (Rows and Dense panic).
	ValueAt(row, col int) T
}

// InBounds reports whether (row, col) lies inside v.
// Complexity: O(1).
func InBounds[T comparable](v View[T], row, col int) bool {
	return row >= 0 && row < v.Height() && col >= 0 && col < v.Width()
}

// Rows borrows a caller-owned slice of rows as a View. No copy is made,
// so later writes by the caller are visible through the view.
//
// Width is taken from the first row; use Validate (or FromRows) when the
// input may be ragged.
type Rows[T comparable] [][]T

var _ View[int] = Rows[int](nil)

// Height returns len(r).
func (r Rows[T]) Height() int { return len(r) }

// Width returns the length of the first row, or 0 for an empty grid.
func (r Rows[T]) Width() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}

// ValueAt returns r[row][col].
func (r Rows[T]) ValueAt(row, col int) T { return r[row][col] }

// Validate checks that r is non-empty and rectangular.
// Returns ErrEmptyGrid or ErrNonRectangular.
// Complexity: O(H).
func (r Rows[T]) Validate() error {
	if len(r) == 0 || len(r[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(r[0])
	for _, row := range r {
		if len(row) != w {
			return ErrNonRectangular
		}
	}

	return nil
}
