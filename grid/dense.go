// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep traversal deterministic (fixed loop orders, no map iteration).
//   - Support no-copy windows (Window) for searching a region of a larger map.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; FromRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c); View: O(1).

package grid

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxView = "View" // ctor tag for Dense.View
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,-1): grid: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an owned row-major grid of comparable cells.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T comparable] struct {
	r, c int // row and column counts (>0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ View[int]    = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// NewDense creates an r×c grid filled with the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T comparable](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols),
	}, nil
}

// FromRows constructs a Dense from a non-empty, rectangular 2D slice.
// It deep-copies the input so later caller writes do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(r*c) time and memory.
func FromRows[T comparable](values [][]T) (*Dense[T], error) {
	if err := Rows[T](values).Validate(); err != nil {
		return nil, err
	}
	h, w := len(values), len(values[0])
	d := &Dense[T]{r: h, c: w, data: make([]T, h*w)}
	for i := 0; i < h; i++ {
		copy(d.data[i*w:(i+1)*w], values[i])
	}

	return d, nil
}

// Fill returns an r×c Dense with every cell set to v.
// Complexity: O(r*c).
func Fill[T comparable](rows, cols int, v T) (*Dense[T], error) {
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = v
	}

	return d, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Height implements View; identical to Rows.
func (m *Dense[T]) Height() int { return m.r }

// Width implements View; identical to Cols.
func (m *Dense[T]) Width() int { return m.c }

// ValueAt implements View. It skips the error path of At and panics on
// out-of-range coordinates like a slice index would.
func (m *Dense[T]) ValueAt(row, col int) T { return m.data[row*m.c+col] }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (m *Dense[T]) InBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if !m.InBounds(row, col) {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the zero value and a wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Do visits each cell in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as space-separated values for diagnostics.
// Not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight sub-grid referencing the base buffer (shared storage).
//
// Behavior highlights:
//   - Writes to the base are visible through the window.
//   - Coordinates inside the window are relative to (r0, c0).
//
// Errors:
//   - ErrBadShape when the window is empty or does not fit.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*Window[T], error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &Window[T]{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Window is a non-owning rectangle of a Dense (shared storage).
type Window[T comparable] struct {
	base *Dense[T] // underlying storage owner
	r0   int       // top-left row offset in base
	c0   int       // top-left col offset in base
	r    int       // window height
	c    int       // window width
}

var _ View[int] = (*Window[int])(nil)

// Height returns the number of rows in the window.
func (w *Window[T]) Height() int { return w.r }

// Width returns the number of columns in the window.
func (w *Window[T]) Width() int { return w.c }

// ValueAt reads (row,col) relative to the window's top-left corner.
func (w *Window[T]) ValueAt(row, col int) T {
	return w.base.data[(w.r0+row)*w.base.c+(w.c0+col)]
}

// Origin returns the window's top-left corner in base coordinates.
func (w *Window[T]) Origin() (row, col int) { return w.r0, w.c0 }
