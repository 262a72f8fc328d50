// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: " so it can be grepped in logs.
// Public accessors wrap these sentinels with method and coordinates;
// callers match with errors.Is.
var (
	// ErrBadShape is returned when requested dimensions are non-positive
	// or a window does not fit inside its base.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates a row or column outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
)
