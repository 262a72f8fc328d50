// SPDX-License-Identifier: MIT

// Package grid provides read-only and owned 2D cell containers consumed by
// the wavefront search.
//
// What:
//
//   - View[T] is the minimal read contract: Height, Width and ValueAt.
//   - Rows[T] borrows a caller-owned [][]T without copying.
//   - Dense[T] is an owned row-major container with safe At/Set.
//   - Window[T] is a no-copy rectangular sub-view of a Dense.
//
// Why:
//
//   - Search algorithms only need indexed reads and a shape; keeping the
//     contract this small lets callers pass maps in whatever storage they
//     already have.
//   - Cell values are any comparable type: int obstacle codes, runes from a
//     text map, string tags or small enums all work.
//
// Complexity:
//
//   - Height/Width/ValueAt: O(1) for every implementation in this package.
//   - FromRows, Clone: O(H×W) time and memory.
//   - View: O(1).
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions or an invalid window.
//   - ErrEmptyGrid: input rows are empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: At/Set outside the grid (wrapped with coordinates).
package grid
