// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface and small value types.
// Errors live in errors.go; the concrete storage lives in impl_dense.go.
package matrix

// Matrix represents a two-dimensional mutable array of int64 coefficients.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Entry is one coefficient of a sparse upper-triangular QUBO listing.
// Row <= Col always holds; Row == Col denotes a linear (diagonal) term.
type Entry struct {
	Row   int   // first variable index
	Col   int   // second variable index (>= Row)
	Value int64 // combined coefficient of x_Row * x_Col
}
