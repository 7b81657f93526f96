// SPDX-License-Identifier: MIT
// Package: matrix
//
// types.go: the interfaces graph checks are written against.

package matrix

// Matrix is the read-only view consumed by validators and graph checks.
// Dense satisfies it; so can any adapter that exposes indexed access.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
}

// Mutable is a Matrix that can be written and deep-copied.
type Mutable interface {
	Matrix

	// Set stores v at (i, j). Returns ErrOutOfRange or ErrNaNInf.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	// Complexity: O(rows*cols).
	Clone() Mutable
}
