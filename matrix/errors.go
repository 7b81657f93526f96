// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go: sentinels returned (wrapped with a method tag) by every routine
// in the package. Match them with errors.Is; nothing here panics on input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., VStack with different column counts or SetRow with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the requested tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry is non-zero where a
	// loop-free adjacency was required.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNonBinary signals an entry other than 0 or 1 where a 0/1 matrix was required.
	ErrNonBinary = errors.New("matrix: non-binary entry")

	// ErrNaNInf rejects NaN or ±Inf in Set, SetRow and NewDenseFromRows.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix is returned for a nil Matrix argument, typed or untyped.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
