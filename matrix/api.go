// SPDX-License-Identifier: MIT
// Package matrix: block constructors and small vector helpers.
//
// Purpose:
//   - Provide the neutral elements (identity, ones) and the two block operations
//     (FlipLR, Kronecker) from which the anti-diagonal bipartite adjacency
//     kron(fliplr(I₂), 1ₙₓₙ) is assembled.
//   - Provide VStack for stacking key rows over key+value rows.
//
// Determinism & Policy:
//   - Fixed i→j loop orders; results are freshly allocated *Dense values.

package matrix

import (
	"fmt"
	"math"
)

const (
	opIdentity  = "NewIdentity"
	opOnes      = "NewOnes"
	opFlipLR    = "FlipLR"
	opKronecker = "Kronecker"
	opVStack    = "VStack"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewOnes returns a rows×cols matrix filled with 1.
// Complexity: O(rows*cols).
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opOnes, err)
	}
	for k := range m.data {
		m.data[k] = 1.0
	}

	return m, nil
}

// FlipLR returns m with its column order reversed (column j ↦ c-1-j).
// FlipLR(I₂) is the 2×2 anti-diagonal [[0,1],[1,0]].
// Complexity: O(r*c).
func FlipLR(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opFlipLR, ErrNilMatrix)
	}
	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opFlipLR, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[i*m.c+(m.c-1-j)] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Kronecker returns the Kronecker product a ⊗ b of shape (ra*rb)×(ca*cb):
// block (i,j) equals a[i,j]·b.
// Complexity: O(ra*ca*rb*cb).
func Kronecker(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opKronecker, ErrNilMatrix)
	}
	out, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	var (
		i, j, p, q int
		aij        float64
		row, col   int
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			aij = a.data[i*a.c+j]
			if aij == 0 {
				continue // block stays zero
			}
			for p = 0; p < b.r; p++ {
				row = i*b.r + p
				for q = 0; q < b.c; q++ {
					col = j*b.c + q
					out.data[row*out.c+col] = aij * b.data[p*b.c+q]
				}
			}
		}
	}

	return out, nil
}

// VStack stacks top over bottom; both must have the same column count.
// Complexity: O((rt+rb)*c).
func VStack(top, bottom *Dense) (*Dense, error) {
	if top == nil || bottom == nil {
		return nil, matrixErrorf(opVStack, ErrNilMatrix)
	}
	if top.c != bottom.c {
		return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
	}
	out, err := NewDense(top.r+bottom.r, top.c)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	copy(out.data, top.data)
	copy(out.data[len(top.data):], bottom.data)

	return out, nil
}

// ArgMax returns the index of the largest element of xs, the lowest such
// index on ties, and -1 for an empty slice. NaN propagates: the index of the
// first NaN is returned whenever xs holds one.
// Complexity: O(len(xs)).
func ArgMax(xs []float64) int {
	if len(xs) == 0 {
		return -1
	}
	best := 0
	for i, x := range xs {
		if math.IsNaN(x) {
			return i
		}
		if x > xs[best] {
			best = i
		}
	}

	return best
}
