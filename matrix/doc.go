// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage used for problem node features and
// adjacency, plus the handful of block constructors the generator needs.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - Block constructors (NewIdentity, NewOnes, FlipLR, Kronecker, VStack) used
//     to assemble the anti-diagonal K(n,n) adjacency of a problem and to stack
//     its key rows over its key+value rows.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateBinary,
//     ValidateZeroDiagonal) shared by the bipartite and verify packages.
//   - gonum interop (ToGonum) for downstream numeric code and printing.
//
// Matrices here are small (2n×2n with n bounded by the key count), so every
// routine favours a fixed loop order and plain slices over clever storage.
package matrix
