// SPDX-License-Identifier: MIT
// Package matrix: gonum interop.
//
// ToGonum hands problem matrices to gonum-based code, including the
// mat.Formatted pretty-printer used by the CLI. The copy shares no storage.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum returns a gonum copy of m. A nil m yields nil.
// Complexity: O(r*c).
func ToGonum(m *Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	// gonum's row-major layout matches ours, so the flat buffer maps 1:1.
	return mat.NewDense(m.r, m.c, buf)
}
