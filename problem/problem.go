// SPDX-License-Identifier: MIT
// Package: problem
//
// problem.go: the immutable Problem value and its decoder.

package problem

import (
	"github.com/katalvlaran/dictlookup/matrix"
)

// Problem is one generated dictionary-lookup instance. It is immutable:
// accessors return copies, never the internal matrices.
type Problem struct {
	nKeys   int
	nodes   *matrix.Dense // 2n × (nKeys+nVals)
	adj     *matrix.Dense // 2n × 2n
	answers []int         // len n
}

// NKeys returns the number of key slots of the encoding space.
func (p *Problem) NKeys() int { return p.nKeys }

// NValues returns the number of value slots, derived as width - nKeys.
func (p *Problem) NValues() int { return p.nodes.Cols() - p.nKeys }

// Size returns n, the number of keys actually used in this instance.
func (p *Problem) Size() int { return len(p.answers) }

// Nodes returns a copy of the node-feature matrix.
func (p *Problem) Nodes() *matrix.Dense { return p.nodes.CloneDense() }

// Adjacency returns a copy of the adjacency matrix.
func (p *Problem) Adjacency() *matrix.Dense { return p.adj.CloneDense() }

// Answers returns a copy of the value bound to each sampled key, in sampled order.
func (p *Problem) Answers() []int {
	out := make([]int, len(p.answers))
	copy(out, p.answers)

	return out
}

// Row returns a copy of node i's feature vector.
func (p *Problem) Row(i int) ([]float64, error) {
	return p.nodes.Row(i)
}

// Decode maps a feature vector of length NKeys()+NValues() to an Entry.
//
// The key is the arg-max of the key segment (lowest index on ties); every
// vector decodes to some key. The value is the arg-max of the value segment,
// reported as absent when the entry at that index is exactly zero. Soft
// vectors are accepted: any nonzero maximum counts as asserted, so a tiny
// positive value is reported as present and an all-zero segment as absent.
// A segment whose entries are all negative also has a nonzero maximum and
// therefore reports a value. A NaN anywhere in a segment selects the first
// NaN's index; in the value segment that reports a value, since NaN != 0.
//
// Errors: ErrInvalidArgument if len(x) is not the feature width.
func (p *Problem) Decode(x []float64) (Entry, error) {
	return decode(p.nKeys, p.NValues(), x)
}

// DecodeRow decodes node i of this problem.
func (p *Problem) DecodeRow(i int) (Entry, error) {
	x, err := p.nodes.Row(i)
	if err != nil {
		return Entry{}, problemErrorf(methodDecode, ErrInvalidArgument, "row %d: %v", i, err)
	}

	return p.Decode(x)
}

// decode is the pure form of Problem.Decode.
func decode(nKeys, nVals int, x []float64) (Entry, error) {
	if len(x) != nKeys+nVals {
		return Entry{}, problemErrorf(methodDecode, ErrInvalidArgument,
			"len(x)=%d, want %d", len(x), nKeys+nVals)
	}
	key := matrix.ArgMax(x[:nKeys])
	vi := matrix.ArgMax(x[nKeys:])
	if x[nKeys+vi] == 0 {
		return KeyOnly(key), nil
	}

	return Pair(key, vi), nil
}

// FromParts rebuilds a Problem from stored matrices, checking the shape
// invariants: nodes is 2n×(nKeys+nVals) with nVals ≥ 1, adj is 2n×2n and
// len(answers) == n ≥ 1. Inputs are copied. Structural content (encoding,
// bipartiteness) is not checked here; see package verify.
func FromParts(nKeys int, nodes, adj *matrix.Dense, answers []int) (*Problem, error) {
	if nodes == nil || adj == nil {
		return nil, problemErrorf(methodFromParts, ErrInvalidArgument, "nil matrix")
	}
	n := len(answers)
	switch {
	case nKeys < 1:
		return nil, problemErrorf(methodFromParts, ErrInvalidArgument, "nKeys=%d", nKeys)
	case n < 1:
		return nil, problemErrorf(methodFromParts, ErrInvalidArgument, "no answers")
	case nodes.Cols() <= nKeys:
		return nil, problemErrorf(methodFromParts, ErrInvalidArgument,
			"nodes width %d leaves no value slots for nKeys=%d", nodes.Cols(), nKeys)
	case nodes.Rows() != 2*n:
		return nil, problemErrorf(methodFromParts, ErrInvalidArgument,
			"nodes has %d rows, want %d", nodes.Rows(), 2*n)
	case adj.Rows() != 2*n || adj.Cols() != 2*n:
		return nil, problemErrorf(methodFromParts, ErrInvalidArgument,
			"adjacency is %dx%d, want %dx%d", adj.Rows(), adj.Cols(), 2*n, 2*n)
	}
	ans := make([]int, n)
	copy(ans, answers)

	return &Problem{nKeys: nKeys, nodes: nodes.CloneDense(), adj: adj.CloneDense(), answers: ans}, nil
}
