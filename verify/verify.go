// SPDX-License-Identifier: MIT

// Package verify cross-checks a generated problem against its structural
// contract: matrix shapes, the complete bipartite adjacency between key nodes
// and key+value nodes, the feature encoding of every row, and the one-to-one
// key→value assignment recovered by decoding.
//
// Problem returns every violation it finds, joined, each wrapping
// ErrInvariant, so callers can report them all at once or branch with
// errors.Is.
package verify

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/dictlookup/bijection"
	"github.com/katalvlaran/dictlookup/bipartite"
	"github.com/katalvlaran/dictlookup/matrix"
	"github.com/katalvlaran/dictlookup/problem"
)

// ErrInvariant marks a broken problem invariant.
var ErrInvariant = errors.New("verify: invariant violated")

// checker accumulates violations for one problem.
type checker struct {
	errs []error
}

func (c *checker) failf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariant))
}

// Problem verifies p and returns nil or the joined violations.
func Problem(p *problem.Problem) error {
	if p == nil {
		return fmt.Errorf("nil problem: %w", ErrInvariant)
	}
	c := &checker{}
	n := p.Size()
	nodes, adj := p.Nodes(), p.Adjacency()

	if n < 1 {
		c.failf("size %d < 1", n)
		return errors.Join(c.errs...)
	}
	if nodes.Rows() != 2*n || adj.Rows() != 2*n || adj.Cols() != 2*n {
		c.failf("shapes: nodes %dx%d, adj %dx%d, answers %d",
			nodes.Rows(), nodes.Cols(), adj.Rows(), adj.Cols(), n)
		// Row-level checks below would index out of range.
		return errors.Join(c.errs...)
	}
	if n > p.NKeys() {
		c.failf("size %d exceeds key slots %d", n, p.NKeys())
	}

	c.adjacency(adj, n)
	c.encoding(nodes, p.NKeys())
	c.assignment(p, n)

	return errors.Join(c.errs...)
}

// adjacency checks K(n,n) on the fixed split and that colouring agrees.
func (c *checker) adjacency(adj *matrix.Dense, n int) {
	if err := matrix.ValidateBinary(adj); err != nil {
		c.failf("adjacency: %v", err)
	}
	left, right := make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		left[i], right[i] = i, n+i
	}
	if err := bipartite.IsCompleteBipartite(adj, left, right); err != nil {
		c.failf("adjacency: %v", err)
		return
	}
	part, err := bipartite.Color(adj)
	if err != nil {
		c.failf("colouring: %v", err)
		return
	}
	if !bipartite.IsComplete(adj, part) {
		c.failf("colouring does not yield a complete split")
	}
}

// encoding checks one key bit per row, no value bit on key rows and exactly
// one value bit on key+value rows.
func (c *checker) encoding(nodes *matrix.Dense, nKeys int) {
	if err := matrix.ValidateBinary(nodes); err != nil {
		c.failf("nodes: %v", err)
		return
	}
	n := nodes.Rows() / 2
	for i := 0; i < nodes.Rows(); i++ {
		x, _ := nodes.Row(i) // in range
		keyBits, valBits := count(x[:nKeys]), count(x[nKeys:])
		wantVal := 0
		if i >= n {
			wantVal = 1
		}
		if keyBits != 1 || valBits != wantVal {
			c.failf("row %d: %d key bits, %d value bits (want 1, %d)", i, keyBits, valBits, wantVal)
		}
	}
}

// assignment decodes every row and checks the bijection against the answers.
func (c *checker) assignment(p *problem.Problem, n int) {
	answers := p.Answers()
	keys := mapset.NewThreadUnsafeSetWithSize[int](n)
	for i := 0; i < n; i++ {
		e, err := p.DecodeRow(i)
		if err != nil {
			c.failf("decode row %d: %v", i, err)
			continue
		}
		if e.HasValue {
			c.failf("key row %d decoded value %d", i, e.Value)
		}
		keys.Add(e.Key)
	}
	if keys.Cardinality() != n {
		c.failf("%d distinct keys among %d key rows", keys.Cardinality(), n)
	}

	f := bijection.New(n)
	for i := 0; i < n; i++ {
		e, err := p.DecodeRow(n + i)
		if err != nil {
			c.failf("decode row %d: %v", n+i, err)
			continue
		}
		v, ok := e.Val()
		if !ok {
			c.failf("pair row %d decoded no value", n+i)
			continue
		}
		if v != answers[i] {
			c.failf("pair row %d decoded value %d, answer %d", n+i, v, answers[i])
		}
		if v < 0 || v >= p.NValues() {
			c.failf("pair row %d value %d outside [0,%d)", n+i, v, p.NValues())
		}
		if err = f.Put(e.Key, v); err != nil {
			c.failf("pair row %d: %v", n+i, err)
		}
	}
	if !keys.Equal(f.Keys()) {
		c.failf("key rows %v and pair rows %v bind different keys", keys, f.Keys())
	}
}

// count returns the number of nonzero entries.
func count(xs []float64) int {
	k := 0
	for _, x := range xs {
		if x != 0 {
			k++
		}
	}
	return k
}
