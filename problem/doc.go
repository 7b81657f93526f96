// SPDX-License-Identifier: MIT

// Package problem generates synthetic dictionary-lookup problems encoded as
// bipartite graphs, and decodes node feature vectors back into (key, value)
// entries.
//
// A Problem of size n holds 2n nodes. The first n are "key" nodes whose
// feature vector is a one-hot key; the last n are "key+value" nodes whose
// vector carries one key bit and one value bit. The adjacency is the complete
// bipartite graph K(n,n) between the two halves, assembled as the block
// anti-diagonal kron(fliplr(I₂), 1ₙₓₙ). Row n+i pairs the i-th sampled key with
// the i-th sampled value, so Answers()[i] is the value bound to that key.
//
// Feature layout (width = nKeys + nVals):
//
//	[ k₀ … k_{nKeys-1} | v₀ … v_{nVals-1} ]
//	  one-hot key         one-hot value, or all zero for key-only nodes
//
// Randomness is injected: a Factory owns exactly one Source and advances it on
// every Generate. Identical (nKeys, nVals, seed) therefore yield identical
// problem streams. A Factory is not safe for concurrent use; give each
// goroutine its own, separately seeded factory.
//
// Typical use:
//
//	seq, err := problem.Generate(2, 3, 0)
//	if err != nil { ... }
//	probs, err := seq.Take(3)
//	for _, p := range probs {
//	    e, _ := p.DecodeRow(p.Size()) // first key+value node
//	    fmt.Println(e)               // e.g. "(1, 2)"
//	}
package problem
