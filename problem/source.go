// SPDX-License-Identifier: MIT
// Package: problem
//
// source.go: the injected randomness capability.

package problem

import (
	"fmt"
	"math/rand"
)

// Source is the randomness stream a Factory draws from. *rand.Rand satisfies
// it. Implementations must be deterministic for a given seed if callers rely
// on reproducible problem streams.
type Source interface {
	// Intn returns a uniform integer in [0, n). n > 0.
	Intn(n int) int
	// Shuffle permutes n elements in place through swap.
	Shuffle(n int, swap func(i, j int))
}

var _ Source = (*rand.Rand)(nil)

// NewSource returns a seeded math/rand stream.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// intRange draws uniformly from the inclusive range [lo, hi]; lo ≤ hi.
// A draw outside [0, hi-lo] from a misbehaving Source yields ErrBadDraw.
func intRange(src Source, lo, hi int) (int, error) {
	span := hi - lo + 1
	d := src.Intn(span)
	if d < 0 || d >= span {
		return 0, fmt.Errorf("Intn(%d) returned %d: %w", span, d, ErrBadDraw)
	}
	return lo + d, nil
}

// shuffleInts permutes xs in place using src.
func shuffleInts(src Source, xs []int) {
	src.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}
