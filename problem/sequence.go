// SPDX-License-Identifier: MIT
// Package: problem
//
// sequence.go: the unbounded, pull-based problem stream.
//
// A Sequence never ends on its own; callers decide how many problems to pull.
// It cannot be rewound: to replay a stream, build a new Sequence with the same
// arguments.

package problem

import "iter"

// maxPrealloc bounds the capacity Take reserves up front; larger batches grow
// by append.
const maxPrealloc = 1024

// Sequence lazily yields problems from a single Factory created at start.
type Sequence struct {
	factory *Factory
	pulled  int
}

// Generate starts a new stream over (nKeys, nVals) seeded with seed.
// Two sequences built with equal arguments yield identical problems.
func Generate(nKeys, nVals int, seed int64, opts ...Option) (*Sequence, error) {
	f, err := NewFactory(nKeys, nVals, NewSource(seed), opts...)
	if err != nil {
		return nil, err
	}

	return NewSequence(f), nil
}

// NewSequence wraps an existing factory. The sequence advances f's Source.
func NewSequence(f *Factory) *Sequence {
	return &Sequence{factory: f}
}

// Factory returns the factory backing the sequence.
func (s *Sequence) Factory() *Factory { return s.factory }

// Pulled reports how many problems have been produced so far.
func (s *Sequence) Pulled() int { return s.pulled }

// Next produces the next problem.
func (s *Sequence) Next() (*Problem, error) {
	p, err := s.factory.Generate()
	if err != nil {
		return nil, err
	}
	s.pulled++

	return p, nil
}

// Take pulls the next k problems. Take(0) returns an empty slice.
//
// Errors: ErrInvalidArgument for k < 0; otherwise the first Next error.
func (s *Sequence) Take(k int) ([]*Problem, error) {
	if k < 0 {
		return nil, problemErrorf(methodTake, ErrInvalidArgument, "k=%d", k)
	}
	out := make([]*Problem, 0, min(k, maxPrealloc))
	for i := 0; i < k; i++ {
		p, err := s.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// All ranges over the unbounded stream, pairing each problem with its
// generation error. Iteration stops when the loop body breaks or after the
// first error is yielded.
//
//	for p, err := range seq.All() {
//	    if err != nil || done(p) { break }
//	}
func (s *Sequence) All() iter.Seq2[*Problem, error] {
	return func(yield func(*Problem, error) bool) {
		for {
			p, err := s.Next()
			if !yield(p, err) || err != nil {
				return
			}
		}
	}
}
