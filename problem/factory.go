// SPDX-License-Identifier: MIT
// Package: problem
//
// factory.go: Factory: encoding and one-problem-per-call generation.
//
// Contract:
//   • 1 ≤ nKeys ≤ nVals (else ErrInvalidArgument at construction).
//   • Generate advances the Source exactly as: one Intn draw for n, one
//     Shuffle over n keys, one Shuffle over nVals values. The order is part of
//     the reproducibility contract.
//   • Every Problem owns freshly allocated matrices.
//
// Complexity:
//   • Generate: O(n·(nKeys+nVals)) for the node rows + O(n²) for the adjacency.

package problem

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/dictlookup/matrix"
)

// Factory generates dictionary-lookup problems over a fixed encoding space
// of nKeys key slots and nVals value slots. Not safe for concurrent use.
type Factory struct {
	nKeys  int
	nVals  int
	rng    Source
	logger *log.Logger
}

// NewFactory binds the encoding dimensions and the randomness stream.
// The factory takes exclusive ownership of rng; sharing one Source between
// factories couples their streams.
//
// Errors: ErrInvalidArgument if nKeys < 1, nVals < 1, nVals < nKeys or rng is nil.
func NewFactory(nKeys, nVals int, rng Source, opts ...Option) (*Factory, error) {
	if nKeys < 1 || nVals < 1 {
		return nil, problemErrorf(methodNewFactory, ErrInvalidArgument,
			"nKeys=%d, nVals=%d (each must be ≥ 1)", nKeys, nVals)
	}
	// Every instance may draw up to nKeys distinct values.
	if nVals < nKeys {
		return nil, problemErrorf(methodNewFactory, ErrInvalidArgument,
			"nVals=%d < nKeys=%d", nVals, nKeys)
	}
	if rng == nil {
		return nil, problemErrorf(methodNewFactory, ErrInvalidArgument, "nil source")
	}
	cfg := newFactoryConfig(opts...)

	return &Factory{nKeys: nKeys, nVals: nVals, rng: rng, logger: cfg.logger}, nil
}

// NKeys returns the number of key slots.
func (f *Factory) NKeys() int { return f.nKeys }

// NValues returns the number of value slots.
func (f *Factory) NValues() int { return f.nVals }

// Width returns the feature-vector length nKeys + nVals.
func (f *Factory) Width() int { return f.nKeys + f.nVals }

// Encode returns the feature vector of e: a zero vector of length Width()
// with [e.Key] set to 1 and, when e.HasValue, [nKeys+e.Value] set to 1.
//
// Errors: ErrInvalidArgument if the key or value is outside its range.
func (f *Factory) Encode(e Entry) ([]float64, error) {
	return encode(f.nKeys, f.nVals, e)
}

// EncodeKey is Encode(KeyOnly(key)).
func (f *Factory) EncodeKey(key int) ([]float64, error) {
	return f.Encode(KeyOnly(key))
}

// EncodePair is Encode(Pair(key, val)).
func (f *Factory) EncodePair(key, val int) ([]float64, error) {
	return f.Encode(Pair(key, val))
}

// encode is the pure form of Factory.Encode.
func encode(nKeys, nVals int, e Entry) ([]float64, error) {
	if e.Key < 0 || e.Key >= nKeys {
		return nil, problemErrorf(methodEncode, ErrInvalidArgument,
			"key=%d outside [0,%d)", e.Key, nKeys)
	}
	if e.HasValue && (e.Value < 0 || e.Value >= nVals) {
		return nil, problemErrorf(methodEncode, ErrInvalidArgument,
			"val=%d outside [0,%d)", e.Value, nVals)
	}
	x := make([]float64, nKeys+nVals)
	x[e.Key] = 1
	if e.HasValue {
		x[nKeys+e.Value] = 1
	}

	return x, nil
}

// Generate draws one problem:
//  1. n uniform in [1, nKeys];
//  2. keys = shuffle([0..n-1]), then vals = shuffle([0..nVals-1]);
//  3. adjacency = K(n,n) with the key nodes as the first half;
//  4. rows 0..n-1 encode keys[i] alone, rows n..2n-1 encode (keys[i], vals[i]);
//  5. answers = vals[:n].
//
// On error no Problem is returned.
func (f *Factory) Generate() (*Problem, error) {
	n, err := intRange(f.rng, 1, f.nKeys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	vals := make([]int, f.nVals)
	for i := range vals {
		vals[i] = i
	}
	shuffleInts(f.rng, keys)
	shuffleInts(f.rng, vals)

	adj, err := CompleteBipartite(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	keyRows, err := matrix.NewDense(n, f.Width())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	pairRows, err := matrix.NewDense(n, f.Width())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	for i := 0; i < n; i++ {
		if err = f.setRow(keyRows, i, KeyOnly(keys[i])); err != nil {
			return nil, err
		}
		if err = f.setRow(pairRows, i, Pair(keys[i], vals[i])); err != nil {
			return nil, err
		}
	}
	nodes, err := matrix.VStack(keyRows, pairRows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	answers := make([]int, n)
	copy(answers, vals[:n])

	f.logger.Debug("generated problem", "n", n, "keys", keys, "answers", answers)

	return &Problem{nKeys: f.nKeys, nodes: nodes, adj: adj, answers: answers}, nil
}

// setRow encodes e into row i of nodes.
func (f *Factory) setRow(nodes *matrix.Dense, i int, e Entry) error {
	x, err := f.Encode(e)
	if err != nil {
		return fmt.Errorf("%s: row %d: %w", methodGenerate, i, err)
	}
	if err = nodes.SetRow(i, x); err != nil {
		return fmt.Errorf("%s: row %d: %w", methodGenerate, i, err)
	}

	return nil
}

// CompleteBipartite returns the 2n×2n adjacency of K(n,n) with nodes 0..n-1 on
// one side and n..2n-1 on the other: kron(fliplr(I₂), ones(n,n)).
//
// Errors: matrix.ErrInvalidDimensions for n < 1.
func CompleteBipartite(n int) (*matrix.Dense, error) {
	I, err := matrix.NewIdentity(2)
	if err != nil {
		return nil, err
	}
	anti, err := matrix.FlipLR(I)
	if err != nil {
		return nil, err
	}
	block, err := matrix.NewOnes(n, n)
	if err != nil {
		return nil, err
	}

	return matrix.Kronecker(anti, block)
}
