// SPDX-License-Identifier: MIT
// Package: dataset
//
// generate.go: concurrent shard generation.

package dataset

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dictlookup/problem"
)

// maxPrealloc bounds the slice capacity reserved per shard; bigger shards
// grow by append.
const maxPrealloc = 1024

// Shard is the output of one independent factory.
type Shard struct {
	Index    int
	Seed     int64
	Problems []*problem.Problem
}

// Generate runs every shard of spec concurrently and returns them in shard
// order. The first failing shard cancels the rest. A nil logger discards.
func Generate(ctx context.Context, spec Spec, logger *log.Logger) ([]Shard, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sizes := spec.shardSizes()
	shards := make([]Shard, len(sizes))

	g, gCtx := errgroup.WithContext(ctx)
	for i, size := range sizes {
		g.Go(func() error {
			probs, err := generateShard(gCtx, spec, i, size, logger)
			if err != nil {
				return err
			}
			// Each goroutine owns exactly one slot.
			shards[i] = Shard{Index: i, Seed: spec.shardSeed(i), Problems: probs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return shards, nil
}

// generateShard pulls size problems from a sequence seeded for shard i.
func generateShard(ctx context.Context, spec Spec, i, size int, logger *log.Logger) ([]*problem.Problem, error) {
	shardLog := logger.With("shard", i, "seed", spec.shardSeed(i))
	seq, err := problem.Generate(spec.NKeys, spec.NVals, spec.shardSeed(i), problem.WithLogger(shardLog))
	if err != nil {
		return nil, err
	}

	out := make([]*problem.Problem, 0, min(size, maxPrealloc))
	for len(out) < size {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		p, err := seq.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	shardLog.Debug("shard done", "problems", len(out))

	return out, nil
}
