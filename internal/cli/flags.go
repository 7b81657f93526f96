// SPDX-License-Identifier: MIT
// Package: cli
//
// flags.go: generation flags shared by generate and show.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dictlookup/config"
)

// problemFlags are the generation settings shared by generate and show.
// A flag overrides the configuration only when set explicitly.
type problemFlags struct {
	keys   int
	vals   int
	seed   int64
	count  int
	shards int
	out    string
}

func (f *problemFlags) register(cmd *cobra.Command, withOutput bool) {
	fs := cmd.Flags()
	fs.IntVarP(&f.keys, "keys", "k", config.DefaultNKeys, "number of key slots")
	fs.IntVar(&f.vals, "vals", config.DefaultNVals, "number of value slots (>= keys)")
	fs.Int64Var(&f.seed, "seed", 0, "stream seed")
	fs.IntVarP(&f.count, "count", "n", config.DefaultCount, "number of problems")
	if withOutput {
		fs.IntVar(&f.shards, "shards", config.DefaultShards, "independent generator shards")
		fs.StringVarP(&f.out, "out", "o", "", "output file (stdout if empty or -)")
	}
}

// apply overlays explicitly set flags on cfg and validates the result.
func (f *problemFlags) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	fs := cmd.Flags()
	if fs.Changed("keys") {
		cfg.Problem.NKeys = f.keys
	}
	if fs.Changed("vals") {
		cfg.Problem.NVals = f.vals
	}
	if fs.Changed("seed") {
		cfg.Problem.Seed = f.seed
	}
	if fs.Changed("count") {
		cfg.Output.Count = f.count
	}
	if fs.Changed("shards") {
		cfg.Output.Shards = f.shards
	}
	if fs.Changed("out") {
		cfg.Output.Path = f.out
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
