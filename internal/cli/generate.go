// SPDX-License-Identifier: MIT
// Package: cli
//
// generate.go: the generate command.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dictlookup/config"
	"github.com/katalvlaran/dictlookup/dataset"
)

func newGenerateCmd() *cobra.Command {
	var f problemFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a JSON Lines dataset of problems",
		Long: `Generate problems across independent shards and write them as JSON Lines.

Shard i draws from its own stream seeded with seed+i. When --out names a file,
a TOML manifest is written next to it as <out>.manifest.toml.

Examples:
  dictgen generate --keys 2 --vals 3 --count 3
  dictgen generate -k 8 --vals 12 -n 10000 --shards 4 -o train.jsonl
  dictgen generate --config dictgen.toml --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.apply(cmd, configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}
	f.register(cmd, true)

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	spec := cfg.Spec()
	prog := newProgress(logger)

	logger.Debug("generating", "keys", spec.NKeys, "vals", spec.NVals,
		"seed", spec.Seed, "count", spec.Count, "shards", spec.Shards)

	shards, err := dataset.Generate(ctx, spec, logger)
	if err != nil {
		return err
	}

	out := cfg.Output.Path
	if out == "" || out == "-" {
		w := dataset.NewWriter(cmd.OutOrStdout())
		if err = w.WriteShards(shards); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Generated %d problems", w.Count()))
		return nil
	}

	n, err := writeDataset(out, shards)
	if err != nil {
		return err
	}
	m := dataset.NewManifest(spec, out, n)
	if err = writeFile(dataset.ManifestPath(out), m.Write); err != nil {
		return err
	}

	logger.Info("wrote dataset", "path", out, "manifest", dataset.ManifestPath(out), "run", m.RunID)
	prog.done(fmt.Sprintf("Generated %d problems", n))
	return nil
}

// writeDataset writes shards to path and returns the record count.
func writeDataset(path string, shards []dataset.Shard) (int, error) {
	var n int
	err := writeFile(path, func(w io.Writer) error {
		dw := dataset.NewWriter(w)
		if err := dw.WriteShards(shards); err != nil {
			return err
		}
		n = dw.Count()
		return nil
	})
	return n, err
}

// writeFile creates path, runs fn on it and reports the first of the write
// and close errors.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return fn(f)
}
