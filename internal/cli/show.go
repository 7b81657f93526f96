// SPDX-License-Identifier: MIT
// Package: cli
//
// show.go: the show command.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dictlookup/dataset"
	"github.com/katalvlaran/dictlookup/matrix"
	"github.com/katalvlaran/dictlookup/problem"
)

func newShowCmd() *cobra.Command {
	var f problemFlags

	cmd := &cobra.Command{
		Use:   "show [file.jsonl]",
		Short: "Print problems with their matrices and decoded rows",
		Long: `Print problems in a human-readable form.

Without an argument the problems are generated from the configuration and
flags. With a dataset file the first --count records of it are shown.

Examples:
  dictgen show --keys 2 --vals 3 --seed 0
  dictgen show -n 1 train.jsonl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.apply(cmd, configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return showFile(cmd.OutOrStdout(), args[0], cfg.Output.Count)
			}

			logger := loggerFromContext(cmd.Context())
			seq, err := problem.Generate(cfg.Problem.NKeys, cfg.Problem.NVals, cfg.Problem.Seed,
				problem.WithLogger(logger))
			if err != nil {
				return err
			}
			probs, err := seq.Take(cfg.Output.Count)
			if err != nil {
				return err
			}
			for i, p := range probs {
				if err = printProblem(cmd.OutOrStdout(), fmt.Sprintf("problem %d", i), p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f.register(cmd, false)

	return cmd
}

func showFile(w io.Writer, path string, limit int) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	rd := dataset.NewReader(file)
	for i := 0; i < limit; i++ {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		p, err := rec.Problem()
		if err != nil {
			return err
		}
		if err = printProblem(w, fmt.Sprintf("shard %d problem %d", rec.Shard, rec.Index), p); err != nil {
			return err
		}
	}
	return nil
}

// printProblem writes the matrices through gonum's formatter followed by
// every decoded node.
func printProblem(w io.Writer, title string, p *problem.Problem) error {
	n := p.Size()
	var err error
	pf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	pf("%s: n=%d keys=%d vals=%d answers=%v\n", title, n, p.NKeys(), p.NValues(), p.Answers())
	pf("nodes:\n  %v\n", mat.Formatted(matrix.ToGonum(p.Nodes()), mat.Prefix("  "), mat.Squeeze()))
	pf("adjacency:\n  %v\n", mat.Formatted(matrix.ToGonum(p.Adjacency()), mat.Prefix("  "), mat.Squeeze()))
	pf("decoded:\n")
	for i := 0; i < 2*n; i++ {
		e, derr := p.DecodeRow(i)
		if derr != nil {
			return derr
		}
		pf("  %2d %s\n", i, e)
	}
	pf("\n")

	return err
}
