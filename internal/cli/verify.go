// SPDX-License-Identifier: MIT
// Package: cli
//
// verify.go: the verify command.

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dictlookup/dataset"
	"github.com/katalvlaran/dictlookup/verify"
)

// ErrVerifyFailed is returned when at least one record or the manifest fails.
var ErrVerifyFailed = errors.New("verification failed")

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.jsonl>",
		Short: "Check every record of a dataset file",
		Long: `Check every record of a dataset file: shapes, complete bipartite
adjacency, one-hot encoding and the key-value assignment. If a manifest is
found next to the file its record count is compared too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0])
		},
	}
}

func runVerify(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var total, failed int
	rd := dataset.NewReader(file)
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		total++

		p, err := rec.Problem()
		if err == nil {
			err = verify.Problem(p)
		}
		if err != nil {
			failed++
			logger.Error("invalid record", "shard", rec.Shard, "index", rec.Index, "err", err)
		}
	}

	if err = checkManifest(cmd, path, total); err != nil {
		logger.Error("manifest mismatch", "err", err)
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d problem(s) in %s", ErrVerifyFailed, failed, path)
	}

	prog.done(fmt.Sprintf("Verified %d problems", total))
	if _, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %s: %d problems\n", path, total); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// checkManifest compares the record count with <path>.manifest.toml when it
// exists.
func checkManifest(cmd *cobra.Command, path string, records int) error {
	logger := loggerFromContext(cmd.Context())
	mpath := dataset.ManifestPath(path)

	f, err := os.Open(mpath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no manifest", "path", mpath)
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := dataset.ReadManifest(f)
	if err != nil {
		return err
	}
	if m.Records != records {
		return fmt.Errorf("manifest %s lists %d records, file has %d", mpath, m.Records, records)
	}
	logger.Debug("manifest matches", "run", m.RunID, "records", m.Records)
	return nil
}
