// SPDX-License-Identifier: MIT
// Package: dataset
//
// manifest.go: the TOML run manifest written next to a dataset.

package dataset

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Manifest records how a dataset file was produced.
type Manifest struct {
	RunID   string    `toml:"run_id"`
	Created time.Time `toml:"created"`
	Output  string    `toml:"output"`
	Records int       `toml:"records"`
	Spec    Spec      `toml:"spec"`
}

// NewManifest stamps a fresh run id and the current UTC time.
func NewManifest(spec Spec, output string, records int) Manifest {
	return Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC().Truncate(time.Second),
		Output:  output,
		Records: records,
		Spec:    spec,
	}
}

// ManifestPath returns the manifest location for a dataset at out.
func ManifestPath(out string) string {
	return out + ".manifest.toml"
}

// Write encodes m as TOML.
func (m Manifest) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// ReadManifest decodes a manifest and checks its run id and spec.
func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return Manifest{}, fmt.Errorf("manifest run_id %q: %w", m.RunID, err)
	}
	if err := m.Spec.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
