// SPDX-License-Identifier: MIT
// Package: dataset
//
// spec.go: the generation spec and its shard layout.

package dataset

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidSpec is returned when a Spec fails validation.
var ErrInvalidSpec = errors.New("dataset: invalid spec")

// Spec describes one generation run.
type Spec struct {
	NKeys  int   `toml:"n_keys" validate:"gte=1"`
	NVals  int   `toml:"n_vals" validate:"gte=1,gtefield=NKeys"`
	Seed   int64 `toml:"seed"`
	Count  int   `toml:"count" validate:"gte=0"`
	Shards int   `toml:"shards" validate:"gte=1"`
}

var specValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and that NVals ≥ NKeys.
func (s Spec) Validate() error {
	if err := specValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return nil
}

// shardSizes splits Count over Shards as evenly as possible, earlier shards
// taking the remainder.
func (s Spec) shardSizes() []int {
	sizes := make([]int, s.Shards)
	base, rem := s.Count/s.Shards, s.Count%s.Shards
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// shardSeed is the seed of shard i.
func (s Spec) shardSeed(i int) int64 {
	return s.Seed + int64(i)
}
