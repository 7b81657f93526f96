// SPDX-License-Identifier: MIT

// Package config loads dictgen settings from a TOML file.
//
// A file only needs the keys it changes; everything else keeps the defaults
// from Default. Unknown keys are rejected so typos do not silently fall back
// to defaults.
//
//	[problem]
//	n_keys = 4
//	n_vals = 6
//	seed   = 1
//
//	[output]
//	count  = 1000
//	shards = 4
//	path   = "train.jsonl"
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/dictlookup/dataset"
)

// ErrInvalidConfig is returned for undecodable, unknown or out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full dictgen configuration.
type Config struct {
	Problem Problem `toml:"problem"`
	Output  Output  `toml:"output"`
	Log     Log     `toml:"log"`
}

// Problem holds the encoding-space dimensions and the stream seed.
type Problem struct {
	NKeys int   `toml:"n_keys" validate:"gte=1"`
	NVals int   `toml:"n_vals" validate:"gte=1,gtefield=NKeys"`
	Seed  int64 `toml:"seed"`
}

// Output controls how many problems are written and where.
type Output struct {
	Count  int    `toml:"count" validate:"gte=0"`
	Shards int    `toml:"shards" validate:"gte=1"`
	Path   string `toml:"path"`
}

// Log selects the log level.
type Log struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Default values match the reference scenario: 2 keys, 3 values, seed 0.
const (
	DefaultNKeys  = 2
	DefaultNVals  = 3
	DefaultCount  = 3
	DefaultShards = 1
	DefaultLevel  = "info"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Problem: Problem{NKeys: DefaultNKeys, NVals: DefaultNVals},
		Output:  Output{Count: DefaultCount, Shards: DefaultShards},
		Log:     Log{Level: DefaultLevel},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field range, including n_vals ≥ n_keys.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Spec converts the configuration into a dataset generation spec.
func (c Config) Spec() dataset.Spec {
	return dataset.Spec{
		NKeys:  c.Problem.NKeys,
		NVals:  c.Problem.NVals,
		Seed:   c.Problem.Seed,
		Count:  c.Output.Count,
		Shards: c.Output.Shards,
	}
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}
