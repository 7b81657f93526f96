// SPDX-License-Identifier: MIT

// Package dataset turns the problem stream into files: it generates a fixed
// number of problems across independent shards, encodes them as JSON Lines
// and records each run in a TOML manifest.
//
// Shard s draws from its own factory seeded with Seed+s, so shards never share
// a randomness stream and can run on separate goroutines. For a fixed Spec the
// output is identical run to run regardless of scheduling: records are always
// written shard by shard, in pull order.
package dataset
