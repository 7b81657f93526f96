// SPDX-License-Identifier: MIT

// Package dictlookup generates synthetic dictionary-lookup problems for
// graph learners: every instance is a complete bipartite graph whose left
// nodes name a key and whose right nodes bind that key to a value.
//
// 🚀 What is in the module?
//
//	A deterministic, seed-driven generator plus the tooling around it:
//		• Problem factory: one-hot encoding, K(n,n) adjacency, decoding
//		• Lazy problem streams: pull-based, reproducible per seed
//		• Structural checks: bipartite two-colouring, key→value bijection
//		• Datasets: sharded concurrent generation, JSON Lines, TOML manifests
//
// Packages:
//
//	matrix/       dense row-major matrices, Kronecker products, gonum bridge
//	problem/      Factory, Entry, Problem, Sequence
//	bipartite/    two-colouring and complete-bipartite checks
//	bijection/    one-to-one key/value maps
//	verify/       full structural verification of a Problem
//	dataset/      sharded generation, JSONL codec, manifests
//	config/       TOML configuration with validation
//	cmd/dictgen   the command-line front end
//
// Layout of one instance over n sampled keys (n=2 shown):
//
//	k0 ───┬─── (k0,v0)
//	      ╳
//	k1 ───┴─── (k1,v1)
//
// every key node is wired to every pair node, and nodes on the same side
// are never adjacent.
//
//	go get github.com/katalvlaran/dictlookup/problem
package dictlookup
