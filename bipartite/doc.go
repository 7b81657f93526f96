// SPDX-License-Identifier: MIT

// Package bipartite checks the two-colourability of an undirected graph given
// as a dense adjacency matrix, and whether a given split forms a complete
// bipartite graph.
//
// Colouring is a breadth-first search over every component in ascending vertex
// order. Each component root gets side Left, so the resulting Partition is
// deterministic for a given matrix. Isolated vertices land on the Left side.
//
// Complexity (V = vertices): O(V²) time for the dense scan, O(V) extra space.
package bipartite
