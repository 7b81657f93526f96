// SPDX-License-Identifier: MIT
// Package: bipartite
//
// bipartite.go: BFS two-colouring and complete-bipartite checks.

package bipartite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dictlookup/matrix"
)

// ErrNotBipartite is returned when an odd cycle makes two-colouring impossible.
var ErrNotBipartite = errors.New("bipartite: graph is not bipartite")

// ErrNotComplete is returned when a split misses a cross edge or carries an
// edge inside one side.
var ErrNotComplete = errors.New("bipartite: split is not complete bipartite")

// ErrBadSplit is returned when a split does not cover every vertex exactly once.
var ErrBadSplit = errors.New("bipartite: split must cover each vertex exactly once")

// Side labels a vertex's colour.
type Side int8

const (
	unvisited Side = iota - 1
	Left
	Right
)

// other flips the side.
func (s Side) other() Side { return 1 - s }

// Partition lists the vertices of each side in ascending order.
type Partition struct {
	Left  []int
	Right []int
}

// walker holds the mutable BFS state for Color.
type walker struct {
	adj   matrix.Matrix
	n     int
	side  []Side
	queue []int
}

// Color two-colours the undirected graph adj.
//
// adj must be square, symmetric and loop-free; any nonzero entry is an edge.
// Errors: matrix sentinels for structural violations, ErrNotBipartite on an
// odd cycle.
func Color(adj matrix.Matrix) (Partition, error) {
	if err := validateUndirected(adj); err != nil {
		return Partition{}, err
	}
	n := adj.Rows()
	w := &walker{
		adj:   adj,
		n:     n,
		side:  make([]Side, n),
		queue: make([]int, 0, n),
	}
	for i := range w.side {
		w.side[i] = unvisited
	}
	for root := 0; root < n; root++ {
		if w.side[root] != unvisited {
			continue
		}
		if err := w.bfs(root); err != nil {
			return Partition{}, err
		}
	}

	var p Partition
	for v, s := range w.side {
		if s == Left {
			p.Left = append(p.Left, v)
		} else {
			p.Right = append(p.Right, v)
		}
	}

	return p, nil
}

// bfs colours the component of root, starting with Left.
func (w *walker) bfs(root int) error {
	w.side[root] = Left
	w.queue = append(w.queue[:0], root)
	var u int
	for len(w.queue) > 0 {
		u, w.queue = w.queue[0], w.queue[1:]
		for v := 0; v < w.n; v++ {
			x, _ := w.adj.At(u, v) // in range: square n×n
			if x == 0 {
				continue
			}
			switch w.side[v] {
			case unvisited:
				w.side[v] = w.side[u].other()
				w.queue = append(w.queue, v)
			case w.side[u]:
				return fmt.Errorf("edge (%d,%d) joins one side: %w", u, v, ErrNotBipartite)
			}
		}
	}

	return nil
}

// IsCompleteBipartite checks that left and right partition the vertices of adj
// and that adj holds exactly the cross edges between them.
//
// Errors: matrix sentinels for structural violations, ErrBadSplit,
// ErrNotComplete.
func IsCompleteBipartite(adj matrix.Matrix, left, right []int) error {
	if err := validateUndirected(adj); err != nil {
		return err
	}
	n := adj.Rows()
	side := make([]Side, n)
	for i := range side {
		side[i] = unvisited
	}
	if err := assign(side, left, Left); err != nil {
		return err
	}
	if err := assign(side, right, Right); err != nil {
		return err
	}
	if len(left)+len(right) != n {
		return fmt.Errorf("%d+%d vertices for %d: %w", len(left), len(right), n, ErrBadSplit)
	}

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			x, _ = adj.At(i, j)
			cross := side[i] != side[j]
			if cross && x == 0 {
				return fmt.Errorf("missing cross edge (%d,%d): %w", i, j, ErrNotComplete)
			}
			if !cross && x != 0 {
				return fmt.Errorf("edge (%d,%d) inside one side: %w", i, j, ErrNotComplete)
			}
		}
	}

	return nil
}

// IsComplete reports whether p is a complete bipartite split of adj.
func IsComplete(adj matrix.Matrix, p Partition) bool {
	return IsCompleteBipartite(adj, p.Left, p.Right) == nil
}

// assign marks vs with s, rejecting out-of-range or repeated vertices.
func assign(side []Side, vs []int, s Side) error {
	for _, v := range vs {
		if v < 0 || v >= len(side) {
			return fmt.Errorf("vertex %d outside [0,%d): %w", v, len(side), ErrBadSplit)
		}
		if side[v] != unvisited {
			return fmt.Errorf("vertex %d listed twice: %w", v, ErrBadSplit)
		}
		side[v] = s
	}

	return nil
}

// validateUndirected applies the shared matrix validators.
func validateUndirected(adj matrix.Matrix) error {
	if err := matrix.ValidateSymmetric(adj, 0); err != nil {
		return fmt.Errorf("bipartite: %w", err)
	}
	if err := matrix.ValidateZeroDiagonal(adj); err != nil {
		return fmt.Errorf("bipartite: %w", err)
	}

	return nil
}
