// SPDX-License-Identifier: MIT

// Package bijection provides a two-way injective map between ints, used to
// cross-check that decoded (key, value) pairs form a one-to-one assignment.
//
// Put rejects any pair that would map one key to two values or one value to
// two keys; re-putting an identical pair is a no-op.
package bijection

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrDuplicateKey is returned when a key is already bound to another value.
var ErrDuplicateKey = errors.New("bijection: key already bound")

// ErrDuplicateValue is returned when a value is already bound to another key.
var ErrDuplicateValue = errors.New("bijection: value already bound")

// Map is a one-to-one mapping. The zero value is not usable; call New.
// Not safe for concurrent use.
type Map struct {
	forward  map[int]int
	backward map[int]int
}

// New returns an empty Map with room for size pairs.
func New(size int) *Map {
	return &Map{
		forward:  make(map[int]int, size),
		backward: make(map[int]int, size),
	}
}

// Put binds k to v.
func (m *Map) Put(k, v int) error {
	if old, ok := m.forward[k]; ok {
		if old == v {
			return nil
		}
		return fmt.Errorf("key %d→%d, got %d: %w", k, old, v, ErrDuplicateKey)
	}
	if old, ok := m.backward[v]; ok {
		return fmt.Errorf("value %d←%d, got key %d: %w", v, old, k, ErrDuplicateValue)
	}
	m.forward[k] = v
	m.backward[v] = k

	return nil
}

// Value returns the value bound to k.
func (m *Map) Value(k int) (int, bool) {
	v, ok := m.forward[k]
	return v, ok
}

// Key returns the key bound to v.
func (m *Map) Key(v int) (int, bool) {
	k, ok := m.backward[v]
	return k, ok
}

// Len returns the number of pairs.
func (m *Map) Len() int { return len(m.forward) }

// Keys returns the key set.
func (m *Map) Keys() mapset.Set[int] {
	s := mapset.NewThreadUnsafeSetWithSize[int](len(m.forward))
	for k := range m.forward {
		s.Add(k)
	}
	return s
}

// Values returns the value set.
func (m *Map) Values() mapset.Set[int] {
	s := mapset.NewThreadUnsafeSetWithSize[int](len(m.backward))
	for v := range m.backward {
		s.Add(v)
	}
	return s
}
