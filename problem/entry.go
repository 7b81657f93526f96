// SPDX-License-Identifier: MIT
// Package: problem
//
// entry.go: the (key, optional value) pair carried by a node feature vector.

package problem

import "fmt"

// Entry is a key with an optional bound value. Key nodes carry HasValue=false;
// key+value nodes carry HasValue=true and Value in [0, nVals).
// Value is meaningless (and zero) when HasValue is false.
type Entry struct {
	Key      int
	Value    int
	HasValue bool
}

// KeyOnly returns the entry of a key node.
func KeyOnly(key int) Entry {
	return Entry{Key: key}
}

// Pair returns the entry of a key+value node.
func Pair(key, val int) Entry {
	return Entry{Key: key, Value: val, HasValue: true}
}

// Val returns the bound value and whether one is present.
func (e Entry) Val() (int, bool) {
	return e.Value, e.HasValue
}

// String renders "(k, v)" or "(k, -)" for a key-only entry.
func (e Entry) String() string {
	if !e.HasValue {
		return fmt.Sprintf("(%d, -)", e.Key)
	}

	return fmt.Sprintf("(%d, %d)", e.Key, e.Value)
}
