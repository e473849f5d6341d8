// SPDX-License-Identifier: MIT
// Package: polyomino/shape
//
// set.go: Set, a collection of shapes deduplicated by canonical Key.
//
// Contract:
//   • Every stored shape is in canonical form.
//   • Insertion order is not observable; Shapes and Keys return a sorted view.
//   • Not safe for concurrent mutation; partition and Merge instead.

package shape

import (
	"fmt"
	"slices"
)

// Set holds at most one shape per canonical Key.
type Set struct {
	shapes map[Key]*Shape
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{shapes: make(map[Key]*Shape)}
}

// Insert canonicalizes cells and stores the result unless a shape with the
// same Key is already present. Reports whether the set grew.
// Returns ErrInvalidShape if cells is empty.
// Complexity: O(k log k).
func (s *Set) Insert(cells []Coord) (bool, error) {
	if len(cells) == 0 {
		return false, fmt.Errorf("Set.Insert: %w", ErrInvalidShape)
	}
	c := canonical(cells)
	k := encode(c)
	if _, ok := s.shapes[k]; ok {
		return false, nil
	}
	s.shapes[k] = &Shape{cells: c}
	return true, nil
}

// Add inserts the canonical form of sh. See Insert.
func (s *Set) Add(sh *Shape) (bool, error) {
	if sh == nil {
		return false, fmt.Errorf("Set.Add(nil): %w", ErrInvalidShape)
	}
	return s.Insert(sh.cells)
}

// Has reports whether a rotation of sh is in the set.
func (s *Set) Has(sh *Shape) bool {
	if sh == nil || len(sh.cells) == 0 {
		return false
	}
	_, ok := s.shapes[sh.Key()]
	return ok
}

// HasKey reports whether k is in the set.
func (s *Set) HasKey(k Key) bool {
	_, ok := s.shapes[k]
	return ok
}

// Len returns the number of distinct shapes.
func (s *Set) Len() int {
	return len(s.shapes)
}

// Merge adds every shape of o to s. Merge is a set union, so the result
// does not depend on the order in which sets are merged.
func (s *Set) Merge(o *Set) {
	for k, sh := range o.shapes {
		if _, ok := s.shapes[k]; !ok {
			s.shapes[k] = sh
		}
	}
}

// Shapes returns copies of the stored canonical shapes ordered by their
// cell sequence.
// Complexity: O(m log m) for m shapes.
func (s *Set) Shapes() []*Shape {
	out := make([]*Shape, 0, len(s.shapes))
	for _, sh := range s.shapes {
		out = append(out, sh.Clone())
	}
	slices.SortFunc(out, func(a, b *Shape) int {
		return compareCells(a.cells, b.cells)
	})
	return out
}

// Keys returns the stored keys in the same order as Shapes.
func (s *Set) Keys() []Key {
	shapes := s.Shapes()
	keys := make([]Key, len(shapes))
	for i, sh := range shapes {
		keys[i] = encode(sh.cells)
	}
	return keys
}
