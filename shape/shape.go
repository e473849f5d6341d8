// SPDX-License-Identifier: MIT
// Package: polyomino/shape
//
// shape.go: Shape construction and methods.

package shape

import (
	"fmt"
	"slices"
)

// New builds a Shape from cells. Duplicate cells collapse to one; the
// first-seen order of the remaining cells is kept.
// Returns ErrInvalidShape if no cells are given.
// Complexity: O(k).
func New(cells ...Coord) (*Shape, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("New: %w", ErrInvalidShape)
	}
	seen := make(map[Coord]struct{}, len(cells))
	own := make([]Coord, 0, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		own = append(own, c)
	}
	return &Shape{cells: own}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and package-level tables.
func MustNew(cells ...Coord) *Shape {
	s, err := New(cells...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of cells.
func (s *Shape) Len() int {
	return len(s.cells)
}

// Coordinates returns a copy of the cells in stored order.
func (s *Shape) Coordinates() []Coord {
	return slices.Clone(s.cells)
}

// Rotate turns the shape 90° clockwise in place, (x, y) → (y, −x).
// The rotation is signed and not re-anchored: four calls restore the
// original coordinates exactly. Use Normalize for the anchored form.
func (s *Shape) Rotate() {
	for i, c := range s.cells {
		s.cells[i] = rotate(c)
	}
}

// Normalize anchors the shape in place so min X and min Y are zero.
// Cells end up sorted by (X, Y).
func (s *Shape) Normalize() {
	if len(s.cells) == 0 {
		return
	}
	s.cells = normalize(s.cells)
}

// Canonical returns a new Shape holding the canonical form of s.
// Returns ErrInvalidShape for a zero-value Shape.
func (s *Shape) Canonical() (*Shape, error) {
	cells, err := Canonical(s.cells)
	if err != nil {
		return nil, err
	}
	return &Shape{cells: cells}, nil
}

// Key returns the canonical identity of s, or "" for a zero-value Shape.
func (s *Shape) Key() Key {
	if len(s.cells) == 0 {
		return ""
	}
	return encode(canonical(s.cells))
}

// Equal reports whether s and o are the same polyomino up to rotation.
func (s *Shape) Equal(o *Shape) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Len() == o.Len() && s.Key() == o.Key()
}

// Bounds returns the width and height of the shape's bounding box.
func (s *Shape) Bounds() (width, height int) {
	if len(s.cells) == 0 {
		return 0, 0
	}
	minX, minY := s.cells[0].X, s.cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range s.cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return maxX - minX + 1, maxY - minY + 1
}

// Clone returns a deep copy of s.
func (s *Shape) Clone() *Shape {
	return &Shape{cells: slices.Clone(s.cells)}
}

// String renders the cells in sorted order, e.g. "(0,0),(1,0)".
// The translation is kept; only the order is normalized.
func (s *Shape) String() string {
	sorted := slices.Clone(s.cells)
	slices.SortFunc(sorted, Coord.Compare)
	return string(encode(sorted))
}
