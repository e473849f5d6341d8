// SPDX-License-Identifier: MIT
// Package: polyomino/shape
//
// types.go: value types: Coord, Key and Shape.

package shape

import (
	"cmp"
	"strconv"
	"strings"
)

// Coord is a single cell offset. X is the column, Y the row.
// Coordinates are signed so that rotations never wrap around.
type Coord struct {
	X, Y int
}

// Compare orders coordinates by X first, then Y.
// Returns -1, 0 or +1 in the style of cmp.Compare.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Key is the canonical identity of a shape: the encoded cells of its
// canonical form, e.g. "(0,0),(1,0)". Two shapes are the same polyomino
// (up to rotation) iff their keys are equal.
type Key string

// encode joins already sorted cells into a Key.
func encode(cells []Coord) Key {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	return Key(b.String())
}

// Shape is a polyomino: a non-empty set of distinct cells.
// The cell slice is owned exclusively by the Shape; accessors return copies.
type Shape struct {
	cells []Coord
}
