// SPDX-License-Identifier: MIT
// Package: polyomino/shape
//
// canonical.go: normalization, rotation and canonical identity.
//
// Algorithm (Canonical):
//  1. best ← Normalize(cells).
//  2. Repeat three times: rotate the working set 90° clockwise
//     ((x, y) → (y, −x), signed), normalize it, keep it if it sorts
//     before best.
//  3. Return best.
//
// Sequences are compared element-wise after sorting, tuple order x then y.

package shape

import (
	"fmt"
	"slices"
)

// Normalize translates cells so that the minimum X and minimum Y are zero.
// The result is sorted by (X, Y) with duplicates collapsed; the input is not
// modified. Returns ErrInvalidShape if cells is empty.
// Complexity: O(k log k).
func Normalize(cells []Coord) ([]Coord, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrInvalidShape)
	}
	return normalize(cells), nil
}

// Canonical returns the canonical form of cells: the lexicographically
// smallest normalized rotation among 0°, 90°, 180° and 270°.
// Every rotation of the same shape yields an identical result.
// Returns ErrInvalidShape if cells is empty.
// Complexity: O(k log k).
func Canonical(cells []Coord) ([]Coord, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("Canonical: %w", ErrInvalidShape)
	}
	return canonical(cells), nil
}

// KeyOf returns the canonical Key of cells.
// Returns ErrInvalidShape if cells is empty.
func KeyOf(cells []Coord) (Key, error) {
	if len(cells) == 0 {
		return "", fmt.Errorf("KeyOf: %w", ErrInvalidShape)
	}
	return encode(canonical(cells)), nil
}

// Less reports whether the sorted sequence a orders before b.
// A proper prefix orders first.
func Less(a, b []Coord) bool {
	return compareCells(a, b) < 0
}

// normalize assumes len(cells) > 0.
func normalize(cells []Coord) []Coord {
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{X: c.X - minX, Y: c.Y - minY}
	}
	slices.SortFunc(out, Coord.Compare)
	return slices.Compact(out)
}

// canonical assumes len(cells) > 0.
func canonical(cells []Coord) []Coord {
	best := normalize(cells)
	cur := best
	for i := 0; i < 3; i++ {
		cur = normalize(rotated(cur))
		if compareCells(cur, best) < 0 {
			best = cur
		}
	}
	return best
}

// rotated returns a new slice holding cells turned 90° clockwise.
func rotated(cells []Coord) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = rotate(c)
	}
	return out
}

func rotate(c Coord) Coord {
	return Coord{X: c.Y, Y: -c.X}
}

func compareCells(a, b []Coord) int {
	return slices.CompareFunc(a, b, Coord.Compare)
}
