// SPDX-License-Identifier: MIT

package board

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polyomino/shape"
)

// Board is a mutable W×H occupancy grid. cells is row-major: y*width + x.
// A cell becomes Occupied only through a successful Place.
type Board struct {
	width, height int
	cells         []bool
}

// New constructs an all-Empty board.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", width, height, ErrInvalidDimensions)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Occupied reports whether (x,y) is Occupied. Out-of-bounds cells report false.
func (b *Board) Occupied(x, y int) bool {
	return b.InBounds(x, y) && b.cells[b.index(x, y)]
}

// OccupiedCount returns how many cells are Occupied.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, occ := range b.cells {
		if occ {
			n++
		}
	}
	return n
}

// CanPlace reports whether s, offset by (x,y), lands entirely on in-bounds
// Empty cells. A nil or empty shape cannot be placed. Does not mutate.
// Complexity: O(k).
func (b *Board) CanPlace(x, y int, s *shape.Shape) bool {
	if s == nil || s.Len() == 0 {
		return false
	}
	for _, c := range s.Coordinates() {
		cx, cy := x+c.X, y+c.Y
		if !b.InBounds(cx, cy) || b.cells[b.index(cx, cy)] {
			return false
		}
	}
	return true
}

// Place marks every cell of s, offset by (x,y), Occupied and returns true.
// If CanPlace is false, nothing changes and Place returns false.
// Complexity: O(k).
func (b *Board) Place(x, y int, s *shape.Shape) bool {
	if !b.CanPlace(x, y, s) {
		return false
	}
	for _, c := range s.Coordinates() {
		b.cells[b.index(x+c.X, y+c.Y)] = true
	}
	return true
}

// Clear resets every cell to Empty.
func (b *Board) Clear() {
	clear(b.cells)
}

// String renders the grid top row first: '#' for Occupied, '.' for Empty.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[b.index(x, y)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (x,y) to a row-major index: y*width + x.
func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// coordinate converts a row-major index back to (x,y).
func (b *Board) coordinate(idx int) shape.Coord {
	return shape.Coord{X: idx % b.width, Y: idx / b.width}
}
