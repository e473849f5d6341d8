// SPDX-License-Identifier: MIT
package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyomino/board"
	"github.com/katalvlaran/polyomino/shape"
)

var (
	domino   = shape.MustNew(shape.Coord{X: 0, Y: 0}, shape.Coord{X: 1, Y: 0})
	trominoL = shape.MustNew(shape.Coord{X: 0, Y: 0}, shape.Coord{X: 1, Y: 0}, shape.Coord{X: 0, Y: 1})
)

// TestNew_InvalidDimensions rejects non-positive sizes.
func TestNew_InvalidDimensions(t *testing.T) {
	for _, d := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		b, err := board.New(d[0], d[1])
		assert.ErrorIs(t, err, board.ErrInvalidDimensions, "dims %v", d)
		assert.Nil(t, b)
	}
}

// TestNew_AllEmpty starts with no occupied cells.
func TestNew_AllEmpty(t *testing.T) {
	b, err := board.New(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Zero(t, b.OccupiedCount())
	assert.Equal(t, "....\n....\n", b.String())
}

// TestPlace_ThenBlockedThenCleared walks the Empty → Occupied → Empty cycle.
func TestPlace_ThenBlockedThenCleared(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)

	require.True(t, b.Place(0, 0, domino))
	assert.True(t, b.Occupied(0, 0))
	assert.True(t, b.Occupied(1, 0))
	assert.False(t, b.Occupied(2, 0))
	assert.Equal(t, 2, b.OccupiedCount())

	assert.False(t, b.CanPlace(0, 0, domino))

	b.Clear()
	assert.True(t, b.CanPlace(0, 0, domino))
	assert.Zero(t, b.OccupiedCount())
}

// TestPlace_Atomic leaves the board unchanged when any cell overlaps.
func TestPlace_Atomic(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)
	require.True(t, b.Place(0, 0, domino))
	before := b.String()

	assert.False(t, b.Place(1, 0, trominoL), "(1,0) is already occupied")
	assert.Equal(t, before, b.String())
	assert.Equal(t, 2, b.OccupiedCount())

	// Partially out of bounds: (2,1) fits, (3,1) does not.
	assert.False(t, b.Place(2, 1, domino))
	assert.Equal(t, before, b.String())
}

// TestCanPlace_Bounds covers right, bottom and negative-offset edges.
func TestCanPlace_Bounds(t *testing.T) {
	b, err := board.New(3, 2)
	require.NoError(t, err)

	right := shape.MustNew(shape.Coord{X: 1, Y: 0})
	assert.False(t, b.CanPlace(b.Width()-1, 0, right))
	assert.True(t, b.CanPlace(b.Width()-2, 0, right))

	assert.False(t, b.CanPlace(0, 1, trominoL), "(0,2) falls below the grid")
	assert.False(t, b.CanPlace(-1, 0, domino))

	// A signed rotation keeps its negative offset; the anchor must absorb it.
	up := domino.Clone()
	up.Rotate() // (0,0),(0,-1)
	assert.False(t, b.CanPlace(0, 0, up))
	assert.True(t, b.CanPlace(0, 1, up))
}

// TestCanPlace_NilAndEmpty never places a missing shape.
func TestCanPlace_NilAndEmpty(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	assert.False(t, b.CanPlace(0, 0, nil))
	assert.False(t, b.Place(0, 0, nil))
	assert.False(t, b.CanPlace(0, 0, &shape.Shape{}))
}

// TestCanPlace_Pure does not mutate.
func TestCanPlace_Pure(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.True(t, b.CanPlace(0, 0, trominoL))
	}
	assert.Zero(t, b.OccupiedCount())
}

// TestOccupied_OutOfBounds reports false outside the grid.
func TestOccupied_OutOfBounds(t *testing.T) {
	b, err := board.New(1, 1)
	require.NoError(t, err)
	require.True(t, b.Place(0, 0, shape.MustNew(shape.Coord{})))
	assert.True(t, b.Occupied(0, 0))
	assert.False(t, b.Occupied(1, 0))
	assert.False(t, b.Occupied(0, -1))
	assert.Equal(t, "#\n", b.String())
}
