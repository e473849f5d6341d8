// SPDX-License-Identifier: MIT
// File: board/example_test.go
package board_test

import (
	"fmt"

	"github.com/katalvlaran/polyomino/board"
	"github.com/katalvlaran/polyomino/shape"
)

// ExampleBoard_Place places an L tromino and a vertical I tromino, then
// reports the remaining empty region.
func ExampleBoard_Place() {
	b, _ := board.New(4, 3)
	l := shape.MustNew(shape.Coord{X: 0, Y: 0}, shape.Coord{X: 1, Y: 0}, shape.Coord{X: 0, Y: 1})
	i := shape.MustNew(shape.Coord{X: 0, Y: 0}, shape.Coord{X: 0, Y: 1}, shape.Coord{X: 0, Y: 2})

	fmt.Println(b.Place(0, 0, l), b.Place(3, 0, i), b.Place(1, 0, i))
	fmt.Print(b)

	regions := b.EmptyRegions()
	fmt.Println("regions:", len(regions), "size:", len(regions[0]))

	// Output:
	// true true false
	// ##.#
	// #..#
	// ...#
	// regions: 1 size: 6
}
