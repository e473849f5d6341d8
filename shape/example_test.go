// SPDX-License-Identifier: MIT
package shape_test

import (
	"fmt"

	"github.com/katalvlaran/polyomino/shape"
)

// ExampleShape_Rotate shows that rotation is signed and that the canonical
// key does not change with orientation.
func ExampleShape_Rotate() {
	l := shape.MustNew(shape.Coord{X: 0, Y: 0}, shape.Coord{X: 1, Y: 0}, shape.Coord{X: 0, Y: 1})
	fmt.Println(l, l.Key())

	l.Rotate()
	fmt.Println(l, l.Key())

	// Output:
	// (0,0),(0,1),(1,0) (0,0),(0,1),(1,0)
	// (0,-1),(0,0),(1,0) (0,0),(0,1),(1,0)
}

// ExampleNormalize anchors an arbitrary placement.
func ExampleNormalize() {
	cells, _ := shape.Normalize([]shape.Coord{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 5}})
	fmt.Println(cells)

	// Output:
	// [(0,0) (1,0) (1,1)]
}
