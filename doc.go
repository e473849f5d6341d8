// SPDX-License-Identifier: MIT

// Package polyomino enumerates polyomino shapes and places them on boards.
//
// The module is organized as three subpackages:
//
//	shape/    Coord and Shape, normalization, rotation, canonical keys, Set
//	generate/ level-by-level generation of every shape of n cells,
//	          deduplicated up to rotation (mirror images stay distinct)
//	board/    fixed-size occupancy grid with atomic CanPlace/Place/Clear
//	          and empty-region analysis
//
// Quick example, the 18 one-sided pentominoes on a 10×9 board:
//
//	shapes, _ := generate.Generate(5)
//	b, _ := board.New(10, 9)
//	for _, s := range shapes {
//		// try s at every (x, y) and rotation with b.CanPlace / b.Place
//	}
//
//	go get github.com/katalvlaran/polyomino
package polyomino
