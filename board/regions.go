// SPDX-License-Identifier: MIT

package board

import "github.com/katalvlaran/polyomino/shape"

// EmptyRegions finds all 4-connected regions of Empty cells. Regions are
// returned in row-major order of their first cell; cells within a region
// are in BFS order from that cell.
//
// A packing search can prune a branch as soon as some region is smaller
// than the smallest remaining piece.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (b *Board) EmptyRegions() [][]shape.Coord {
	seen := make([]bool, len(b.cells))
	var regions [][]shape.Coord

	for i0, occ := range b.cells {
		if occ || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []shape.Coord

		for qi := 0; qi < len(queue); qi++ {
			u := b.coordinate(queue[qi])
			region = append(region, u)
			for _, v := range shape.Neighbors(u) {
				if !b.InBounds(v.X, v.Y) {
					continue
				}
				vi := b.index(v.X, v.Y)
				if !b.cells[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
