// SPDX-License-Identifier: MIT
// Package: polyomino/shape
//
// connected.go: 4-connectivity of a shape's cells.

package shape

// neighborOffsets are the four edge neighbours: N, E, S, W.
var neighborOffsets = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbors returns the four edge-adjacent cells of c.
func Neighbors(c Coord) [4]Coord {
	var out [4]Coord
	for i, d := range neighborOffsets {
		out[i] = Coord{X: c.X + d.X, Y: c.Y + d.Y}
	}
	return out
}

// IsConnected reports whether every cell of s is reachable from every other
// through edge-adjacent cells. A zero-value Shape is not connected.
// Time: O(k), Memory: O(k).
func (s *Shape) IsConnected() bool {
	if len(s.cells) == 0 {
		return false
	}
	member := make(map[Coord]bool, len(s.cells))
	for _, c := range s.cells {
		member[c] = false
	}
	// BFS from the first cell; member[c] marks visited.
	queue := []Coord{s.cells[0]}
	member[s.cells[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range Neighbors(queue[qi]) {
			if seen, ok := member[n]; ok && !seen {
				member[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(queue) == len(member)
}
