// SPDX-License-Identifier: MIT

// Package generate enumerates every distinct polyomino of a given size,
// identifying shapes that differ only by rotation.
//
// Generate builds the shapes level by level: starting from the monomino,
// each level k is obtained from the distinct shapes of level k−1 by adding
// one candidate cell next to every existing cell, canonicalizing the result
// and deduplicating it in a shape.Set. The loop is iterative, so there is
// no recursion depth to worry about.
//
// Growth modes:
//
//   - GrowAdjacent (default): candidates are the four edge neighbours.
//     Yields connected polyominoes up to rotation (1, 1, 2, 7, 18, 60, ...).
//     Reflections are distinct, so n = 5 gives 18 rather than 12.
//   - GrowBoxed: candidates are every offset in [0, k]×[0, k] from an
//     existing cell that stays inside the k×k box. Cells may be disconnected.
//
// Options:
//
//   - WithGrowth(mode)
//   - WithWorkers(w): split each level's parents across w goroutines;
//     each worker fills a private set and the sets are merged.
//   - WithLogger(l): per-level debug entries; defaults to a no-op logger.
//
// Complexity per level: O(|S| × k × c × k log k), where c is the number of
// candidates per cell (4 or about k²). Meant for small n.
package generate
