// SPDX-License-Identifier: MIT

// Package board provides a fixed-size occupancy grid on which polyomino
// shapes are tested and placed.
//
// What:
//
//   - Board is a W×H grid of cells, each Empty or Occupied; all Empty at New.
//   - CanPlace checks that every cell of a shape, offset by (x, y), lands on
//     an in-bounds Empty cell. Place commits all cells or none.
//   - EmptyRegions lists the 4-connected islands of Empty cells, the usual
//     pruning signal for packing searches.
//
// Out-of-bounds and overlapping placements are ordinary outcomes and are
// reported as false, never as errors.
//
// A Board is not safe for concurrent mutation: callers that share one must
// hold a lock across CanPlace and Place.
//
// Complexity:
//
//   - CanPlace / Place: O(k) for a k-cell shape.
//   - Clear:            O(W×H).
//   - EmptyRegions:     O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
package board
