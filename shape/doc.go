// SPDX-License-Identifier: MIT

// Package shape defines polyomino cell sets and the procedures that give a
// shape its rotation-independent identity.
//
// What:
//
//   - Coord is a signed (x, y) cell offset; Shape is a non-empty,
//     duplicate-free set of Coords.
//   - Normalize anchors a coordinate set so min x = min y = 0.
//   - Canonical picks the lexicographically smallest anchored form among the
//     four 90° rotations; Key encodes it as a comparable map key.
//   - Set is a collection of shapes deduplicated by canonical key.
//
// Rotation is always done in signed space, (x, y) → (y, −x), and only the
// normalized result is guaranteed to be non-negative. Reflection is NOT
// folded: a shape and its mirror image have different keys.
//
// Complexity:
//
//   - Normalize: O(k log k) for k cells.
//   - Canonical / KeyOf: O(k log k), four normalizations.
//   - IsConnected: O(k).
//
// Errors:
//
//   - ErrInvalidShape: an empty coordinate set was supplied.
package shape
