// SPDX-License-Identifier: MIT
// Package: polyomino/shape
//
// errors.go: sentinel errors for the shape package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match with errors.Is.
//   • Context is attached by wrapping with %w at the call site.

package shape

import "errors"

// ErrInvalidShape indicates an empty coordinate set was passed where a
// polyomino of at least one cell is required (New, Normalize, Canonical).
var ErrInvalidShape = errors.New("shape: shape must contain at least one cell")
