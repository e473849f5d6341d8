// SPDX-License-Identifier: MIT

package board

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("board: width and height must be positive")
)
