// SPDX-License-Identifier: MIT

package generate

import "errors"

// ErrInvalidSize indicates Generate was asked for fewer than one cell.
var ErrInvalidSize = errors.New("generate: size must be at least 1")
