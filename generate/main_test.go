// SPDX-License-Identifier: MIT
package generate_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if the worker fan-out leaks goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
