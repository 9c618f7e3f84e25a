// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: error wrapping for the builder package. Builder operations reuse
// core's sentinel taxonomy (core.ErrInvalidArgument and friends) rather
// than minting their own, so a caller that already knows how to branch on
// core's errors via errors.Is needs no second vocabulary for staging
// failures.
package builder

import (
	"fmt"

	"github.com/kvlaran/densegraph/core"
)

// wrapf wraps sentinel with an operation-qualified message, preserving it
// for errors.Is.
func wrapf(sentinel error, op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", op, sentinel, fmt.Sprintf(format, args...))
}

var (
	errInvalidArgument = core.ErrInvalidArgument
	errAlreadyExists   = core.ErrAlreadyExists
	errNoSuchElement   = core.ErrNoSuchElement
	errUnsupported     = core.ErrUnsupported
)
