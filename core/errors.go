// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors and the Kind taxonomy for package core.
//
// Error policy:
//   - Only sentinel package-level errors are exported.
//   - Callers branch with errors.Is(err, ErrX), never string comparison.
//   - Sentinels are never formatted at definition site; wrapf attaches
//     operation context with %w so errors.Is still finds the sentinel.
package core

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the taxonomy buckets from the
// module's error handling design. Most callers only need errors.Is against
// the matching sentinel below; Kind exists for callers that want a closed
// switch instead.
type Kind int

const (
	// InvalidArgument: an unknown vertex/edge identity, a bad edgeOpposite
	// endpoint, or an out-of-range index was supplied.
	InvalidArgument Kind = iota
	// AlreadyExists: a duplicate edge was added to a non-multi-edge backend.
	AlreadyExists
	// NoSuchElement: GetEdge found no edge, or an iterator was advanced
	// past its end.
	NoSuchElement
	// InvalidState: a property was read before initialization with no
	// initializer declared, or a structural invariant was violated.
	InvalidState
	// Invalidated: a stable reference was used after its referent was
	// removed.
	Invalidated
	// Unsupported: the operation does not apply to this backend variant.
	Unsupported
)

// Sentinel errors, one per Kind. Wrap with wrapf to add operation context.
var (
	ErrInvalidArgument = errors.New("core: invalid argument")
	ErrAlreadyExists   = errors.New("core: already exists")
	ErrNoSuchElement   = errors.New("core: no such element")
	ErrInvalidState    = errors.New("core: invalid state")
	ErrInvalidated     = errors.New("core: reference invalidated")
	ErrUnsupported     = errors.New("core: unsupported operation")
)

var kindSentinel = map[Kind]error{
	InvalidArgument: ErrInvalidArgument,
	AlreadyExists:   ErrAlreadyExists,
	NoSuchElement:   ErrNoSuchElement,
	InvalidState:    ErrInvalidState,
	Invalidated:     ErrInvalidated,
	Unsupported:     ErrUnsupported,
}

// KindOf reports the Kind of err if it (or something it wraps) matches one
// of the package sentinels, and false otherwise.
func KindOf(err error) (Kind, bool) {
	for k, sentinel := range kindSentinel {
		if errors.Is(err, sentinel) {
			return k, true
		}
	}
	return 0, false
}

// wrapf prefixes sentinel with an operation name and formatted detail,
// preserving it for errors.Is via %w.
func wrapf(sentinel error, op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
