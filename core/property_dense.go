// SPDX-License-Identifier: MIT
//
// File: property_dense.go
// Role: the dense-indexed property container — a primitive
// array indexed directly by an element's integer identity. Used whenever
// the element's identity equals its position in the engine's backing
// vector: always for vertex properties, and for edge properties on the
// network backend (whose edge-id is itself a dense index).
package core

// denseStore is a total map from a dense integer index to T, growing
// lazily as indices are touched and tracking which slots have been written
// so an uninitialized read can be distinguished from a zero value.
//
// A Go generic instantiation gives every primitive element type (bool,
// int32, float32, int64, float64, or a boxed type) its own compiled,
// unboxed []T array with no runtime type dispatch on the hot path.
type denseStore[T any] struct {
	vals   []T
	has    []bool
	initFn func(int) T
}

// ensure grows vals/has so index n-1 is addressable.
func (d *denseStore[T]) ensure(n int) {
	if n <= len(d.vals) {
		return
	}
	grown := make([]T, n)
	copy(grown, d.vals)
	d.vals = grown
	grownHas := make([]bool, n)
	copy(grownHas, d.has)
	d.has = grownHas
}

// get returns the value at i, lazily initializing it via initFn if unset.
// ok is false only when the slot is unset and no initializer was supplied.
func (d *denseStore[T]) get(i int) (val T, ok bool) {
	d.ensure(i + 1)
	if d.has[i] {
		return d.vals[i], true
	}
	if d.initFn == nil {
		var zero T
		return zero, false
	}
	d.vals[i] = d.initFn(i)
	d.has[i] = true
	return d.vals[i], true
}

// set writes i unconditionally, marking it initialized.
func (d *denseStore[T]) set(i int, v T) {
	d.ensure(i + 1)
	d.vals[i] = v
	d.has[i] = true
}

// swapAndRemove implements the property fan-out contract: drop removed's
// slot if it has no survivor, otherwise move survivor's pre-move value into
// removed's slot (initializing survivor first if it was lazily unset and an
// initializer exists) and drop the now-unused trailing slot.
func (d *denseStore[T]) swapAndRemove(removed, survivor int) {
	if removed == survivor {
		if removed < len(d.vals) {
			d.vals = d.vals[:removed]
			d.has = d.has[:removed]
		}
		return
	}
	d.ensure(survivor + 1)
	if !d.has[survivor] && d.initFn != nil {
		d.vals[survivor] = d.initFn(survivor)
		d.has[survivor] = true
	}
	d.ensure(removed + 1)
	d.vals[removed] = d.vals[survivor]
	d.has[removed] = d.has[survivor]
	if survivor < len(d.vals) {
		d.vals = d.vals[:survivor]
		d.has = d.has[:survivor]
	}
}

// ensureCapacity is a pure sizing hint; it preserves semantics.
func (d *denseStore[T]) ensureCapacity(n int) { d.ensure(n) }
