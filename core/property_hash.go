// SPDX-License-Identifier: MIT
//
// File: property_hash.go
// Role: the hash-keyed property container — used
// when an element's integer identity does not equal a dense array index.
// The only case that arises in this module is edge properties on the
// simple backend, whose EdgeID is the edge's topology-derived canonical
// encoding rather than a position in a backing vector.
package core

import "github.com/kvlaran/densegraph/internal/pset"

type hashEntry[T any] struct {
	val T
	has bool
}

// hashStore is a total map from a uint64 identity to T, backed by
// pset.Map64's inline/Robin-Hood hybrid hash table. Semantics mirror
// denseStore exactly; only the storage backbone differs.
type hashStore[T any] struct {
	m      pset.Map64[hashEntry[T]]
	initFn func(uint64) T
}

func (h *hashStore[T]) get(key uint64) (val T, ok bool) {
	e, found := h.m.Get(key)
	if found && e.has {
		return e.val, true
	}
	if h.initFn == nil {
		var zero T
		return zero, false
	}
	v := h.initFn(key)
	h.m.Set(key, hashEntry[T]{val: v, has: true})
	return v, true
}

func (h *hashStore[T]) set(key uint64, v T) {
	h.m.Set(key, hashEntry[T]{val: v, has: true})
}

// swapAndRemove mirrors denseStore.swapAndRemove; see property_dense.go.
func (h *hashStore[T]) swapAndRemove(removed, survivor uint64) {
	if removed == survivor {
		h.m.Delete(removed)
		return
	}
	e, found := h.m.Get(survivor)
	if !found {
		e = hashEntry[T]{}
	}
	if !e.has && h.initFn != nil {
		e = hashEntry[T]{val: h.initFn(survivor), has: true}
	}
	h.m.Set(removed, e)
	h.m.Delete(survivor)
}

func (h *hashStore[T]) ensureCapacity(int) {} // hint only; hash map needs none
