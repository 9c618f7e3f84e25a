// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: the weak subscriber registry that
// the adjacency engines fan out to after every structural mutation.
//
// Go has no destructors, so "weak backreference, pruned when the subscriber
// is dropped" is modeled with runtime.SetFinalizer: each property owns a
// *bool liveness flag shared with its registry entry; a finalizer on the
// property flips the flag to false once it becomes unreachable, and the
// registry prunes dead entries the next time it fans out rather than
// scanning proactively. Stable references are not registered here; they
// live in the refTracker (reference.go).
package core

import "runtime"

// subscriber is one registered fan-out hook.
type subscriber[K comparable] struct {
	alive  *bool
	onSwap func(removed, survivor K)
}

// registry holds the fan-out subscribers for one element kind on one
// engine. Not safe for concurrent use — it shares the engine's single-owner
// model.
type registry[K comparable] struct {
	subs []subscriber[K]
}

// register adds a fan-out hook and returns the liveness flag the caller
// must keep reachable for as long as it wants notifications; a finalizer
// set on the caller's own object (via markLiveUntilFinalized) is the usual
// way to let that flag flip to false automatically.
func (r *registry[K]) register(onSwap func(removed, survivor K)) *bool {
	alive := new(bool)
	*alive = true
	r.subs = append(r.subs, subscriber[K]{alive: alive, onSwap: onSwap})
	return alive
}

// fanOut notifies every live subscriber that removed's slot is being
// rehomed to survivor (removed == survivor means "drop, no rehome"),
// pruning subscribers whose owner was already collected.
func (r *registry[K]) fanOut(removed, survivor K) {
	live := r.subs[:0]
	for _, s := range r.subs {
		if !*s.alive {
			continue
		}
		s.onSwap(removed, survivor)
		live = append(live, s)
	}
	r.subs = live
}

// markLiveUntilFinalized arranges for alive to become false once obj is
// garbage collected, implementing the weak-linkage contract: a property that
// the caller no longer holds silently stops receiving fan-out, without the
// engine ever retaining a strong reference to it.
func markLiveUntilFinalized(obj any, alive *bool) {
	runtime.SetFinalizer(obj, func(any) { *alive = false })
}
