// SPDX-License-Identifier: MIT
//
// File: reference.go
// Role: the stable reference tracker — rebindable handles
// whose observable identity is the current identity of the element they
// were created from. The tracker holds each handle strongly for as long as
// its element lives, whether or not the caller still holds a Ref to it; a
// handle leaves the tracker only when its element is removed.
//
// On swap-and-pop (vertex or edge removal), the handle tracking the deleted
// element is invalidated, and the handle tracking the element that moved
// into its slot is rewritten to the post-move identity and reinserted under
// that key. Without the invalidation, a handle to the deleted element would
// silently start reporting an identity now naming an element it never
// referred to.
package core

// Ref is a rebindable handle to a vertex or edge identity. Its
// observable identity is the current identity of the referent; once the
// referent is removed, Current returns ErrInvalidated.
type Ref[K comparable] struct {
	h *handle[K]
}

type handle[K comparable] struct {
	valid bool
	id    K
}

// Current returns the handle's current identity, or ErrInvalidated if the
// referent has been removed.
func (r Ref[K]) Current() (K, error) {
	if r.h == nil || !r.h.valid {
		var zero K
		return zero, wrapf(ErrInvalidated, "Ref.Current", "reference no longer valid")
	}
	return r.h.id, nil
}

// Valid reports whether the handle still refers to a live element.
func (r Ref[K]) Valid() bool { return r.h != nil && r.h.valid }

// Equal reports whether r and other are both valid and refer to the same
// current identity. Two invalid handles are never equal to each other or
// to anything else — equality requires liveness, not just matching keys.
func (r Ref[K]) Equal(other Ref[K]) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	return r.h.id == other.h.id
}

// VertexRef is a stable reference to a vertex.
type VertexRef = Ref[VertexID]

// EdgeRef is a stable reference to an edge.
type EdgeRef = Ref[EdgeID]

// refTracker maps current identity to the live handle for that identity, if
// any has been created. It is the per-kind state backing
// CreateVertexReference/CreateEdgeReference.
type refTracker[K comparable] struct {
	byKey map[K]*handle[K]
}

func newRefTracker[K comparable]() *refTracker[K] {
	return &refTracker[K]{byKey: make(map[K]*handle[K])}
}

// create returns a Ref for key, reusing the existing live handle if one was
// already created for this identity so that Equal works as expected across
// repeated calls.
func (t *refTracker[K]) create(key K) Ref[K] {
	if h, ok := t.byKey[key]; ok && h.valid {
		return Ref[K]{h: h}
	}
	h := &handle[K]{valid: true, id: key}
	t.byKey[key] = h
	return Ref[K]{h: h}
}

// rehome is the reference tracker's fan-out hook, mirroring the engines'
// swap-and-pop events: the element holding identity removed was deleted
// (unless relabel), and the element that held identity survivor now holds
// identity rebound. The deleted element's handle is invalidated; the moved
// element's handle is rewritten to rebound and reinserted under that key.
func (t *refTracker[K]) rehome(removed, survivor, rebound K, relabel bool) {
	if !relabel {
		if h, ok := t.byKey[removed]; ok {
			h.valid = false
			delete(t.byKey, removed)
		}
		if removed == survivor {
			return
		}
	}
	if h, ok := t.byKey[survivor]; ok {
		delete(t.byKey, survivor)
		h.id = rebound
		t.byKey[rebound] = h
	}
}
