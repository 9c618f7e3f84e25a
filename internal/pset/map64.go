// SPDX-License-Identifier: MIT

package pset

import "github.com/cespare/xxhash/v2"

func hash64(x uint64) uint64 {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(x >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}

// Map64 is a compact map keyed by uint64 (used for the simple backend's
// canonical edge encoding, which is not a dense array index). Same inline/
// Robin Hood hybrid as Map32; see set32.go for the shared probing strategy.
type Map64[V any] struct {
	keys   []uint64
	vals   []V
	hashed *rhMap64[V]
}

func (m *Map64[V]) Len() int {
	if m.hashed != nil {
		return m.hashed.count
	}
	return len(m.keys)
}

func (m *Map64[V]) Get(key uint64) (V, bool) {
	if m.hashed != nil {
		return m.hashed.get(key)
	}
	for i, k := range m.keys {
		if k == key {
			return m.vals[i], true
		}
	}
	var zero V
	return zero, false
}

func (m *Map64[V]) Set(key uint64, val V) {
	if m.hashed != nil {
		m.hashed.set(key, val)
		return
	}
	for i, k := range m.keys {
		if k == key {
			m.vals[i] = val
			return
		}
	}
	if len(m.keys) == inlineThreshold {
		m.promote()
		m.hashed.set(key, val)
		return
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

func (m *Map64[V]) Delete(key uint64) bool {
	if m.hashed != nil {
		return m.hashed.delete(key)
	}
	for i, k := range m.keys {
		if k == key {
			last := len(m.keys) - 1
			m.keys[i] = m.keys[last]
			m.vals[i] = m.vals[last]
			m.keys = m.keys[:last]
			m.vals = m.vals[:last]
			return true
		}
	}
	return false
}

func (m *Map64[V]) ForEach(fn func(key uint64, val V)) {
	if m.hashed != nil {
		m.hashed.forEach(fn)
		return
	}
	for i, k := range m.keys {
		fn(k, m.vals[i])
	}
}

func (m *Map64[V]) promote() {
	h := newRHMap64[V](len(m.keys) * 2)
	for i, k := range m.keys {
		h.set(k, m.vals[i])
	}
	m.hashed = h
	m.keys, m.vals = nil, nil
}

type rhMap64[V any] struct {
	keys    []uint64
	vals    []V
	used    []bool
	count   int
	hasZero bool
	zeroVal V
}

func newRHMap64[V any](hint int) *rhMap64[V] {
	c := 8
	for c < hint*4/3 {
		c *= 2
	}
	return &rhMap64[V]{keys: make([]uint64, c), vals: make([]V, c), used: make([]bool, c)}
}

func (h *rhMap64[V]) get(key uint64) (V, bool) {
	if key == 0 {
		return h.zeroVal, h.hasZero
	}
	mask := uint64(len(h.keys) - 1)
	idx := hash64(key) & mask
	dist := uint64(0)
	for h.used[idx] {
		if h.keys[idx] == key {
			return h.vals[idx], true
		}
		d := probeDistance(idx, hash64(h.keys[idx])&mask, mask)
		if d < dist {
			var zero V
			return zero, false
		}
		idx = (idx + 1) & mask
		dist++
	}
	var zero V
	return zero, false
}

func (h *rhMap64[V]) set(key uint64, val V) {
	if key == 0 {
		if !h.hasZero {
			h.count++
		}
		h.hasZero = true
		h.zeroVal = val
		return
	}
	if h.count+1 > len(h.keys)*3/4 {
		h.grow()
	}
	mask := uint64(len(h.keys) - 1)
	idx := hash64(key) & mask
	dist := uint64(0)
	for {
		if !h.used[idx] {
			h.used[idx] = true
			h.keys[idx] = key
			h.vals[idx] = val
			h.count++
			return
		}
		if h.keys[idx] == key {
			h.vals[idx] = val
			return
		}
		existingDist := probeDistance(idx, hash64(h.keys[idx])&mask, mask)
		if existingDist < dist {
			h.keys[idx], key = key, h.keys[idx]
			h.vals[idx], val = val, h.vals[idx]
			dist = existingDist
		}
		idx = (idx + 1) & mask
		dist++
	}
}

func (h *rhMap64[V]) delete(key uint64) bool {
	if key == 0 {
		if !h.hasZero {
			return false
		}
		h.hasZero = false
		var zero V
		h.zeroVal = zero
		h.count--
		return true
	}
	mask := uint64(len(h.keys) - 1)
	idx := hash64(key) & mask
	dist := uint64(0)
	for h.used[idx] {
		if h.keys[idx] == key {
			h.deleteAt(idx, mask)
			h.count--
			return true
		}
		d := probeDistance(idx, hash64(h.keys[idx])&mask, mask)
		if d < dist {
			return false
		}
		idx = (idx + 1) & mask
		dist++
	}
	return false
}

func (h *rhMap64[V]) deleteAt(idx, mask uint64) {
	next := (idx + 1) & mask
	for h.used[next] {
		d := probeDistance(next, hash64(h.keys[next])&mask, mask)
		if d == 0 {
			break
		}
		h.keys[idx] = h.keys[next]
		h.vals[idx] = h.vals[next]
		idx = next
		next = (next + 1) & mask
	}
	h.used[idx] = false
	var zero V
	h.vals[idx] = zero
}

func (h *rhMap64[V]) grow() {
	oldKeys, oldVals, oldUsed := h.keys, h.vals, h.used
	h.keys = make([]uint64, len(oldKeys)*2)
	h.vals = make([]V, len(oldKeys)*2)
	h.used = make([]bool, len(oldKeys)*2)
	h.count = 0
	if h.hasZero {
		h.count = 1
	}
	for i, used := range oldUsed {
		if used {
			h.setNoGrow(oldKeys[i], oldVals[i])
		}
	}
}

func (h *rhMap64[V]) setNoGrow(key uint64, val V) {
	mask := uint64(len(h.keys) - 1)
	idx := hash64(key) & mask
	dist := uint64(0)
	for {
		if !h.used[idx] {
			h.used[idx] = true
			h.keys[idx] = key
			h.vals[idx] = val
			h.count++
			return
		}
		existingDist := probeDistance(idx, hash64(h.keys[idx])&mask, mask)
		if existingDist < dist {
			h.keys[idx], key = key, h.keys[idx]
			h.vals[idx], val = val, h.vals[idx]
			dist = existingDist
		}
		idx = (idx + 1) & mask
		dist++
	}
}

func (h *rhMap64[V]) forEach(fn func(uint64, V)) {
	if h.hasZero {
		fn(0, h.zeroVal)
	}
	for i, used := range h.used {
		if used {
			fn(h.keys[i], h.vals[i])
		}
	}
}
