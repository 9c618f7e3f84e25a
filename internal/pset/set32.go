// SPDX-License-Identifier: MIT

package pset

import "github.com/cespare/xxhash/v2"

// inlineThreshold is the occupancy above which a Set32/Map32 promotes its
// inline dense array into a Robin Hood hash table. Per-vertex adjacency sets
// of sparse graphs usually hold a handful of entries, so most sets never
// promote; any value that keeps small sets linear-scan cheap and large sets
// hash-table cheap works, this one is not load-bearing for correctness.
const inlineThreshold = 32

func hash32(x uint32) uint64 {
	var buf [4]byte
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	buf[2] = byte(x >> 16)
	buf[3] = byte(x >> 24)
	return xxhash.Sum64(buf[:])
}

// Set32 is a compact set of uint32 keys. It starts as a small dense inline
// slice and is promoted, once, to a Robin Hood open-addressed hash table
// when occupancy crosses inlineThreshold. The promotion never reverses.
type Set32 struct {
	inline []uint32
	hashed *rhSet32
}

// Len reports the number of stored keys.
func (s *Set32) Len() int {
	if s.hashed != nil {
		return s.hashed.count
	}
	return len(s.inline)
}

// Contains reports whether key is a member.
func (s *Set32) Contains(key uint32) bool {
	if s.hashed != nil {
		return s.hashed.contains(key)
	}
	for _, k := range s.inline {
		if k == key {
			return true
		}
	}
	return false
}

// Add inserts key, reporting whether it was newly added.
func (s *Set32) Add(key uint32) bool {
	if s.hashed != nil {
		return s.hashed.insert(key)
	}
	for _, k := range s.inline {
		if k == key {
			return false
		}
	}
	if len(s.inline) == inlineThreshold {
		s.promote()
		return s.hashed.insert(key)
	}
	s.inline = append(s.inline, key)
	return true
}

// Remove deletes key, reporting whether it was present.
func (s *Set32) Remove(key uint32) bool {
	if s.hashed != nil {
		return s.hashed.remove(key)
	}
	for i, k := range s.inline {
		if k == key {
			last := len(s.inline) - 1
			s.inline[i] = s.inline[last]
			s.inline = s.inline[:last]
			return true
		}
	}
	return false
}

// ForEach calls fn once per stored key in unspecified order. fn must not
// mutate the set.
func (s *Set32) ForEach(fn func(key uint32)) {
	if s.hashed != nil {
		s.hashed.forEach(fn)
		return
	}
	for _, k := range s.inline {
		fn(k)
	}
}

func (s *Set32) promote() {
	h := newRHSet32(len(s.inline) * 2)
	for _, k := range s.inline {
		h.insert(k)
	}
	s.hashed = h
	s.inline = nil
}

// rhSet32 is a power-of-two Robin Hood open-addressed set with
// backward-shift deletion. Zero is not representable in-band; hasZero
// tracks it out of band so the empty-slot sentinel can remain zero.
type rhSet32 struct {
	keys    []uint32
	used    []bool
	count   int
	hasZero bool
}

func newRHSet32(hint int) *rhSet32 {
	cap := 8
	for cap < hint*4/3 {
		cap *= 2
	}
	return &rhSet32{keys: make([]uint32, cap), used: make([]bool, cap)}
}

func (h *rhSet32) contains(key uint32) bool {
	if key == 0 {
		return h.hasZero
	}
	mask := uint64(len(h.keys) - 1)
	idx := hash32(key) & mask
	dist := uint64(0)
	for h.used[idx] {
		if h.keys[idx] == key {
			return true
		}
		d := probeDistance(idx, hash32(h.keys[idx])&mask, mask)
		if d < dist {
			return false
		}
		idx = (idx + 1) & mask
		dist++
	}
	return false
}

func (h *rhSet32) insert(key uint32) bool {
	if key == 0 {
		if h.hasZero {
			return false
		}
		h.hasZero = true
		h.count++
		return true
	}
	if h.count+1 > len(h.keys)*3/4 {
		h.grow()
	}
	mask := uint64(len(h.keys) - 1)
	idx := hash32(key) & mask
	dist := uint64(0)
	for {
		if !h.used[idx] {
			h.used[idx] = true
			h.keys[idx] = key
			h.count++
			return true
		}
		if h.keys[idx] == key {
			return false
		}
		existingDist := probeDistance(idx, hash32(h.keys[idx])&mask, mask)
		if existingDist < dist {
			h.keys[idx], key = key, h.keys[idx]
			dist = existingDist
		}
		idx = (idx + 1) & mask
		dist++
	}
}

func (h *rhSet32) remove(key uint32) bool {
	if key == 0 {
		if !h.hasZero {
			return false
		}
		h.hasZero = false
		h.count--
		return true
	}
	mask := uint64(len(h.keys) - 1)
	idx := hash32(key) & mask
	dist := uint64(0)
	for h.used[idx] {
		if h.keys[idx] == key {
			h.deleteAt(idx, mask)
			h.count--
			return true
		}
		d := probeDistance(idx, hash32(h.keys[idx])&mask, mask)
		if d < dist {
			return false
		}
		idx = (idx + 1) & mask
		dist++
	}
	return false
}

// deleteAt performs backward-shift deletion starting at idx.
func (h *rhSet32) deleteAt(idx, mask uint64) {
	next := (idx + 1) & mask
	for h.used[next] {
		d := probeDistance(next, hash32(h.keys[next])&mask, mask)
		if d == 0 {
			break
		}
		h.keys[idx] = h.keys[next]
		idx = next
		next = (next + 1) & mask
	}
	h.used[idx] = false
}

func (h *rhSet32) grow() {
	old := h.keys
	oldUsed := h.used
	h.keys = make([]uint32, len(old)*2)
	h.used = make([]bool, len(old)*2)
	h.count = 0
	if h.hasZero {
		h.count = 1
	}
	for i, used := range oldUsed {
		if used {
			h.insertNoGrow(old[i])
		}
	}
}

func (h *rhSet32) insertNoGrow(key uint32) {
	mask := uint64(len(h.keys) - 1)
	idx := hash32(key) & mask
	dist := uint64(0)
	for {
		if !h.used[idx] {
			h.used[idx] = true
			h.keys[idx] = key
			h.count++
			return
		}
		existingDist := probeDistance(idx, hash32(h.keys[idx])&mask, mask)
		if existingDist < dist {
			h.keys[idx], key = key, h.keys[idx]
			dist = existingDist
		}
		idx = (idx + 1) & mask
		dist++
	}
}

func (h *rhSet32) forEach(fn func(uint32)) {
	if h.hasZero {
		fn(0)
	}
	for i, used := range h.used {
		if used {
			fn(h.keys[i])
		}
	}
}

// probeDistance returns the linear probe distance of a slot currently holding
// an entry whose ideal bucket is home, given the slot it actually occupies.
func probeDistance(idx, home, mask uint64) uint64 {
	return (idx - home) & mask
}
