// SPDX-License-Identifier: MIT

// Package pset implements the compact integer-keyed substrate shared by the
// adjacency engines and the hash-keyed property fallbacks in package core.
//
// Two representations back every Set and Map in this package:
//
//   - inline: a small dense slice of keys (and, for maps, parallel values),
//     scanned linearly. Used while occupancy is small; this is the common
//     case for per-vertex adjacency, where most vertices have a handful of
//     neighbors.
//   - robin Hood hash: a power-of-two open-addressed table with backward-shift
//     deletion, promoted to once occupancy crosses inlineThreshold.
//
// Neither representation shrinks automatically, and the inline→hashed
// transition never reverses. Keys hash via github.com/cespare/xxhash/v2;
// the value 0 is not storable in-band and is tracked with a side flag so the
// empty-slot sentinel in the hashed table can stay zero.
package pset
