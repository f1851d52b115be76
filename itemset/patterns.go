// SPDX-License-Identifier: MIT
// Package itemset: pattern maps.
// This file defines Patterns, the support-count map produced by mining,
// plus the deterministic accessors downstream consumers rely on.

package itemset

import "sort"

// Patterns maps each frequent itemset (by Key) to its support count:
// the number of transactions containing every item of the set.
type Patterns map[Key]int

// Keys returns all pattern keys in ascending byte-wise order.
//
// Go randomizes map iteration; consumers that need reproducible output
// (rule derivation, printing, tests) enumerate through Keys instead of
// ranging over the map directly.
func (p Patterns) Keys() []Key {
	out := make([]Key, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Support reports the recorded support count for the given items
// (canonicalized first), or 0 when the set is not present.
func (p Patterns) Support(items ...Item) int {
	return p[KeyOf(items...)]
}
