// SPDX-License-Identifier: MIT
// Package fpgrowth: frequency counting and canonical ordering.
//
// Every tree — the top-level one and each conditional tree — starts from
// a fresh frequency table over its own weighted database. Items below
// the support threshold are dropped before construction, and surviving
// items dictate the canonical insert order.

package fpgrowth

import (
	"sort"

	"github.com/katalvlaran/lvlmine/itemset"
)

// prefixPath is one weighted "transaction": the items of a
// root-to-occurrence projection plus how many times it occurred.
// Caller transactions enter as unit-weight paths (see asPaths).
type prefixPath struct {
	items  []itemset.Item
	weight int
}

// countItems tallies weighted item occurrences across db, then drops
// every item whose total is below the support threshold.
//
// Pure function of its inputs; O(Σ|path|) time, O(distinct items) space.
func countItems(db []prefixPath, support int) map[itemset.Item]int {
	freq := make(map[itemset.Item]int)
	for _, p := range db {
		for _, it := range p.items {
			freq[it] += p.weight
		}
	}
	for it, c := range freq {
		if c < support {
			delete(freq, it)
		}
	}
	return freq
}

// canonicalize filters items down to the frequency table and sorts the
// survivors into canonical insert order: global frequency descending,
// item value ascending on ties. The fixed tie-break keeps tree shape —
// and therefore mined counts — deterministic for any input order.
func canonicalize(items []itemset.Item, freq map[itemset.Item]int) []itemset.Item {
	out := make([]itemset.Item, 0, len(items))
	for _, it := range items {
		if _, ok := freq[it]; ok {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := freq[out[i]], freq[out[j]]
		if fi != fj {
			return fi > fj
		}
		return out[i] < out[j]
	})
	return out
}
