// SPDX-License-Identifier: MIT
// Package fpgrowth: recursive conditional mining.
//
// A fully built tree is mined exactly one way: trees that collapsed to a
// single root-to-leaf path are read off by direct subset enumeration;
// branching trees are mined item by item, rarest first, through
// conditional trees built from each item's occurrence chain. A
// conditional tree's suffix item joins every pattern mined beneath it.

package fpgrowth

import (
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlmine/itemset"
)

// mine computes the pattern map for t using the threshold the tree was
// built with. Mining is idempotent: it only reads tree state, so
// repeated calls return identical maps.
func (t *tree) mine(support, workers int) itemset.Patterns {
	if t.singlePath() {
		return t.singlePathPatterns()
	}
	return t.zipSuffix(t.mineSubTrees(support, workers))
}

// singlePathPatterns enumerates every non-empty subset of the frequency
// table. On a single path all surviving items co-occur on one branch, so
// a subset's support is the minimum count among its members. A
// conditional tree additionally records its bare suffix with the root's
// accumulated count, and the suffix joins every enumerated subset.
func (t *tree) singlePathPatterns() itemset.Patterns {
	patterns := make(itemset.Patterns)
	if t.hasSuffix {
		patterns[itemset.KeyOf(t.suffix)] = t.suffixCount
	}

	items := t.frequentItems()
	subset := make([]itemset.Item, 0, len(items)+1)
	var walk func(start, minCount int)
	walk = func(start, minCount int) {
		for i := start; i < len(items); i++ {
			c := minCount
			if f := t.freq[items[i]]; f < c {
				c = f
			}
			subset = append(subset, items[i])
			if t.hasSuffix {
				patterns[itemset.KeyOf(append(subset, t.suffix)...)] = c
			} else {
				patterns[itemset.KeyOf(subset...)] = c
			}
			walk(i+1, c)
			subset = subset[:len(subset)-1]
		}
	}
	walk(0, math.MaxInt)

	return patterns
}

// frequentItems lists the frequency table's items, ascending by value.
func (t *tree) frequentItems() []itemset.Item {
	items := make([]itemset.Item, 0, len(t.freq))
	for it := range t.freq {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// miningOrder lists the frequency table's items rarest first: global
// frequency ascending, item value descending on ties — the exact
// reverse of the canonical insert order.
func (t *tree) miningOrder() []itemset.Item {
	items := t.frequentItems()
	sort.Slice(items, func(i, j int) bool {
		fi, fj := t.freq[items[i]], t.freq[items[j]]
		if fi != fj {
			return fi < fj
		}
		return items[i] > items[j]
	})
	return items
}

// mineSubTrees mines one conditional tree per frequent item and merges
// the per-item results in mining order. Sibling results are key-disjoint
// for well-formed input, so the additive merge in mergePatterns is a
// robustness guard rather than a working code path.
func (t *tree) mineSubTrees(support, workers int) itemset.Patterns {
	order := t.miningOrder()
	if workers > 1 && len(order) > 1 {
		return t.mineSubTreesParallel(order, support, workers)
	}

	merged := make(itemset.Patterns)
	for _, it := range order {
		mergePatterns(merged, t.mineOne(it, support))
	}
	return merged
}

// mineSubTreesParallel fans the per-item loop out to a bounded worker
// pool. Sibling conditional trees share no mutable state, and per-item
// results are merged in mining order after all workers finish, so the
// output is identical to the sequential path.
func (t *tree) mineSubTreesParallel(order []itemset.Item, support, workers int) itemset.Patterns {
	if workers > len(order) {
		workers = len(order)
	}

	results := make([]itemset.Patterns, len(order))
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = t.mineOne(order[i], support)
			}
		}()
	}
	for i := range order {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	merged := make(itemset.Patterns)
	for _, p := range results {
		mergePatterns(merged, p)
	}
	return merged
}

// mineOne builds and mines the conditional tree for a single item. Every
// returned pattern includes it, by way of the conditional tree's suffix.
// Recursion below the top-level loop is sequential.
func (t *tree) mineOne(it itemset.Item, support int) itemset.Patterns {
	sub := buildConditionalTree(t.conditionalPaths(it), support, it, t.freq[it])
	return sub.mine(support, 1)
}

// zipSuffix unions the tree's suffix item into every pattern key. The
// top-level tree has no suffix and passes patterns through unchanged.
func (t *tree) zipSuffix(patterns itemset.Patterns) itemset.Patterns {
	if !t.hasSuffix {
		return patterns
	}
	zipped := make(itemset.Patterns, len(patterns))
	for k, count := range patterns {
		zipped[itemset.KeyOf(append(k.Items(), t.suffix)...)] = count
	}
	return zipped
}

// mergePatterns folds src into dst, adding supports on key collision.
// Addition commutes, so the fold order cannot change the result.
func mergePatterns(dst, src itemset.Patterns) {
	for k, count := range src {
		dst[k] += count
	}
}
