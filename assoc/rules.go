// SPDX-License-Identifier: MIT
// Package assoc: rule derivation.
//
// Derivation is a combinatorial pass over an already-mined pattern map:
// no transactions are consulted, only recorded supports. For every
// pattern and every proper non-empty antecedent subset, the confidence
// support(pattern)/support(antecedent) decides whether a rule is kept.

package assoc

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlmine/itemset"
)

// GenerateRules derives every association rule meeting the confidence
// threshold from patterns and returns the full rule map.
//
// Patterns are processed in sorted key order and each antecedent's rule
// list is sorted by consequent key, so identical input yields an
// identical map. An antecedent absent from the pattern map has no
// support to divide by and is skipped silently — under support
// monotonicity every subset of a mined pattern should be present, but a
// missing or non-positive entry must not fault the pass. An empty
// pattern map yields an empty, non-nil rule map.
//
// Errors: ErrConfidenceThreshold if confidence is NaN or negative.
func GenerateRules(patterns itemset.Patterns, confidence float64) (Rules, error) {
	if math.IsNaN(confidence) || confidence < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrConfidenceThreshold, confidence)
	}

	rules := make(Rules)
	for _, key := range patterns.Keys() {
		items := key.Items()
		if len(items) < 2 {
			continue // a singleton has no proper non-empty split
		}
		upper := patterns[key]
		forEachAntecedent(items, func(antecedent itemset.Itemset) {
			lowerKey := antecedent.Key()
			lower, ok := patterns[lowerKey]
			if !ok || lower <= 0 {
				return
			}
			if conf := float64(upper) / float64(lower); conf >= confidence {
				rules[lowerKey] = append(rules[lowerKey], Rule{
					Consequent: difference(items, antecedent).Key(),
					Confidence: conf,
				})
			}
		})
	}

	for _, rs := range rules {
		sort.Slice(rs, func(i, j int) bool { return rs[i].Consequent < rs[j].Consequent })
	}

	return rules, nil
}

// forEachAntecedent enumerates every non-empty proper subset of items in
// depth-first order, preserving canonical item order. fn receives a
// reusable scratch slice and must not retain it.
func forEachAntecedent(items itemset.Itemset, fn func(itemset.Itemset)) {
	subset := make(itemset.Itemset, 0, len(items))
	var walk func(start int)
	walk = func(start int) {
		for i := start; i < len(items); i++ {
			subset = append(subset, items[i])
			if len(subset) < len(items) {
				fn(subset)
				walk(i + 1)
			}
			subset = subset[:len(subset)-1]
		}
	}
	walk(0)
}

// difference returns items − sub. Both are canonical and sub ⊆ items,
// so a two-pointer walk suffices.
func difference(items, sub itemset.Itemset) itemset.Itemset {
	out := make(itemset.Itemset, 0, len(items)-len(sub))
	j := 0
	for _, it := range items {
		if j < len(sub) && sub[j] == it {
			j++
			continue
		}
		out = append(out, it)
	}
	return out
}
