// SPDX-License-Identifier: MIT
// Package assoc: rule types and error definitions.

package assoc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlmine/itemset"
)

// ErrConfidenceThreshold is returned when the confidence threshold is
// NaN or negative. Values above 1 are legal: they saturate the filter
// and yield an empty rule map for well-formed inputs.
var ErrConfidenceThreshold = errors.New("assoc: confidence threshold must be a non-negative number")

// Rule is one derived implication: the antecedent (the rule map key it
// is filed under) predicts Consequent with the given Confidence.
type Rule struct {
	// Consequent is the implied itemset, disjoint from the antecedent.
	Consequent itemset.Key

	// Confidence is support(antecedent ∪ consequent) / support(antecedent),
	// in [0, 1] for any pattern map produced by mining.
	Confidence float64
}

// String renders the rule body, e.g. "⇒ {2} (1.00)".
func (r Rule) String() string {
	return fmt.Sprintf("⇒ %v (%.2f)", r.Consequent, r.Confidence)
}

// Rules maps each antecedent to every qualifying rule derived for it,
// ordered by consequent key ascending.
type Rules map[itemset.Key][]Rule

// Keys returns all antecedent keys in ascending byte-wise order, for
// reproducible iteration. Mirrors itemset.Patterns.Keys.
func (r Rules) Keys() []itemset.Key {
	out := make([]itemset.Key, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
