// SPDX-License-Identifier: MIT
package assoc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmine/assoc"
	"github.com/katalvlaran/lvlmine/fpgrowth"
	"github.com/katalvlaran/lvlmine/itemset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minedPatterns is the pattern map of the classic nine-basket dataset at
// support 2, reproduced here as the canonical rule-derivation input.
// Note {3} is absent while its supersets are present — rule derivation
// must skip such antecedents without faulting.
func minedPatterns() itemset.Patterns {
	return itemset.Patterns{
		itemset.KeyOf(1):       6,
		itemset.KeyOf(2):       7,
		itemset.KeyOf(4):       2,
		itemset.KeyOf(5):       2,
		itemset.KeyOf(1, 2):    4,
		itemset.KeyOf(1, 3):    4,
		itemset.KeyOf(2, 3):    4,
		itemset.KeyOf(2, 4):    2,
		itemset.KeyOf(1, 5):    2,
		itemset.KeyOf(2, 5):    2,
		itemset.KeyOf(1, 2, 3): 2,
		itemset.KeyOf(1, 2, 5): 2,
	}
}

// TestGenerateRules_HighConfidence pins the complete rule map at
// threshold 0.7: only perfectly confident rules survive.
func TestGenerateRules_HighConfidence(t *testing.T) {
	rules, err := assoc.GenerateRules(minedPatterns(), 0.7)
	require.NoError(t, err)

	assert.Equal(t, assoc.Rules{
		itemset.KeyOf(4): {
			{Consequent: itemset.KeyOf(2), Confidence: 1.0},
		},
		itemset.KeyOf(5): {
			{Consequent: itemset.KeyOf(1), Confidence: 1.0},
			{Consequent: itemset.KeyOf(1, 2), Confidence: 1.0},
			{Consequent: itemset.KeyOf(2), Confidence: 1.0},
		},
		itemset.KeyOf(1, 5): {
			{Consequent: itemset.KeyOf(2), Confidence: 1.0},
		},
		itemset.KeyOf(2, 5): {
			{Consequent: itemset.KeyOf(1), Confidence: 1.0},
		},
	}, rules)
}

// TestGenerateRules_MidConfidence pins the complete rule map at
// threshold 0.5, exercising fractional confidences.
func TestGenerateRules_MidConfidence(t *testing.T) {
	rules, err := assoc.GenerateRules(minedPatterns(), 0.5)
	require.NoError(t, err)

	assert.Equal(t, assoc.Rules{
		itemset.KeyOf(1): {
			{Consequent: itemset.KeyOf(2), Confidence: 4.0 / 6.0},
			{Consequent: itemset.KeyOf(3), Confidence: 4.0 / 6.0},
		},
		itemset.KeyOf(2): {
			{Consequent: itemset.KeyOf(1), Confidence: 4.0 / 7.0},
			{Consequent: itemset.KeyOf(3), Confidence: 4.0 / 7.0},
		},
		itemset.KeyOf(4): {
			{Consequent: itemset.KeyOf(2), Confidence: 1.0},
		},
		itemset.KeyOf(5): {
			{Consequent: itemset.KeyOf(1), Confidence: 1.0},
			{Consequent: itemset.KeyOf(1, 2), Confidence: 1.0},
			{Consequent: itemset.KeyOf(2), Confidence: 1.0},
		},
		itemset.KeyOf(1, 2): {
			{Consequent: itemset.KeyOf(3), Confidence: 0.5},
			{Consequent: itemset.KeyOf(5), Confidence: 0.5},
		},
		itemset.KeyOf(1, 3): {
			{Consequent: itemset.KeyOf(2), Confidence: 0.5},
		},
		itemset.KeyOf(1, 5): {
			{Consequent: itemset.KeyOf(2), Confidence: 1.0},
		},
		itemset.KeyOf(2, 3): {
			{Consequent: itemset.KeyOf(1), Confidence: 0.5},
		},
		itemset.KeyOf(2, 5): {
			{Consequent: itemset.KeyOf(1), Confidence: 1.0},
		},
	}, rules)
}

// TestGenerateRules_ConfidenceExactness recomputes every emitted
// confidence from the recorded supports and verifies the bound
// threshold ≤ confidence ≤ 1.
func TestGenerateRules_ConfidenceExactness(t *testing.T) {
	patterns := minedPatterns()
	const threshold = 0.5
	rules, err := assoc.GenerateRules(patterns, threshold)
	require.NoError(t, err)

	for _, a := range rules.Keys() {
		for _, r := range rules[a] {
			union := itemset.New(append(a.Items(), r.Consequent.Items()...)...)
			want := float64(patterns[union.Key()]) / float64(patterns[a])
			assert.Equal(t, want, r.Confidence, "confidence of %v %v must be exact", a, r)
			assert.GreaterOrEqual(t, r.Confidence, threshold)
			assert.LessOrEqual(t, r.Confidence, 1.0)
		}
	}
}

// TestGenerateRules_Deterministic verifies repeated derivation yields an
// identical map, including per-antecedent ordering.
func TestGenerateRules_Deterministic(t *testing.T) {
	first, err := assoc.GenerateRules(minedPatterns(), 0.5)
	require.NoError(t, err)
	second, err := assoc.GenerateRules(minedPatterns(), 0.5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestGenerateRules_EmptyPatterns verifies the degenerate input: no
// patterns, no rules, no error.
func TestGenerateRules_EmptyPatterns(t *testing.T) {
	rules, err := assoc.GenerateRules(nil, 0.5)
	require.NoError(t, err)
	require.NotNil(t, rules)
	assert.Empty(t, rules)

	rules, err = assoc.GenerateRules(itemset.Patterns{}, 0.0)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

// TestGenerateRules_SaturatedThreshold verifies a threshold above 1
// is legal and filters out every rule.
func TestGenerateRules_SaturatedThreshold(t *testing.T) {
	rules, err := assoc.GenerateRules(minedPatterns(), 1.5)
	require.NoError(t, err)
	require.NotNil(t, rules)
	assert.Empty(t, rules)
}

// TestGenerateRules_BadThreshold ensures NaN and negative thresholds
// fail fast with ErrConfidenceThreshold.
func TestGenerateRules_BadThreshold(t *testing.T) {
	_, err := assoc.GenerateRules(minedPatterns(), math.NaN())
	assert.ErrorIs(t, err, assoc.ErrConfidenceThreshold, "NaN must error")

	_, err = assoc.GenerateRules(minedPatterns(), -0.1)
	assert.ErrorIs(t, err, assoc.ErrConfidenceThreshold, "negative must error")
}

// TestGenerateRules_MissingAntecedents verifies hand-built maps with
// absent or zero-support subsets derive nothing and never fault.
func TestGenerateRules_MissingAntecedents(t *testing.T) {
	rules, err := assoc.GenerateRules(itemset.Patterns{itemset.KeyOf(1, 2): 3}, 0.0)
	require.NoError(t, err)
	assert.Empty(t, rules, "no recorded subsets, no rules")

	rules, err = assoc.GenerateRules(itemset.Patterns{
		itemset.KeyOf(1, 2): 2,
		itemset.KeyOf(1):    0,
	}, 0.0)
	require.NoError(t, err)
	assert.Empty(t, rules, "zero-support antecedents are skipped, not divided by")
}

// TestGenerateRules_SingletonsOnly verifies singletons alone admit no
// antecedent/consequent split.
func TestGenerateRules_SingletonsOnly(t *testing.T) {
	rules, err := assoc.GenerateRules(itemset.Patterns{
		itemset.KeyOf(1): 4,
		itemset.KeyOf(2): 9,
	}, 0.0)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

// TestGenerateRules_EndToEnd chains the miner into rule derivation on
// the nine-basket dataset, checking a few headline rules survive 0.7.
func TestGenerateRules_EndToEnd(t *testing.T) {
	txs := [][]itemset.Item{
		{1, 2, 5}, {2, 4}, {2, 3}, {1, 2, 4}, {1, 3}, {2, 3}, {1, 3}, {1, 2, 3, 5}, {1, 2, 3},
	}
	patterns, err := fpgrowth.FindFrequentPatterns(txs, 2)
	require.NoError(t, err)

	rules, err := assoc.GenerateRules(patterns, 0.7)
	require.NoError(t, err)

	require.Contains(t, rules, itemset.KeyOf(5))
	assert.Len(t, rules[itemset.KeyOf(5)], 3, "{5} implies {1}, {2} and {1,2}")
	assert.Contains(t, rules[itemset.KeyOf(1, 5)], assoc.Rule{Consequent: itemset.KeyOf(2), Confidence: 1.0})
	assert.Contains(t, rules[itemset.KeyOf(4)], assoc.Rule{Consequent: itemset.KeyOf(2), Confidence: 1.0})
}
