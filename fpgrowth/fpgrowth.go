// SPDX-License-Identifier: MIT
// Package fpgrowth: public mining entry points.

package fpgrowth

import (
	"fmt"

	"github.com/katalvlaran/lvlmine/itemset"
)

// FindFrequentPatterns mines transactions for every itemset whose
// support meets the threshold and returns the full pattern map.
//
// transactions is any finite collection of item sequences; callers are
// expected to pass duplicate-free transactions (item sets). support must
// be a positive integer. Zero transactions — or a threshold above every
// item's count — yield an empty, non-nil map, not an error.
//
// The result is deterministic: the same transactions produce the same
// map regardless of their order in the slice and regardless of the
// Workers option.
//
// Errors:
//   - ErrSupportThreshold if support < 1
//   - ErrOptionViolation  if an invalid Option was supplied
func FindFrequentPatterns(transactions [][]itemset.Item, support int, opts ...Option) (itemset.Patterns, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if support < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSupportThreshold, support)
	}

	t := buildTree(asPaths(transactions), support)

	return t.mine(support, o.Workers), nil
}

// FrequentItems runs only the first stage of mining: it counts item
// occurrences across transactions and returns each item meeting the
// support threshold with its total count.
//
// Errors: ErrSupportThreshold if support < 1.
func FrequentItems(transactions [][]itemset.Item, support int) (map[itemset.Item]int, error) {
	if support < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSupportThreshold, support)
	}

	return countItems(asPaths(transactions), support), nil
}

// asPaths wraps caller transactions as unit-weight prefix paths, the
// uniform database form tree construction consumes.
func asPaths(transactions [][]itemset.Item) []prefixPath {
	db := make([]prefixPath, len(transactions))
	for i, tx := range transactions {
		db[i] = prefixPath{items: tx, weight: 1}
	}
	return db
}
