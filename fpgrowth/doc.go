// Package fpgrowth mines frequent itemsets from a transaction database
// with the FP-Growth algorithm: a compressed prefix tree plus recursive
// conditional mining, no candidate generation.
//
// 🚀 What is FP-Growth?
//
//	Apriori-style miners enumerate candidate subsets and rescan the
//	database for each size. FP-Growth instead compresses the whole
//	database into an FP-tree — transactions sharing a prefix under the
//	canonical item order share nodes — and recursively mines small
//	conditional trees, one per item. It's widely used in:
//	  • Market-basket analysis & recommendation
//	  • Log / alarm co-occurrence mining
//	  • Feature co-selection in ML pipelines
//
// ✨ Key features:
//   - one database scan for frequency counting, one for tree building
//   - canonical item order: global frequency descending, item ascending
//     on ties — fully deterministic output, run after run
//   - header-table occurrence chains for cheap per-item projection
//   - single-path shortcut: a non-branching tree yields its patterns by
//     direct subset enumeration
//   - optional bounded worker pool over the top-level item loop
//     (WithWorkers) with output identical to the sequential run
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmine/fpgrowth"
//
//	transactions := [][]itemset.Item{
//	  {1, 3, 4}, {2, 3, 5}, {1, 2, 3, 5}, {2, 5},
//	}
//	patterns, err := fpgrowth.FindFrequentPatterns(transactions, 2)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	for _, k := range patterns.Keys() {
//	  fmt.Println(k, patterns[k])
//	}
//
// Performance:
//
//   - Counting:     O(Σ|T|) over all transactions
//   - Construction: O(Σ|T| log |T|) for per-transaction canonical sorts
//   - Mining:       output-sensitive; bounded below by the number of
//     frequent itemsets, which is worst-case exponential in the number
//     of distinct frequent items
//
// See examples in example_test.go and the rule-derivation pass in
// package assoc.
package fpgrowth
