// Package lvlmine is your in-memory playground for frequent-pattern mining —
// from raw transaction baskets to frequent itemsets and association rules.
//
// 🚀 What is lvlmine?
//
//	A modern, deterministic, zero-dependency library that brings together:
//		• Itemset primitives: canonical itemsets, compact map keys, pattern maps
//		• FP-Growth: frequent-itemset mining over an FP-tree, no candidate generation
//		• Association rules: antecedent ⇒ consequent with exact confidence
//		• Basket I/O: plain-text and gzip transaction files
//
// ✨ Why choose lvlmine?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical input yields identical output, run after run
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – functional options (worker pools…) without polluting call sites
//
// Under the hood, everything is organized under four subpackages:
//
//	itemset/  — Item, Itemset, Key and Patterns: the shared mining vocabulary
//	fpgrowth/ — FP-tree construction and recursive conditional mining
//	assoc/    — association-rule derivation from a mined pattern map
//	basket/   — transaction-file loading (plain text, gzip)
//
// Quick ASCII example:
//
//	    (root)
//	    ├── 2:4 ── 1:2 ── 3:1
//	    └── 1:2 ── 3:1
//
//	represents an FP-tree after four baskets; shared prefixes share nodes.
//
// Dive into README.md for full examples and the package-level docs for the
// precise mining semantics.
//
//	go get github.com/katalvlaran/lvlmine
package lvlmine
