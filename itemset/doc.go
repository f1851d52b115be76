// Package itemset provides the shared vocabulary for frequent-pattern
// mining: items, canonical itemsets, compact map keys and pattern maps.
//
// 🚀 What is an itemset?
//
//	A set of items observed together in a transaction (a "basket").
//	Mining algorithms count how often each itemset occurs across a
//	database of transactions; sets meeting a support threshold are
//	"frequent" and feed association-rule derivation.
//
// ✨ Key features:
//   - Itemset: canonical form — sorted ascending, duplicates removed
//   - Key: fixed-width (4 bytes/item, big-endian) string encoding, usable
//     as a map key and byte-wise comparable for deterministic ordering
//   - Patterns: the support-count map produced by mining, with sorted
//     key enumeration for reproducible iteration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmine/itemset"
//
//	s := itemset.New(5, 1, 3, 1)     // {1,3,5}
//	k := s.Key()                     // 12-byte Key
//	back := k.Items()                // {1,3,5} again
//
//	p := itemset.Patterns{itemset.KeyOf(1, 2): 4}
//	p.Support(2, 1)                  // 4 — input is canonicalized first
//
// Determinism:
//
//	Go randomizes map iteration order. Every consumer that needs
//	reproducible output (rule derivation, printing, tests) enumerates a
//	Patterns map through Keys(), never by ranging over the map directly.
//
// See examples in example_test.go.
package itemset
