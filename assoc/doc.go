// Package assoc derives association rules from a mined pattern map:
// antecedent ⇒ consequent pairs whose confidence meets a threshold.
//
// 🚀 What is an association rule?
//
//	For a frequent itemset I split into antecedent A and consequent
//	C = I − A, the rule A ⇒ C holds with confidence
//	support(I) / support(A): an estimate of P(C | A). Rules power
//	"customers who bought A also bought C" style insights.
//
// ✨ Key features:
//   - every proper non-empty split of every mined itemset is considered
//   - confidence computed exactly from the recorded supports
//   - one antecedent accumulates all of its qualifying rules
//   - deterministic output: rule lists are ordered by consequent key
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlmine/assoc"
//	  "github.com/katalvlaran/lvlmine/fpgrowth"
//	)
//
//	patterns, _ := fpgrowth.FindFrequentPatterns(transactions, 2)
//	rules, err := assoc.GenerateRules(patterns, 0.7)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	for _, a := range rules.Keys() {
//	  for _, r := range rules[a] {
//	    fmt.Printf("%v ⇒ %v (%.2f)\n", a, r.Consequent, r.Confidence)
//	  }
//	}
//
// A threshold above 1 is legal and simply yields no rules for
// well-formed pattern maps, since confidence never exceeds 1 under
// support monotonicity.
//
// See examples in example_test.go.
package assoc
