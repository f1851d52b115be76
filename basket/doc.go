// Package basket loads transaction databases from plain-text sources:
// one transaction per line, items as whitespace-separated integers.
//
// 🚀 What is a basket file?
//
//	The de-facto interchange format for market-basket datasets:
//
//	  1 2 5
//	  2 4
//	  2 3
//
//	Each line is one transaction; tokens are item identifiers. Blank
//	lines (and lines of pure whitespace) are skipped.
//
// ✨ Key features:
//   - Read consumes any io.Reader; Load opens a file by path
//   - files ending in ".gz" are transparently gunzipped by Load
//   - items must fit in 32 bits; the first malformed token aborts the
//     parse with ErrItemSyntax, reporting line number and token
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmine/basket"
//
//	transactions, err := basket.Load("retail.dat.gz")
//	if err != nil {
//	  log.Fatal(err)
//	}
//	patterns, err := fpgrowth.FindFrequentPatterns(transactions, 50)
//
// The loader performs no deduplication and preserves line and token
// order: it produces exactly the sequences the miner consumes.
package basket
