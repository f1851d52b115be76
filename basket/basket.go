// SPDX-License-Identifier: MIT
// Package basket: transaction-file parsing.

package basket

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmine/itemset"
)

// ErrItemSyntax is returned when a token cannot be parsed as a 32-bit
// integer item. The wrapped message carries the line number and token.
var ErrItemSyntax = errors.New("basket: malformed item token")

// maxLineBytes caps a single transaction line at 1 MiB. Real basket
// files stay far below this; the cap guards against unbounded buffering
// on corrupt input.
const maxLineBytes = 1 << 20

// Read parses transactions from r: one transaction per line, items as
// whitespace-separated integers. Blank and whitespace-only lines are
// skipped. The first malformed token aborts with ErrItemSyntax.
func Read(r io.Reader) ([][]itemset.Item, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var transactions [][]itemset.Item
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		tx := make([]itemset.Item, 0, len(fields))
		for _, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrItemSyntax, line, tok)
			}
			tx = append(tx, itemset.Item(v))
		}
		transactions = append(transactions, tx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("basket: read: %w", err)
	}

	return transactions, nil
}

// Load opens path and reads its transactions. Files ending in ".gz" are
// transparently gunzipped.
func Load(path string) ([][]itemset.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("basket: open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("basket: gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return Read(r)
}
