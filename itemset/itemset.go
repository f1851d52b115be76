// SPDX-License-Identifier: MIT
// Package itemset: core value types for mining.
// This file defines Item, Itemset and Key along with the canonical
// ordering and the fixed-width key encoding shared by all lvlmine packages.

package itemset

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"
)

// keyBytesPerItem is the fixed width of one encoded item inside a Key.
const keyBytesPerItem = 4

// Item identifies a single catalog entry inside a transaction.
//
// Items are plain 32-bit integers: cheap to copy, trivially comparable,
// and compact enough to pack four bytes per item into a Key.
type Item int32

// Itemset is a canonical set of items: sorted ascending, no duplicates.
//
// The zero value is the empty set. Use New to canonicalize arbitrary
// input; all lvlmine packages assume (and preserve) the canonical form.
type Itemset []Item

// New returns the canonical Itemset for items: a defensive copy,
// sorted ascending, with duplicates removed.
//
// Complexity: O(n log n) time, O(n) space.
func New(items ...Item) Itemset {
	s := make(Itemset, len(items))
	copy(s, items)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	// Compact duplicates in place; a canonical set carries each item once.
	out := s[:0]
	for _, it := range s {
		if len(out) == 0 || it != out[len(out)-1] {
			out = append(out, it)
		}
	}
	return out
}

// Key packs s into its fixed-width Key. See KeyOf for the variadic form
// that canonicalizes first; Key assumes s is already canonical.
func (s Itemset) Key() Key {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) * keyBytesPerItem)
	var buf [keyBytesPerItem]byte
	for _, it := range s {
		binary.BigEndian.PutUint32(buf[:], uint32(it))
		b.Write(buf[:])
	}
	return Key(b.String())
}

// Contains reports whether s contains it.
//
// s must be canonical; lookup is a binary search, O(log n).
func (s Itemset) Contains(it Item) bool {
	i := sort.Search(len(s), func(k int) bool { return s[k] >= it })
	return i < len(s) && s[i] == it
}

// String renders s in set notation, e.g. "{1,3,5}". The empty set
// renders "{}".
func (s Itemset) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, it := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(it)))
	}
	b.WriteByte('}')
	return b.String()
}

// Key is a compact, comparable encoding of a canonical Itemset, suitable
// for use as a map key. Every item occupies exactly four bytes
// (big-endian), so len(k) == 4·k.Len() and byte-wise comparison of two
// keys is deterministic across runs.
//
// The empty Key encodes the empty itemset.
type Key string

// KeyOf canonicalizes items (sort + dedup) and returns the resulting Key.
func KeyOf(items ...Item) Key {
	return New(items...).Key()
}

// Items decodes k back into its canonical Itemset.
//
// Keys produced by this package always decode cleanly. A foreign string
// whose length is not a multiple of four decodes to nil.
func (k Key) Items() Itemset {
	if len(k)%keyBytesPerItem != 0 {
		return nil
	}
	n := len(k) / keyBytesPerItem
	s := make(Itemset, n)
	raw := []byte(k)
	for i := 0; i < n; i++ {
		s[i] = Item(binary.BigEndian.Uint32(raw[i*keyBytesPerItem:]))
	}
	return s
}

// Len reports the number of items encoded in k.
// Malformed keys (length not a multiple of four) report 0.
func (k Key) Len() int {
	if len(k)%keyBytesPerItem != 0 {
		return 0
	}
	return len(k) / keyBytesPerItem
}

// String renders the decoded itemset in set notation, e.g. "{1,3,5}".
func (k Key) String() string {
	return k.Items().String()
}
