// SPDX-License-Identifier: MIT
// Package fpgrowth: the FP-tree.
//
// A tree compresses a weighted transaction database: paths sharing a
// canonical-order prefix share nodes, and per-item header chains link
// every occurrence of an item for cheap projection. Each tree owns its
// frequency table, header table and node graph outright; nothing is
// shared between a tree and the conditional trees mined out of it.

package fpgrowth

import "github.com/katalvlaran/lvlmine/itemset"

// node is one (item, running count) pair on one root-to-node path.
//
// parent/children form the owning tree structure; next is a non-owning
// link to the next node elsewhere in the tree carrying the same item,
// appended at insertion time and never rewired afterwards.
type node struct {
	item     itemset.Item
	count    int
	parent   *node
	children []*node
	next     *node
}

// child returns the child of n carrying it, or nil. Children are scanned
// linearly; at most one child per item value exists (insert dedups).
func (n *node) child(it itemset.Item) *node {
	for _, c := range n.children {
		if c.item == it {
			return c
		}
	}
	return nil
}

// tree bundles a frequency table, a header table and the node graph.
//
// A conditional tree additionally records the suffix item it was built
// for and that item's total count in the parent tree; the top-level
// tree has no suffix (hasSuffix == false, root carries no item).
type tree struct {
	freq    map[itemset.Item]int
	headers map[itemset.Item]*node
	root    *node

	suffix      itemset.Item
	suffixCount int
	hasSuffix   bool
}

// buildTree constructs the FP-tree over db: count and filter (countItems),
// then insert each path's canonicalized item sequence with its weight.
// Paths that filter down to nothing contribute nothing.
func buildTree(db []prefixPath, support int) *tree {
	t := &tree{
		freq:    countItems(db, support),
		headers: make(map[itemset.Item]*node),
		root:    &node{},
	}
	for _, p := range db {
		items := canonicalize(p.items, t.freq)
		if len(items) == 0 {
			continue
		}
		t.insert(items, p.weight)
	}
	return t
}

// buildConditionalTree builds the tree for one mined item's projected
// database, tagging it with the suffix item and the item's total count
// in the parent tree.
func buildConditionalTree(db []prefixPath, support int, suffix itemset.Item, count int) *tree {
	t := buildTree(db, support)
	t.suffix, t.suffixCount, t.hasSuffix = suffix, count, true
	return t
}

// insert descends from the root along items, accumulating weight on an
// existing child or creating (and chain-linking) a fresh one. items must
// already be in canonical order.
func (t *tree) insert(items []itemset.Item, weight int) {
	cur := t.root
	for _, it := range items {
		child := cur.child(it)
		if child == nil {
			child = &node{item: it, count: weight, parent: cur}
			cur.children = append(cur.children, child)
			t.link(child)
		} else {
			child.count += weight
		}
		cur = child
	}
}

// link appends n to its item's occurrence chain, walking to the current
// end. O(chain length) per new node; the chain stays in insertion order,
// which keeps projection deterministic.
func (t *tree) link(n *node) {
	head := t.headers[n.item]
	if head == nil {
		t.headers[n.item] = n
		return
	}
	for head.next != nil {
		head = head.next
	}
	head.next = n
}

// singlePath reports whether every node from the root down has at most
// one child. Checked once per tree, O(depth).
func (t *tree) singlePath() bool {
	for n := t.root; ; n = n.children[0] {
		if len(n.children) > 1 {
			return false
		}
		if len(n.children) == 0 {
			return true
		}
	}
}

// occurrences returns the header chain for it as a slice, in insertion order.
func (t *tree) occurrences(it itemset.Item) []*node {
	var occ []*node
	for n := t.headers[it]; n != nil; n = n.next {
		occ = append(occ, n)
	}
	return occ
}

// conditionalPaths projects the database for it: for each occurrence,
// the items strictly between the root and the occurrence, weighted by
// the occurrence's count. Occurrences hanging directly off the root
// yield empty paths, which still carry their weight.
func (t *tree) conditionalPaths(it itemset.Item) []prefixPath {
	var db []prefixPath
	for _, occ := range t.occurrences(it) {
		var items []itemset.Item
		for p := occ.parent; p.parent != nil; p = p.parent {
			items = append(items, p.item)
		}
		db = append(db, prefixPath{items: items, weight: occ.count})
	}
	return db
}
