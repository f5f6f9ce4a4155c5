// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	cmp   Comparator
	log   *logger.L

	inserts    counter.Counter
	duplicates counter.Counter
	removes    counter.Counter
	misses     counter.Counter
}

// Stats - operation counts since the tree was created
type Stats struct {
	Inserts    uint64 `json:"inserts"`
	Duplicates uint64 `json:"duplicates"`
	Removes    uint64 `json:"removes"`
	Misses     uint64 `json:"misses"`
}

// New - create an initially empty tree in ascending key order
func New() *Tree {
	return NewWithComparator(ByKey)
}

// NewWithComparator - create an initially empty tree with a specific
// ordering
func NewWithComparator(cmp Comparator) *Tree {
	if nil == cmp {
		cmp = ByKey
	}
	return &Tree{
		root:  nil,
		count: 0,
		cmp:   cmp,
	}
}

// SetLogger - trace all operations to a logger channel, nil to stop
func (tree *Tree) SetLogger(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - of the whole tree
func (tree *Tree) Height() int {
	return Height(tree.root)
}

// Stats - snapshot of the operation counters
func (tree *Tree) Stats() Stats {
	return Stats{
		Inserts:    tree.inserts.Uint64(),
		Duplicates: tree.duplicates.Uint64(),
		Removes:    tree.removes.Uint64(),
		Misses:     tree.misses.Uint64(),
	}
}

// Lookup - find a specific key
func (tree *Tree) Lookup(key Key) *Node {
	return LookupWith(tree.cmp, tree.root, key)
}

// Insert - link a detached node into the tree
// returns false if the key was already present
func (tree *Tree) Insert(node *Node) bool {
	oldRoot := tree.root
	root, added := insert(tree.cmp, tree.root, node)
	if !added {
		tree.duplicates.Increment()
		if nil != tree.log {
			tree.log.Tracef("insert: %d duplicate", node.key)
		}
		return false
	}

	tree.root = root
	tree.count += 1
	tree.inserts.Increment()
	if nil != tree.log {
		if oldRoot != tree.root {
			tree.log.Tracef("insert: %d  root: %d  height: %d", node.key, tree.root.key, tree.root.height)
		} else {
			tree.log.Tracef("insert: %d", node.key)
		}
	}
	return true
}

// Remove - unlink the node with a specific key
// returns the detached node or nil if the key was not present
func (tree *Tree) Remove(key Key) *Node {
	root, removed := RemoveWith(tree.cmp, tree.root, key)
	if nil == removed {
		tree.misses.Increment()
		if nil != tree.log {
			tree.log.Tracef("remove: %d not found", key)
		}
		return nil
	}

	tree.root = root
	tree.count -= 1
	tree.removes.Increment()
	if nil != tree.log {
		tree.log.Tracef("remove: %d  remaining: %d", key, tree.count)
	}
	return removed
}

// Check - verify all tree invariants and the node count
func (tree *Tree) Check() error {
	n, bad, err := check(tree.cmp, tree.root)
	if nil != err {
		if nil != tree.log {
			tree.log.Errorf("check: node: %d  error: %s", bad.key, err)
		}
		return err
	}
	if n != tree.count {
		if nil != tree.log {
			tree.log.Errorf("check: nodes: %d  count: %d", n, tree.count)
		}
		return fault.ErrCountMismatch
	}
	return nil
}

// Print - display an ASCII graphic representation of the tree
// returns the height
func (tree *Tree) Print(w io.Writer) int {
	return Print(w, tree.root)
}
