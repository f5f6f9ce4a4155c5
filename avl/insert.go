// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - link a detached node into the tree in ascending key order
// returns the possibly updated root
func Insert(root *Node, node *Node) *Node {
	return InsertWith(ByKey, root, node)
}

// InsertWith - link a detached node into the tree
// returns the possibly updated root
//
// if a node with an equal key is already present nothing is changed,
// the original root is returned and node stays detached
func InsertWith(cmp Comparator, root *Node, node *Node) *Node {
	root, _ = insert(cmp, root, node)
	return root
}

// internal routine for insert, also reports if node was linked
func insert(cmp Comparator, root *Node, node *Node) (*Node, bool) {

	// find the parent of the new node
	var parent *Node
	side := Equal
	p := root
	for nil != p {
		parent = p
		side = cmp.Compare(node, p)
		switch side {
		case Less:
			p = p.left
		case Greater:
			p = p.right
		default:
			return root, false
		}
	}

	if !node.IsDetached() {
		fault.Violation(fault.ErrNodeIsLinked)
	}
	recalculateHeight(node)

	node.up = parent
	if Less == side {
		parent.left = node
	} else if Greater == side {
		parent.right = node
	}

	return rebalanceFrom(node), true
}
