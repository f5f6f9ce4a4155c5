// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	if nil == tree.root {
		return nil
	}
	return FindMinimum(tree.root)
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	if nil == tree.root {
		return nil
	}
	return FindMaximum(tree.root)
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node) Next() *Node {
	if nil != p.right {
		return FindMinimum(p.right)
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	if nil != p.left {
		return FindMaximum(p.left)
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}
