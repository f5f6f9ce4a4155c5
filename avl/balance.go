// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// make the parent of newNode (already copied from oldNode) point to
// newNode in place of oldNode
func replaceChild(oldNode *Node, newNode *Node) {
	parent := newNode.up
	if nil == parent {
		return
	}
	if parent.left == oldNode {
		parent.left = newNode
	} else if parent.right == oldNode {
		parent.right = newNode
	}
}

// single right rotation, p.left becomes the local root
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p

	p1.up = p.up
	p.up = p1
	replaceChild(p, p1)

	// p is now below p1
	recalculateHeight(p)
	recalculateHeight(p1)
	return p1
}

// single left rotation, p.right becomes the local root
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p

	p1.up = p.up
	p.up = p1
	replaceChild(p, p1)

	// p is now below p1
	recalculateHeight(p)
	recalculateHeight(p1)
	return p1
}

// balance - restore the AVL property at a single node whose children
// are already balanced and have correct heights
//
// returns the node now occupying p's position
func balance(p *Node) *Node {
	recalculateHeight(p)

	switch BalanceFactor(p) {
	case +2: // right branch too high
		if BalanceFactor(p.right) < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)

	case -2: // left branch too high
		if BalanceFactor(p.left) > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}
	return p
}

// climb from p to the root re-balancing at every level, returns the
// new root
func rebalanceFrom(p *Node) *Node {
	root := p
	for nil != p {
		root = balance(p)
		p = root.up
	}
	return root
}
