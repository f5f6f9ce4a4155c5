// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Key - the ordering value of a node
type Key = uint64

// Node - a node in the tree
//
// for 2^64 keys the maximum height is below 1.44 * 64 ≈ 92 so the
// height fits in a byte
type Node struct {
	key    Key   // key part for ordering
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node
	height uint8 // of the sub-tree rooted here, leaf = 1
}

// NewNode - create a detached node carrying a key
func NewNode(key Key) *Node {
	return &Node{
		key: key,
	}
}

// Key - read the key from a node item
func (p *Node) Key() Key {
	return p.key
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// IsDetached - true if the node is not part of any tree
//
// a linked node always has a non-zero height, this includes the
// single node of a one node tree
func (p *Node) IsDetached() bool {
	return nil == p.left && nil == p.right && nil == p.up && 0 == p.height
}

// Height - of the sub-tree rooted at a node, zero for nil
func Height(p *Node) int {
	if nil == p {
		return 0
	}
	return int(p.height)
}

// BalanceFactor - height of right sub-tree minus height of left sub-tree
func BalanceFactor(p *Node) int {
	if nil == p {
		fault.Violation(fault.ErrNilNode)
	}
	return Height(p.right) - Height(p.left)
}

// children must already have the correct heights
func recalculateHeight(p *Node) {
	hl := Height(p.left)
	hr := Height(p.right)
	if hl > hr {
		p.height = uint8(hl + 1)
	} else {
		p.height = uint8(hr + 1)
	}
}

// FindMinimum - lowest node in a sub-tree
func FindMinimum(p *Node) *Node {
	if nil == p {
		fault.Violation(fault.ErrNilNode)
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// FindMaximum - highest node in a sub-tree
func FindMaximum(p *Node) *Node {
	if nil == p {
		fault.Violation(fault.ErrNilNode)
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Depth - get the depth of a node, the root is zero
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for nil != parent {
		count += 1
		parent = parent.up
	}
	return count
}

// ChildrenAtDepth - all descendants at a specific depth below a node
// in left to right order, depth zero is the node itself
func (p *Node) ChildrenAtDepth(depth uint) []*Node {
	level := []*Node{p}
	for d := uint(0); d < depth && len(level) > 0; d += 1 {
		next := make([]*Node, 0, 2*len(level))
		for _, n := range level {
			if nil != n.left {
				next = append(next, n.left)
			}
			if nil != n.right {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return level
}
