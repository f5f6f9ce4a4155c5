// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the parent links, key order, heights and balance of
// a tree, returns the first node that fails and the reason
func Check(cmp Comparator, root *Node) (*Node, error) {
	if nil == cmp {
		cmp = ByKey
	}
	_, bad, err := check(cmp, root)
	return bad, err
}

// internal: consistency checker, in-order walk with an explicit stack
// so that the up pointers under test are not relied on
func check(cmp Comparator, root *Node) (int, *Node, error) {
	if nil == root {
		return 0, nil, nil
	}
	if nil != root.up {
		return 0, root, fault.ErrRootHasParent
	}

	n := 0
	var previous *Node
	stack := make([]*Node, 0, 2*Height(root))
	p := root
	for nil != p || len(stack) > 0 {
		for nil != p {
			if err := checkNode(p); nil != err {
				return n, p, err
			}
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if nil != previous && Less != cmp.Compare(previous, p) {
			return n, p, fault.ErrOrder
		}
		previous = p
		n += 1

		p = p.right
	}
	return n, nil, nil
}

// the local invariants of a single node
func checkNode(p *Node) error {
	if nil != p.left && p.left.up != p {
		return fault.ErrParentLink
	}
	if nil != p.right && p.right.up != p {
		return fault.ErrParentLink
	}
	hl := Height(p.left)
	hr := Height(p.right)
	h := hl
	if hr > h {
		h = hr
	}
	if Height(p) != h+1 {
		return fault.ErrHeight
	}
	if b := hr - hl; b < -1 || b > 1 {
		return fault.ErrUnbalanced
	}
	return nil
}
