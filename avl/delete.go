// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - unlink the node with a specific key in ascending key order
// returns the possibly updated root and the removed node
func Remove(root *Node, key Key) (*Node, *Node) {
	return RemoveWith(ByKey, root, key)
}

// RemoveWith - unlink the node that compares equal to key
// returns the possibly updated root and the removed node
//
// if the key is not present the original root and nil are returned,
// otherwise the removed node is fully detached and can be reused
func RemoveWith(cmp Comparator, root *Node, key Key) (*Node, *Node) {
	q := LookupWith(cmp, root, key)
	if nil == q {
		return root, nil
	}

	var replacement *Node
	var start *Node // lowest node whose height may have changed

	switch {
	case nil != q.left && nil != q.right:
		// in-order successor has no left child
		r := FindMinimum(q.right)

		// unlink the successor from its current position
		rp := r.up
		if rp.left == r {
			rp.left = r.right
		} else {
			rp.right = r.right
		}
		if nil != r.right {
			r.right.up = rp
		}

		if rp == q {
			start = r
		} else {
			start = rp
		}

		// successor takes over the position of q
		r.left = q.left
		if nil != r.left {
			r.left.up = r
		}
		r.right = q.right
		if nil != r.right {
			r.right.up = r
		}
		r.up = q.up
		replacement = r

	case nil != q.left:
		replacement = q.left
		replacement.up = q.up
		start = replacement

	case nil != q.right:
		replacement = q.right
		replacement.up = q.up
		start = replacement

	default:
		start = q.up
	}

	newRoot := root
	if nil != q.up {
		if q.up.left == q {
			q.up.left = replacement
		} else {
			q.up.right = replacement
		}
	} else {
		newRoot = replacement
	}

	q.left = nil
	q.right = nil
	q.up = nil
	q.height = 0

	if nil == start {
		return newRoot, q
	}
	return rebalanceFrom(start), q
}
