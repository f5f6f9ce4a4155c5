// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Lookup - find the node with a specific key in ascending key order
func Lookup(root *Node, key Key) *Node {
	return LookupWith(ByKey, root, key)
}

// LookupWith - find the node that compares equal to a probe node
// carrying key, nil if not found
func LookupWith(cmp Comparator, root *Node, key Key) *Node {
	probe := Node{key: key}
	p := root
	for nil != p {
		switch cmp.Compare(&probe, p) {
		case Less:
			p = p.left
		case Greater:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
