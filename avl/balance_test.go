// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

// link children below a parent and fix its height, children first
func link(p *Node, left *Node, right *Node) *Node {
	p.left = left
	p.right = right
	if nil != left {
		left.up = p
	}
	if nil != right {
		right.up = p
	}
	recalculateHeight(p)
	return p
}

func leaf(key Key) *Node {
	return link(NewNode(key), nil, nil)
}

func TestHeightPrimitives(t *testing.T) {
	assert.Equal(t, 0, Height(nil), "nil height")

	n := leaf(5)
	assert.Equal(t, 1, Height(n), "leaf height")
	assert.Equal(t, 0, BalanceFactor(n), "leaf balance")

	p := link(NewNode(10), link(NewNode(5), leaf(2), nil), nil)
	assert.Equal(t, 3, Height(p), "chain height")
	assert.Equal(t, -2, BalanceFactor(p), "chain balance")

	assert.Equal(t, Key(2), FindMinimum(p).Key(), "minimum")
	assert.Equal(t, Key(10), FindMaximum(p).Key(), "maximum")
}

func TestRotateRight(t *testing.T) {
	//      30            20
	//     /  \          /  \
	//    20   40  →   10    30
	//   /  \               /  \
	//  10   25           25    40
	n10, n25, n40 := leaf(10), leaf(25), leaf(40)
	n20 := link(NewNode(20), n10, n25)
	n30 := link(NewNode(30), n20, n40)
	top := link(NewNode(100), n30, nil)

	r := rotateRight(n30)

	assert.Equal(t, n20, r, "new local root")
	assert.Equal(t, top, n20.up, "parent of new local root")
	assert.Equal(t, n20, top.left, "parent child link not repaired")
	assert.Equal(t, n10, n20.left, "left of new root")
	assert.Equal(t, n30, n20.right, "right of new root")
	assert.Equal(t, n25, n30.left, "moved sub-tree")
	assert.Equal(t, n30, n25.up, "moved sub-tree parent")
	assert.Equal(t, n20, n30.up, "old root parent")
	assert.Equal(t, 2, Height(n30), "old root height")
	assert.Equal(t, 3, Height(n20), "new root height")
}

func TestRotateLeft(t *testing.T) {
	n10, n25, n40 := leaf(10), leaf(25), leaf(40)
	n30 := link(NewNode(30), n25, n40)
	n20 := link(NewNode(20), n10, n30)

	r := rotateLeft(n20)

	assert.Equal(t, n30, r, "new local root")
	assert.Nil(t, n30.up, "new root inherits nil parent")
	assert.Equal(t, n20, n30.left, "left of new root")
	assert.Equal(t, n25, n20.right, "moved sub-tree")
	assert.Equal(t, n20, n25.up, "moved sub-tree parent")
	assert.Equal(t, 2, Height(n20), "old root height")
	assert.Equal(t, 3, Height(n30), "new root height")

	bad, err := Check(ByKey, r)
	assert.Nil(t, err, "rotated tree invalid at: %v", bad)
}

func TestBalanceSingleAndDouble(t *testing.T) {
	cases := []struct {
		name string
		root func() *Node
		top  Key
	}{
		{
			name: "left-left",
			root: func() *Node { return link(NewNode(30), link(NewNode(20), leaf(10), nil), nil) },
			top:  20,
		},
		{
			name: "right-right",
			root: func() *Node { return link(NewNode(10), nil, link(NewNode(20), nil, leaf(30))) },
			top:  20,
		},
		{
			name: "left-right",
			root: func() *Node { return link(NewNode(30), link(NewNode(10), nil, leaf(20)), nil) },
			top:  20,
		},
		{
			name: "right-left",
			root: func() *Node { return link(NewNode(10), nil, link(NewNode(30), leaf(20), nil)) },
			top:  20,
		},
		{
			name: "balanced",
			root: func() *Node { return link(NewNode(20), leaf(10), leaf(30)) },
			top:  20,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := balance(c.root())
			assert.Equal(t, c.top, r.Key(), "local root")
			assert.Equal(t, 2, Height(r), "height")
			assert.Equal(t, Key(10), r.left.Key(), "left")
			assert.Equal(t, Key(30), r.right.Key(), "right")
			bad, err := Check(ByKey, r)
			assert.Nil(t, err, "invalid at: %v", bad)
		})
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	build := func() *Node {
		var root *Node
		for _, k := range []Key{50, 30, 70, 20, 40, 60, 80} {
			root = Insert(root, NewNode(k))
		}
		return root
	}

	root := build()
	_, err := Check(nil, root)
	assert.Nil(t, err, "valid tree rejected")

	root = build()
	root.left.left.up = root
	bad, err := Check(nil, root)
	assert.Equal(t, fault.ErrParentLink, err, "parent link")
	assert.Equal(t, Key(30), bad.Key(), "parent link node")

	root = build()
	root.right.height = 7
	_, err = Check(nil, root)
	assert.Equal(t, fault.ErrHeight, err, "height")

	root = build()
	root.left.key, root.right.key = root.right.key, root.left.key
	_, err = Check(nil, root)
	assert.Equal(t, fault.ErrOrder, err, "order")

	root = build()
	root.up = root.left
	_, err = Check(nil, root)
	assert.Equal(t, fault.ErrRootHasParent, err, "root parent")

	// long left chain with correct heights is unbalanced
	chain := link(NewNode(3), link(NewNode(2), leaf(1), nil), nil)
	bad, err = Check(nil, chain)
	assert.Equal(t, fault.ErrUnbalanced, err, "unbalanced")
	assert.Equal(t, Key(3), bad.Key(), "unbalanced node")
}

func TestTreeCheckCount(t *testing.T) {
	tree := New()
	for _, k := range []Key{3, 1, 2} {
		tree.Insert(NewNode(k))
	}
	assert.Nil(t, tree.Check(), "valid tree")

	tree.count = 4
	assert.Equal(t, fault.ErrCountMismatch, tree.Check(), "count mismatch")
}

func TestRemoveSuccessorDeepInRightSubtree(t *testing.T) {
	var root *Node
	for _, k := range []Key{20, 10, 40, 5, 15, 30, 50, 35} {
		root = Insert(root, NewNode(k))
	}

	// successor of 20 is 30 whose right child 35 fills the gap
	root, removed := Remove(root, 20)
	assert.Equal(t, Key(20), removed.Key(), "removed")
	assert.Equal(t, Key(30), root.Key(), "successor is root")
	assert.Equal(t, Key(35), root.right.left.Key(), "successor right child moved up")
	assert.Equal(t, root.right, root.right.left.up, "moved child parent")

	bad, err := Check(nil, root)
	assert.Nil(t, err, "invalid at: %v", bad)
}
