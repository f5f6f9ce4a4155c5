// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Pool - caller side node storage, the tree itself never allocates
//
// reclaimed nodes are kept on a free list linked through the up
// pointer; a pool may be shared by several trees and go routines
type Pool struct {
	sync.Mutex
	free       *Node           // linked list of reclaimed nodes
	totalNodes counter.Counter // total nodes created
	freeNodes  counter.Counter // number of nodes in the pool
}

// marks a node that is on a free list, never a real height
const freeHeight = 0xff

// NewPool - create a pool with some nodes allocated as a single block
func NewPool(preallocate int) *Pool {
	pool := &Pool{}
	if preallocate > 0 {
		block := make([]Node, preallocate)
		for i := range block {
			block[i].up = pool.free
			block[i].height = freeHeight
			pool.free = &block[i]
		}
		pool.totalNodes.Add(uint64(preallocate))
		pool.freeNodes.Add(uint64(preallocate))
	}
	return pool
}

// Get - a detached node carrying key, reuses reclaimed nodes if any
// are available
func (pool *Pool) Get(key Key) *Node {
	pool.Lock()
	defer pool.Unlock()

	p := pool.free
	if nil == p {
		if !pool.freeNodes.IsZero() {
			fault.Panic("pool corrupt")
		}
		pool.totalNodes.Increment()
		return NewNode(key)
	}
	pool.free = p.up
	pool.freeNodes.Decrement()

	p.key = key
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	p.height = 0
	return p
}

// Put - reclaim a node that has been removed from its tree
func (pool *Pool) Put(node *Node) {
	if nil == node {
		fault.Violation(fault.ErrNilNode)
	}

	pool.Lock()

	if freeHeight == node.height {
		pool.Unlock()
		fault.Violation(fault.ErrNodeIsFree)
	}
	if !node.IsDetached() {
		pool.Unlock()
		fault.Violation(fault.ErrNodeIsLinked)
	}

	node.key = 0
	node.height = freeHeight
	node.up = pool.free // use as free list pointer
	pool.free = node
	pool.freeNodes.Increment()

	pool.Unlock()
}

// Total - number of nodes ever created by the pool
func (pool *Pool) Total() uint64 {
	return pool.totalNodes.Uint64()
}

// Free - number of nodes waiting in the pool
func (pool *Pool) Free() uint64 {
	return pool.freeNodes.Uint64()
}
