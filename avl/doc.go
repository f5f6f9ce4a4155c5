// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree keyed on 64 bit unsigned
// integers, with parent pointers so that every operation is a loop
// and nothing recurses
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every mutating operation takes the current root and returns the
// new root, since any rotation may promote a different node.  The
// Tree type is a convenience holder that stores the returned root.
//
// Nodes are supplied by the caller and are never allocated by the
// tree.  A removed node is returned fully unlinked so that it can be
// reused, either directly or through a Pool.
package avl
