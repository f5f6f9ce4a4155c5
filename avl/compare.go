// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Ordering - result of a three way comparison
type Ordering int

// possible orderings
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String - for log messages
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "*invalid*"
	}
}

// Comparator - three way ordering of two nodes
//
// must be a strict total order over the keys in the tree, this is
// not checked
type Comparator interface {
	Compare(a *Node, b *Node) Ordering
}

// CompareFunc - adapt an ordinary function to a Comparator
type CompareFunc func(a *Node, b *Node) Ordering

// Compare - call f(a, b)
func (f CompareFunc) Compare(a *Node, b *Node) Ordering {
	return f(a, b)
}

// ByKey - the default comparator, ascending key order
var ByKey Comparator = CompareFunc(compareKeys)

func compareKeys(a *Node, b *Node) Ordering {
	switch {
	case a.key < b.key:
		return Less
	case a.key > b.key:
		return Greater
	default:
		return Equal
	}
}
