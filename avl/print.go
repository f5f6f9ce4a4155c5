// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// one pending item of the print walk
type printFrame struct {
	node    *Node
	prefix  string
	br      branch
	depth   int
	visited bool // children already scheduled
}

// Print - display an ASCII graphic representation of a tree, higher
// keys are above lower keys, each line shows:
//
//   key[h<height>.b<balance>.p<parent key>]
//
// returns the maximum depth of the tree
func Print(w io.Writer, root *Node) int {
	if nil == root {
		return 0
	}

	maxDepth := 0
	stack := []printFrame{{node: root, br: rootBranch, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p := f.node

		if !f.visited {
			// right sub-tree is printed first so push it last
			if nil != p.left {
				t := "       "
				if rightBranch == f.br {
					t = "|      "
				}
				stack = append(stack, printFrame{node: p.left, prefix: f.prefix + t, br: leftBranch, depth: f.depth + 1})
			}
			f.visited = true
			stack = append(stack, f)
			if nil != p.right {
				t := "       "
				if leftBranch == f.br {
					t = "|      "
				}
				stack = append(stack, printFrame{node: p.right, prefix: f.prefix + t, br: rightBranch, depth: f.depth + 1})
			}
			continue
		}

		if f.depth > maxDepth {
			maxDepth = f.depth
		}

		switch f.br {
		case rootBranch:
			fmt.Fprintf(w, "%s|------+ ", f.prefix)
		case leftBranch:
			fmt.Fprintf(w, "%s\\------+ ", f.prefix)
		case rightBranch:
			fmt.Fprintf(w, "%s/------+ ", f.prefix)
		}
		up := "-"
		if nil != p.up {
			up = fmt.Sprintf("%d", p.up.key)
		}
		fmt.Fprintf(w, "%d[h%d.b%+d.p%s]\n", p.key, p.height, Height(p.right)-Height(p.left), up)
	}
	return maxDepth
}
