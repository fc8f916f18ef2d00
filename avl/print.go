// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// LabelFunc - render a payload for Print
type LabelFunc func(payload interface{}) string

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - write an ASCII graphic representation of the tree, returns
// the depth of the tree
//
// a nil label prints payloads with %v
func (tree *Tree) Print(w io.Writer, label LabelFunc) int {
	tree.alive()

	if nil == label {
		label = func(payload interface{}) string {
			return fmt.Sprintf("%v", payload)
		}
	}
	return tree.printTree(w, tree.root, "", rootBranch, label)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree) printTree(w io.Writer, i index, prefix string, br branch, label LabelFunc) int {
	if none == i {
		return 0
	}
	p := tree.node(i)

	rd := 0
	ld := 0
	if none != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, rightBranch, label)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s %+2d [slab %d]\n", label(p.payload), p.balance, int(i)/tree.slabSize)
	if none != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, leftBranch, label)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
