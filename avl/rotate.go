// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the two sides of a node, chosen so that a node's balance moves by
// the side value when that side grows
const (
	leftSide  int8 = -1
	rightSide int8 = +1
)

// internal: the child of a node on one side
func (tree *Tree) child(i index, side int8) index {
	if side < 0 {
		return tree.node(i).left
	}
	return tree.node(i).right
}

// internal: replace the child of a node on one side
func (tree *Tree) setChild(i index, side int8, c index) {
	if side < 0 {
		tree.node(i).left = c
	} else {
		tree.node(i).right = c
	}
}

// internal: which side of parent holds the child
func (tree *Tree) sideOf(parent index, c index) int8 {
	if tree.node(parent).left == c {
		return leftSide
	}
	return rightSide
}

// single rotation of a, which is too heavy on side s, around its
// child b on that side:
//
//          a                  b
//         / \                / \
//       s1   b      -->     a   c
//           / \            / \
//         s2   c         s1   s2
//
// returns the new subtree root and whether the subtree got shorter.
// b is balanced only when called from delete, then the height is
// unchanged and a and b stay leaning.
func (tree *Tree) rotateSingle(a index, s int8) (index, bool) {
	b := tree.child(a, s)
	tree.setChild(a, s, tree.child(b, -s))
	tree.setChild(b, -s, a)

	pa := tree.node(a)
	pb := tree.node(b)
	if 0 == pb.balance {
		pa.balance = s
		pb.balance = -s
		return b, false
	}
	pa.balance = 0
	pb.balance = 0
	return b, true
}

// double rotation of a, which is too heavy on side s, where the child
// b on that side leans the other way; the grandchild c becomes the
// root:
//
//          a                    c
//         / \                 /   \
//       s1   b      -->      a     b
//           / \             / \   / \
//          c   s4         s1  s2 s3  s4
//         / \
//       s2   s3
//
// the subtree always gets shorter (or, on insert, returns to the
// height it had before the insertion)
func (tree *Tree) rotateDouble(a index, s int8) index {
	b := tree.child(a, s)
	c := tree.child(b, -s)
	tree.setChild(b, -s, tree.child(c, s))
	tree.setChild(a, s, tree.child(c, -s))
	tree.setChild(c, -s, a)
	tree.setChild(c, s, b)

	pa := tree.node(a)
	pb := tree.node(b)
	pc := tree.node(c)
	switch pc.balance {
	case s:
		pa.balance = -s
		pb.balance = 0
	case -s:
		pa.balance = 0
		pb.balance = s
	default:
		pa.balance = 0
		pb.balance = 0
	}
	pc.balance = 0
	return c
}
