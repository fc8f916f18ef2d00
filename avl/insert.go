// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new payload into the tree
//
// returns:
//   nil                       payload was added
//   fault.ErrAlreadyPresent   an equal payload is in the tree, nothing changed
//   fault.ErrAllocationFailed no node could be allocated, nothing changed
//   fault.ErrDepthExceeded    the tree would become too deep, nothing changed
func (tree *Tree) Insert(payload interface{}) error {
	tree.alive()

	if nil == payload {
		return fault.ErrNilPayload
	}

	// empty tree
	if none == tree.root {
		n, err := tree.acquire(payload)
		if nil != err {
			return err
		}
		tree.root = n
		tree.height = 1
		return nil
	}

	t := none      // parent of s
	s := tree.root // deepest node on the path that is not balanced
	p := tree.root // current node
	q := none      // the new node
	depth := 1

	// search for the insertion point
	for none == q {
		e := tree.compare(payload, tree.node(p).payload, tree.context)
		if 0 == e {
			return fault.ErrAlreadyPresent
		}
		side := rightSide
		if e < 0 {
			side = leftSide
		}

		next := tree.child(p, side)
		if none != next {
			if 0 != tree.node(next).balance {
				t = p
				s = next
			}
			p = next
			depth += 1
			continue
		}

		if depth >= tree.maxDepth {
			return fault.ErrDepthExceeded
		}
		n, err := tree.acquire(payload)
		if nil != err {
			return err
		}
		tree.setChild(p, side, n)
		q = n
	}

	// the side of s that grew
	a := rightSide
	if tree.compare(payload, tree.node(s).payload, tree.context) < 0 {
		a = leftSide
	}
	r := tree.child(s, a)

	// every node between s and q was balanced, now each leans towards q
	for p = r; p != q; {
		pp := tree.node(p)
		if tree.compare(payload, pp.payload, tree.context) < 0 {
			pp.balance = -1
			p = pp.left
		} else {
			pp.balance = +1
			p = pp.right
		}
	}

	ps := tree.node(s)
	switch ps.balance {
	case 0:
		// s is the root and the whole tree is one level taller
		ps.balance = a
		tree.height += 1
		return nil

	case -a:
		// the short side caught up
		ps.balance = 0
		return nil
	}

	// s is now off balance by two
	top := none
	if tree.node(r).balance == a {
		top, _ = tree.rotateSingle(s, a)
	} else {
		top = tree.rotateDouble(s, a)
	}

	if none == t {
		tree.root = top
	} else {
		tree.setChild(t, tree.sideOf(t, s), top)
	}
	return nil
}
