// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the payload given to Insert, or fault.ErrNotFound with no
// change to the tree
func (tree *Tree) Delete(key interface{}) (interface{}, error) {
	tree.alive()

	if none == tree.root {
		return nil, fault.ErrNotFound
	}
	if tree.height > tree.maxDepth {
		return nil, fault.ErrDepthExceeded
	}

	// the path from the root down to, but excluding, the node found
	var path [MaxDepth]index
	top := 0

	c := tree.root
	side := int8(0) // side of its parent that holds c
	for {
		if none == c {
			return nil, fault.ErrNotFound
		}
		e := tree.compare(key, tree.node(c).payload, tree.context)
		if 0 == e {
			break
		}
		if top >= tree.maxDepth {
			return nil, fault.ErrDepthExceeded
		}
		path[top] = c
		top += 1
		if e < 0 {
			side = leftSide
		} else {
			side = rightSide
		}
		c = tree.child(c, side)
	}

	pc := tree.node(c)
	payload := pc.payload

	if none == pc.left || none == pc.right {

		// at most one subtree: it takes the place of c
		s := pc.left
		if none == s {
			s = pc.right
		}
		if 0 == top {
			tree.root = s
		} else {
			tree.setChild(path[top-1], side, s)
		}

	} else {

		// two subtrees: take the in-order neighbour from the taller
		// side so that fewer rotations are needed
		position := top
		path[top] = c
		top += 1

		neighbour := none
		if pc.balance > 0 {
			// successor: leftmost of the right subtree
			n := pc.right
			for none != tree.node(n).left {
				if top >= tree.maxDepth {
					return nil, fault.ErrDepthExceeded
				}
				path[top] = n
				top += 1
				n = tree.node(n).left
			}
			neighbour = n
		} else {
			// predecessor: rightmost of the left subtree
			n := pc.left
			for none != tree.node(n).right {
				if top >= tree.maxDepth {
					return nil, fault.ErrDepthExceeded
				}
				path[top] = n
				top += 1
				n = tree.node(n).right
			}
			neighbour = n
		}

		// cut the neighbour out, its single subtree (if any) takes its place
		parent := path[top-1]
		pn := tree.node(neighbour)
		s := pn.left
		if none == s {
			s = pn.right
		}
		side = tree.sideOf(parent, neighbour)
		tree.setChild(parent, side, s)

		// transplant the neighbour into the position of c
		pn.left = pc.left
		pn.right = pc.right
		pn.balance = pc.balance
		if 0 == position {
			tree.root = neighbour
		} else {
			p := path[position-1]
			tree.setChild(p, tree.sideOf(p, c), neighbour)
		}
		path[position] = neighbour
	}

	tree.release(c)

	// walk back up: the subtree on 'side' of path[top-1] is one shorter
	shorter := true
	for shorter && top > 0 {
		top -= 1
		a := path[top]
		pa := tree.node(a)
		pa.balance -= side

		// remember where a hangs before any rotation replaces it
		parentSide := int8(0)
		if top > 0 {
			parentSide = tree.sideOf(path[top-1], a)
		}

		switch pa.balance {
		case 0:
			// the taller side was cut, this subtree is shorter too
		case -1, +1:
			// the other side still sets the height
			shorter = false
		default:
			s := rightSide
			if pa.balance < 0 {
				s = leftSide
			}
			subtree := none
			if tree.node(tree.child(a, s)).balance == -s {
				subtree = tree.rotateDouble(a, s)
			} else {
				subtree, shorter = tree.rotateSingle(a, s)
			}
			if 0 == top {
				tree.root = subtree
			} else {
				tree.setChild(path[top-1], parentSide, subtree)
			}
		}
		side = parentSide
	}
	if shorter {
		tree.height -= 1
	}

	return payload, nil
}
