// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific item, returns the stored payload
func (tree *Tree) Find(key interface{}) (interface{}, bool) {
	tree.alive()

	for i := tree.root; none != i; {
		p := tree.node(i)
		switch e := tree.compare(key, p.payload, tree.context); {
		case e < 0: // key < p.payload
			i = p.left
		case e > 0: // key > p.payload
			i = p.right
		default:
			return p.payload, true
		}
	}
	return nil, false
}

// First - return the payload with the lowest key value
func (tree *Tree) First() (interface{}, bool) {
	tree.alive()

	i := tree.root
	if none == i {
		return nil, false
	}
	for none != tree.node(i).left {
		i = tree.node(i).left
	}
	return tree.node(i).payload, true
}

// Last - return the payload with the highest key value
func (tree *Tree) Last() (interface{}, bool) {
	tree.alive()

	i := tree.root
	if none == i {
		return nil, false
	}
	for none != tree.node(i).right {
		i = tree.node(i).right
	}
	return tree.node(i).payload, true
}
