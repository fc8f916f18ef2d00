// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// WalkFunc - called by Walk for each payload
type WalkFunc func(payload interface{}, context interface{})

// Walk - visit every payload in increasing order
//
// this is the way to serialise a tree: the shape need not be saved as
// inserting the payloads again rebuilds a balanced tree
func (tree *Tree) Walk(callback WalkFunc, context interface{}) error {
	tree.alive()

	if tree.height > tree.maxDepth {
		return fault.ErrDepthExceeded
	}

	var stack [MaxDepth]index
	top := 0
	i := tree.root
	for none != i || top > 0 {

		// go as far left as possible
		for none != i {
			if top >= tree.maxDepth {
				return fault.ErrDepthExceeded
			}
			stack[top] = i
			top += 1
			i = tree.node(i).left
		}

		top -= 1
		p := tree.node(stack[top])
		callback(p.payload, context)
		i = p.right
	}
	return nil
}
