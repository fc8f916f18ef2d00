// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// BalanceError - the first node whose stored balance disagrees with
// the heights of its subtrees
type BalanceError struct {
	Payload     interface{}
	LeftHeight  int
	RightHeight int
	Balance     int
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance error on: %v  left: %d  right: %d  balance: %+d", e.Payload, e.LeftHeight, e.RightHeight, e.Balance)
}

// Is - a BalanceError is a corrupt tree
func (e *BalanceError) Is(target error) bool {
	return target == fault.ErrCorruptTree
}

// Validate - audit the whole tree and its allocator, returns the
// height of the tree
//
// intended for tests and diagnostics, it recurses to the full depth
// of the tree and visits every node
func (tree *Tree) Validate() (int, error) {
	tree.alive()

	count := 0
	height, err := tree.checkBalance(tree.root, &count)
	if nil != err {
		if nil != tree.log {
			tree.log.Errorf("validate: %s", err)
		}
		return -1, err
	}
	if height != tree.height {
		if nil != tree.log {
			tree.log.Errorf("validate: actual height: %d  stored: %d", height, tree.height)
		}
		return height, fault.ErrHeightMismatch
	}
	if count != tree.size {
		if nil != tree.log {
			tree.log.Errorf("validate: actual count: %d  stored: %d", count, tree.size)
		}
		return height, fault.ErrSizeMismatch
	}

	if err := tree.checkOrder(); nil != err {
		return height, err
	}
	if err := tree.checkFreeList(); nil != err {
		return height, err
	}
	return height, nil
}

// internal: recursive height computation and balance check
func (tree *Tree) checkBalance(i index, count *int) (int, error) {
	if none == i {
		return 0, nil
	}
	p := tree.node(i)
	if inUse != p.state {
		return -1, fault.ErrFreeListCorrupt
	}
	*count += 1

	l, err := tree.checkBalance(p.left, count)
	if nil != err {
		return -1, err
	}
	r, err := tree.checkBalance(p.right, count)
	if nil != err {
		return -1, err
	}

	b := r - l
	if b != int(p.balance) || b < -1 || b > +1 {
		return -1, &BalanceError{
			Payload:     p.payload,
			LeftHeight:  l,
			RightHeight: r,
			Balance:     int(p.balance),
		}
	}
	if b > 0 {
		return r + 1, nil
	}
	return l + 1, nil
}

// internal: every payload must be strictly greater than the one before
func (tree *Tree) checkOrder() error {
	previous := interface{}(nil)
	ordered := true
	err := tree.Walk(func(payload interface{}, _ interface{}) {
		if nil != previous && tree.compare(previous, payload, tree.context) >= 0 {
			ordered = false
		}
		previous = payload
	}, nil)
	if nil != err {
		return err
	}
	if !ordered {
		return fault.ErrOrdering
	}
	return nil
}

// internal: the free list must hold exactly the nodes not in use
func (tree *Tree) checkFreeList() error {
	n := 0
	for i := tree.free; none != i; i = tree.node(i).right {
		p := tree.node(i)
		if free != p.state || nil != p.payload {
			return fault.ErrFreeListCorrupt
		}
		n += 1
	}

	capacity := 0
	for _, s := range tree.slabs {
		if nil == s {
			continue
		}
		capacity += len(s.nodes)
	}
	if n+tree.size != capacity || uint64(n) != tree.stats.freeNodes.Uint64() {
		return fault.ErrFreeListCorrupt
	}
	return nil
}
