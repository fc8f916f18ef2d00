// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// MaxDepth - the deepest tree supported; it sizes the explicit stacks
// used by Delete, Flush and Walk.  An AVL tree of this depth would
// hold far more nodes than can be addressed.
const MaxDepth = 64

// Tree - type to hold the root node of a tree and its allocator
type Tree struct {
	root   index
	height int
	size   int

	compare Comparator
	context interface{}

	// allocator
	slabSize int
	slabs    []*slab
	vacant   []int // slab table slots released by Reclaim
	free     index // top of the free node stack
	budget   Budget

	maxDepth  int
	destroyed bool

	log   *logger.L
	stats statistics
}

type statistics struct {
	slabsAllocated counter.Counter
	slabsReleased  counter.Counter
	nodesReclaimed counter.Counter
	freeNodes      counter.Counter
}

// Stats - allocator and tree statistics
type Stats struct {
	Size           int    // live nodes
	Height         int    // height of the tree
	Slabs          int    // slabs currently held
	FreeNodes      uint64 // nodes waiting on the free list
	SlabsAllocated uint64 // slabs allocated since creation
	SlabsReleased  uint64 // slabs returned by Reclaim since creation
	NodesReclaimed uint64 // nodes returned by Reclaim since creation
}

// New - create an initially empty tree
//
// slabSize is the number of nodes allocated at once, compare orders
// the payloads and context is passed unchanged to every compare call
func New(slabSize int, compare Comparator, context interface{}) (*Tree, error) {
	if slabSize < 1 {
		return nil, fault.ErrInvalidSlabSize
	}
	if nil == compare {
		return nil, fault.ErrNilComparator
	}
	return &Tree{
		root:     none,
		height:   0,
		size:     0,
		compare:  compare,
		context:  context,
		slabSize: slabSize,
		free:     none,
		budget:   Unlimited,
		maxDepth: MaxDepth,
	}, nil
}

// SetLog - attach a logger channel, nil silences the tree
func (tree *Tree) SetLog(log *logger.L) {
	tree.alive()
	tree.log = log
}

// SetBudget - replace the memory budget, only allowed before the
// first slab is allocated
func (tree *Tree) SetBudget(budget Budget) error {
	tree.alive()
	if len(tree.slabs) != len(tree.vacant) {
		return fault.ErrTreeNotEmpty
	}
	if nil == budget {
		budget = Unlimited
	}
	tree.budget = budget
	return nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.size
}

// Height - height of the tallest path from the root
func (tree *Tree) Height() int {
	return tree.height
}

// SlabSize - number of nodes allocated at once
func (tree *Tree) SlabSize() int {
	return tree.slabSize
}

// Stats - snapshot of the allocator counters
//
// the counter fields are safe to read while another go routine
// mutates the tree; Size, Height and Slabs are not
func (tree *Tree) Stats() Stats {
	return Stats{
		Size:           tree.size,
		Height:         tree.height,
		Slabs:          len(tree.slabs) - len(tree.vacant),
		FreeNodes:      tree.stats.freeNodes.Uint64(),
		SlabsAllocated: tree.stats.slabsAllocated.Uint64(),
		SlabsReleased:  tree.stats.slabsReleased.Uint64(),
		NodesReclaimed: tree.stats.nodesReclaimed.Uint64(),
	}
}

// FreeNodes - number of allocated nodes not in the tree
func (tree *Tree) FreeNodes() uint64 {
	return tree.stats.freeNodes.Uint64()
}

// Destroy - flush the tree, return all memory and invalidate the
// handle; any further use of the tree will panic
func (tree *Tree) Destroy() {
	tree.alive()
	if err := tree.Flush(); nil != err {
		fault.PanicIfError("avl.Destroy", err)
	}
	n := tree.Reclaim()
	if nil != tree.log {
		tree.log.Debugf("destroyed: released %d nodes", n)
	}
	tree.destroyed = true
	tree.compare = nil
	tree.context = nil
	tree.slabs = nil
	tree.vacant = nil
	tree.free = none
}

// panic on use after Destroy
func (tree *Tree) alive() {
	if tree.destroyed {
		fault.Panic("avl: tree used after Destroy")
	}
}
