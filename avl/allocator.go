// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// position of a node: slab number * slab size + offset in slab
type index int32

// the empty link
const none index = -1

type nodeState uint8

const (
	free nodeState = iota
	inUse
)

// a node in the tree
type node struct {
	left    index       // left sub-tree
	right   index       // right sub-tree, or next node while on the free list
	payload interface{} // caller data, never inspected
	balance int8        // -1, 0, +1 (±2 only while rebalancing a delete)
	state   nodeState   // free or in use
	head    bool        // first node of its slab
	reclaim bool        // marked for release during Reclaim
}

// a batch of nodes allocated together and released together
type slab struct {
	nodes []node
	live  int // nodes of this slab currently in the tree
}

// internal: resolve an index
func (tree *Tree) node(i index) *node {
	return &tree.slabs[int(i)/tree.slabSize].nodes[int(i)%tree.slabSize]
}

// internal: the slab holding an index
func (tree *Tree) slabOf(i index) *slab {
	return tree.slabs[int(i)/tree.slabSize]
}

// allocate a new node, allocating a slab first if no free nodes are
// available; on failure nothing is changed
func (tree *Tree) acquire(payload interface{}) (index, error) {
	if none == tree.free {
		if err := tree.grow(); nil != err {
			return none, err
		}
	}

	i := tree.free
	p := tree.node(i)
	tree.free = p.right

	p.left = none
	p.right = none
	p.payload = payload
	p.balance = 0
	p.state = inUse

	tree.slabOf(i).live += 1
	tree.size += 1
	tree.stats.freeNodes.Add(^uint64(0))
	return i, nil
}

// reclaim a node and keep it on the free list
func (tree *Tree) release(i index) {
	p := tree.node(i)
	if inUse != p.state {
		fault.Panicf("avl: release of node %d that is not in use", i)
	}
	p.state = free
	p.payload = nil
	p.left = none
	p.balance = 0
	p.right = tree.free // use as free list pointer
	tree.free = i

	tree.slabOf(i).live -= 1
	tree.size -= 1
	tree.stats.freeNodes.Increment()
}

// allocate one slab and push all of its nodes on the free list
func (tree *Tree) grow() error {

	slot := len(tree.slabs)
	if n := len(tree.vacant); n > 0 {
		slot = tree.vacant[n-1]
	}
	if (slot+1)*tree.slabSize-1 > math.MaxInt32 {
		if nil != tree.log {
			tree.log.Warnf("slab table full at %d slabs", slot)
		}
		return fault.ErrAllocationFailed
	}

	if err := tree.budget.Reserve(tree.slabSize); nil != err {
		if nil != tree.log {
			tree.log.Warnf("slab of %d nodes refused: %s", tree.slabSize, err)
		}
		return fault.ErrAllocationFailed
	}

	s := &slab{
		nodes: make([]node, tree.slabSize),
		live:  0,
	}
	if n := len(tree.vacant); n > 0 {
		tree.vacant = tree.vacant[:n-1]
		tree.slabs[slot] = s
	} else {
		tree.slabs = append(tree.slabs, s)
	}

	// push in reverse so the head is at the top of the stack
	base := index(slot * tree.slabSize)
	for j := tree.slabSize - 1; j >= 0; j -= 1 {
		s.nodes[j] = node{
			left:  none,
			right: tree.free,
			state: free,
		}
		tree.free = base + index(j)
	}
	s.nodes[0].head = true

	tree.stats.slabsAllocated.Increment()
	tree.stats.freeNodes.Add(uint64(tree.slabSize))

	if nil != tree.log {
		tree.log.Debugf("allocated slab: %d  nodes: %d", slot, tree.slabSize)
	}
	return nil
}

// Flush - break down the tree and return all of its nodes to the
// free list; the tree is empty afterwards but no memory is released
func (tree *Tree) Flush() error {
	tree.alive()

	if none == tree.root {
		return nil
	}
	if tree.height > tree.maxDepth {
		return fault.ErrDepthExceeded
	}

	var stack [MaxDepth]index
	top := 0
	n := tree.root
	for {
		p := tree.node(n)
		if none != p.left {
			// cut the left link and descend
			stack[top] = n
			top += 1
			n, p.left = p.left, none
		} else if none != p.right {
			// no more left, cut the right link and descend
			stack[top] = n
			top += 1
			n, p.right = p.right, none
		} else {
			// a leaf: release it and return to the parent
			tree.release(n)
			if 0 == top {
				break
			}
			top -= 1
			n = stack[top]
		}
	}

	if 0 != tree.size {
		fault.Panicf("avl: flush left %d nodes in use", tree.size)
	}
	tree.root = none
	tree.height = 0
	return nil
}

// Reclaim - release every slab whose nodes are all on the free list
//
// returns the number of nodes released.  Nodes in the tree are never
// touched: a slab with even one live node is kept whole.
func (tree *Tree) Reclaim() int {
	tree.alive()

	count := 0

	// mark every node of each slab that has no live nodes, the slab
	// head on the free list identifies the slab
	for i := tree.free; none != i; i = tree.node(i).right {
		p := tree.node(i)
		if !p.head {
			continue
		}
		s := tree.slabOf(i)
		if 0 != s.live {
			continue
		}
		for j := range s.nodes {
			s.nodes[j].reclaim = true
		}
		count += tree.slabSize
	}

	if 0 == count {
		return 0
	}

	// take the marked nodes off the free list
	previous := none
	for i := tree.free; none != i; {
		p := tree.node(i)
		next := p.right
		if p.reclaim {
			if none == previous {
				tree.free = next
			} else {
				tree.node(previous).right = next
			}
		} else {
			previous = i
		}
		i = next
	}

	// release the slabs themselves
	slabs := 0
	for slot, s := range tree.slabs {
		if nil == s || !s.nodes[0].reclaim {
			continue
		}
		if 0 != s.live {
			fault.Panicf("avl: slab %d marked for release holds %d live nodes", slot, s.live)
		}
		tree.slabs[slot] = nil
		tree.vacant = append(tree.vacant, slot)
		tree.budget.Return(tree.slabSize)
		slabs += 1
	}

	// drop vacant slots at the end of the table
	for n := len(tree.slabs); n > 0 && nil == tree.slabs[n-1]; n = len(tree.slabs) {
		tree.slabs = tree.slabs[:n-1]
		tree.removeVacant(n - 1)
	}

	tree.stats.slabsReleased.Add(uint64(slabs))
	tree.stats.nodesReclaimed.Add(uint64(count))
	tree.stats.freeNodes.Add(^uint64(count - 1))

	if nil != tree.log {
		tree.log.Infof("reclaimed slabs: %d  nodes: %d", slabs, count)
	}
	return count
}

// internal: forget a vacant slot that has been cut from the table
func (tree *Tree) removeVacant(slot int) {
	for k, v := range tree.vacant {
		if v == slot {
			last := len(tree.vacant) - 1
			tree.vacant[k] = tree.vacant[last]
			tree.vacant = tree.vacant[:last]
			return
		}
	}
}
