// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree whose nodes are carved out of
// slabs by a private allocator
//
// Note: an individual tree is not thread safe. Insert, Delete, Flush,
//       Reclaim and Destroy need exclusive access; Find, First, Last,
//       Walk, Validate and Print may share access with each other.
//       Use a mutex/rwmutex to restrict access.
//
// Ordering is decided by a comparator supplied when the tree is
// created, together with an opaque context value that is passed
// unchanged to every comparison.  Payloads are never copied or
// inspected by the tree, only handed to the comparator.
//
// Insertion and rebalancing follow Knuth, The Art of Computer
// Programming, vol. 3, section 6.2.3.  Deletion records the path from
// the root in a bounded stack (see MaxDepth) and rotates on the way
// back up while the subtree keeps getting shorter.
//
// Nodes are allocated a slab at a time and kept on a free list after
// deletion.  Reclaim returns to the memory budget every slab that no
// longer holds a live node; slabs holding even one live node are left
// alone.
package avl
