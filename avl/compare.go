// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Comparator - returns a negative number if a < b, zero if a == b and a
// positive number if a > b
//
// It must be a strict total order that never changes for the life of
// a tree: it is called with search keys as well as stored payloads,
// and again while rebalancing.  An inconsistent comparator silently
// corrupts the tree.
type Comparator func(a interface{}, b interface{}, context interface{}) int

// Item - a payload that knows how to order itself
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// CompareItems - comparator for payloads implementing Item, the
// context is ignored
func CompareItems(a interface{}, b interface{}, _ interface{}) int {
	return a.(Item).Compare(b)
}
